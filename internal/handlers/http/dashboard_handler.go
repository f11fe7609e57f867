package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/miyaru/miyaru-backend/internal/domain/ports"
	"github.com/miyaru/miyaru-backend/internal/handlers/dto"
	"github.com/miyaru/miyaru-backend/internal/services"
)

// statsPushInterval é o período de atualização do stream do dashboard
const statsPushInterval = 5 * time.Second

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// O gate de role já rodou no middleware; origem fica liberada como
	// no restante da API
	CheckOrigin: func(r *http.Request) bool { return true },
}

// DashboardHandler serve os dados agregados do back-office
type DashboardHandler struct {
	statsService *services.StatsService
	logger       ports.Logger
}

// NewDashboardHandler cria um novo DashboardHandler
func NewDashboardHandler(statsService *services.StatsService, logger ports.Logger) *DashboardHandler {
	return &DashboardHandler{
		statsService: statsService,
		logger:       logger,
	}
}

// GetStats retorna o snapshot agregado atual
//
//	@Summary	Estatísticas do diretório
//	@Tags		dashboard
//	@Security	BearerAuth
//	@Success	200	{object}	dto.StatsResponse
//	@Router		/api/dashboard/stats [get]
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.statsService.GetDashboardStats(c.Request.Context())
	if err != nil {
		dto.FromServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToStatsResponse(stats))
}

// StreamStats faz upgrade para websocket e empurra snapshots
// periódicos até o cliente desconectar
//
//	@Summary	Stream de estatísticas
//	@Tags		dashboard
//	@Router		/api/dashboard/ws [get]
func (h *DashboardHandler) StreamStats(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	// Leitor descartável só para detectar o fechamento do cliente
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(statsPushInterval)
	defer ticker.Stop()

	ctx := c.Request.Context()
	for {
		stats, err := h.statsService.GetDashboardStats(ctx)
		if err != nil {
			h.logger.Error("stats snapshot failed", "error", err)
			return
		}

		if err := conn.WriteJSON(dto.ToStatsResponse(stats)); err != nil {
			return
		}

		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
