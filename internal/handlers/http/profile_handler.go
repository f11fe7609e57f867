package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/moogar0880/problems"

	"github.com/miyaru/miyaru-backend/internal/domain/errors"
	"github.com/miyaru/miyaru-backend/internal/handlers/dto"
	"github.com/miyaru/miyaru-backend/internal/services"
)

// ProfileHandler serve a superfície pública de leitura. Por não ter
// cliente legado, esta superfície usa RFC 7807 nos erros em vez do
// envelope {"error": ...} da API administrativa.
type ProfileHandler struct {
	profileService *services.ProfileService
}

// NewProfileHandler cria um novo ProfileHandler
func NewProfileHandler(profileService *services.ProfileService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
	}
}

// GetProfile retorna o perfil público pela chave de URL
//
//	@Summary	Perfil público por slug
//	@Tags		profiles
//	@Param		slug	path		string	true	"Slug do perfil"
//	@Success	200		{object}	dto.UserResponse
//	@Failure	404		{object}	problems.DefaultProblem
//	@Router		/api/profiles/{slug} [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	user, err := h.profileService.GetProfileBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		if errs.Is(err, errors.ErrUserNotFound) {
			notFound := problems.NewDetailedProblem(http.StatusNotFound, "profile not found")
			c.Header("Content-Type", problems.ProblemMediaType)
			c.JSON(http.StatusNotFound, notFound)
			return
		}
		internal := problems.NewDetailedProblem(http.StatusInternalServerError, err.Error())
		c.Header("Content-Type", problems.ProblemMediaType)
		c.JSON(http.StatusInternalServerError, internal)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListNews retorna as notícias publicadas mais recentes
//
//	@Summary	Feed de notícias
//	@Tags		news
//	@Success	200	{array}	dto.NewsResponse
//	@Router		/api/news [get]
func (h *ProfileHandler) ListNews(c *gin.Context) {
	news, err := h.profileService.GetDiscoverNews(c.Request.Context())
	if err != nil {
		internal := problems.NewDetailedProblem(http.StatusInternalServerError, err.Error())
		c.Header("Content-Type", problems.ProblemMediaType)
		c.JSON(http.StatusInternalServerError, internal)
		return
	}

	c.JSON(http.StatusOK, dto.ToNewsResponses(news))
}
