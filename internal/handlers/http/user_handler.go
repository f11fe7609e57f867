package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/miyaru/miyaru-backend/internal/domain/errors"
	"github.com/miyaru/miyaru-backend/internal/handlers/dto"
	"github.com/miyaru/miyaru-backend/internal/services"
)

// UserHandler lida com as rotas administrativas de perfis
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler cria um novo UserHandler
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers lista perfis com paginação, filtros e busca livre
//
//	@Summary	Lista perfis
//	@Tags		users
//	@Security	BearerAuth
//	@Param		page	query	int		false	"Página (default 1)"
//	@Param		limit	query	int		false	"Itens por página (default 10)"
//	@Param		role	query	string	false	"Filtro exato de role"
//	@Param		status	query	string	false	"Filtro exato de status"
//	@Param		search	query	string	false	"Busca por nome, email ou slug"
//	@Success	200		{object}	dto.UserPageResponse
//	@Router		/api/users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	query := services.ListUsersQuery{
		Page:   intQuery(c, "page", 1),
		Limit:  intQuery(c, "limit", 10),
		Role:   c.Query("role"),
		Status: c.Query("status"),
		Search: c.Query("search"),
	}

	page, err := h.userService.GetUsers(c.Request.Context(), query)
	if err != nil {
		dto.FromServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserPageResponse(page))
}

// CreateUser cria um novo perfil
//
//	@Summary	Cria perfil
//	@Tags		users
//	@Security	BearerAuth
//	@Param		body	body		dto.CreateUserRequest	true	"Dados do perfil"
//	@Success	201		{object}	dto.UserResponse
//	@Router		/api/users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), req.ToInput())
	if err != nil {
		dto.FromServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(user))
}

// UpdateUser aplica um patch parcial ao perfil identificado por ?id=
//
//	@Summary	Atualiza perfil
//	@Tags		users
//	@Security	BearerAuth
//	@Param		id		query		string					true	"ID do perfil"
//	@Param		body	body		dto.UpdateUserRequest	true	"Campos a alterar"
//	@Success	200		{object}	dto.UserResponse
//	@Router		/api/users [put]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		dto.Error(c, http.StatusBadRequest, errors.ErrUserIDRequired.Error())
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, req.ToInput())
	if err != nil {
		dto.FromServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// DeleteUser remove o perfil identificado por ?id=
//
//	@Summary	Remove perfil
//	@Tags		users
//	@Security	BearerAuth
//	@Param		id	query		string	true	"ID do perfil"
//	@Success	200	{object}	dto.DeleteResponse
//	@Router		/api/users [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id := c.Query("id")
	if id == "" {
		dto.Error(c, http.StatusBadRequest, errors.ErrUserIDRequired.Error())
		return
	}

	if _, err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		dto.FromServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DeleteResponse{
		Success: true,
		Message: "User deleted successfully",
	})
}

// SearchUsers busca perfis por substring de nome, email ou slug
//
//	@Summary	Busca perfis
//	@Tags		users
//	@Security	BearerAuth
//	@Param		q		query		string	true	"Termo de busca"
//	@Param		page	query		int		false	"Página"
//	@Param		limit	query		int		false	"Itens por página"
//	@Success	200		{object}	dto.UserPageResponse
//	@Router		/api/users/search [get]
func (h *UserHandler) SearchUsers(c *gin.Context) {
	term := c.Query("q")
	if term == "" {
		dto.Error(c, http.StatusBadRequest, "Search query is required")
		return
	}

	page, err := h.userService.SearchUsers(
		c.Request.Context(),
		term,
		intQuery(c, "page", 1),
		intQuery(c, "limit", 10),
	)
	if err != nil {
		dto.FromServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserPageResponse(page))
}

// FilterUsers aplica o filtro avançado (role, status, faixa de trust
// score e faixa de data de entrada, combinados com AND)
//
//	@Summary	Filtra perfis
//	@Tags		users
//	@Security	BearerAuth
//	@Param		body	body		dto.FilterUsersRequest	true	"Critérios"
//	@Success	200		{object}	dto.UserPageResponse
//	@Router		/api/users/filter [post]
func (h *UserHandler) FilterUsers(c *gin.Context) {
	var req dto.FilterUsersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, err.Error())
		return
	}

	page, err := h.userService.FilterUsers(c.Request.Context(), req.ToInput(), req.Page, req.Limit)
	if err != nil {
		dto.FromServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserPageResponse(page))
}

// intQuery lê um inteiro da query string com default; valores não
// numéricos caem no default, como o parseInt legado
func intQuery(c *gin.Context, key string, fallback int) int {
	raw := c.Query(key)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}
