package http

import (
	errs "errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miyaru/miyaru-backend/internal/domain/errors"
	"github.com/miyaru/miyaru-backend/internal/handlers/dto"
	"github.com/miyaru/miyaru-backend/internal/services"
)

// AuthHandler lida com o login via Google
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler cria um novo AuthHandler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// LoginWithGoogle autentica com um ID token do Google e emite o JWT da
// aplicação
//
//	@Summary	Login via Google
//	@Tags		auth
//	@Param		body	body		dto.GoogleLoginRequest	true	"ID token do Google"
//	@Success	200		{object}	dto.GoogleLoginResponse
//	@Router		/api/auth/google [post]
func (h *AuthHandler) LoginWithGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		dto.Error(c, http.StatusBadRequest, errors.ErrIDTokenRequired.Error())
		return
	}

	result, err := h.authService.LoginWithGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		if errs.Is(err, errors.ErrInvalidToken) {
			dto.Error(c, http.StatusUnauthorized, err.Error())
			return
		}
		dto.FromServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.GoogleLoginResponse{
		User:  dto.ToUserResponse(result.User),
		Token: result.Token,
	})
}
