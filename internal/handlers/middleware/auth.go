package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/domain/errors"
	"github.com/miyaru/miyaru-backend/internal/handlers/dto"
	"github.com/miyaru/miyaru-backend/internal/infrastructure/auth"
)

// Chaves do contexto preenchidas após autenticação
const (
	CtxUserIDKey = "auth_uid"
	CtxRoleKey   = "auth_role"
)

// AuthMiddleware autentica o bearer token e aplica o gate de
// privilégio mínimo por rota
type AuthMiddleware struct {
	tokens *auth.TokenService
}

// NewAuthMiddleware cria um novo AuthMiddleware
func NewAuthMiddleware(tokens *auth.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens}
}

// RequireRole exige um token válido com role de nível maior ou igual
// ao mínimo. Falta de token, token inválido e privilégio insuficiente
// respondem todos 401 com as mensagens legadas.
func (m *AuthMiddleware) RequireRole(minimum entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			abortUnauthorized(c, errors.ErrNoToken.Error())
			return
		}

		m.authenticate(c, token, minimum)
	}
}

// RequireRoleToken é a variante para o websocket do dashboard, onde o
// browser não consegue enviar headers: aceita o token também no query
// param "token"
func (m *AuthMiddleware) RequireRoleToken(minimum entities.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			token = c.Query("token")
		}
		if token == "" {
			abortUnauthorized(c, errors.ErrNoToken.Error())
			return
		}

		m.authenticate(c, token, minimum)
	}
}

func (m *AuthMiddleware) authenticate(c *gin.Context, token string, minimum entities.Role) {
	claims, err := m.tokens.Verify(token)
	if err != nil {
		abortUnauthorized(c, errors.ErrInvalidToken.Error())
		return
	}

	if !claims.Role.AtLeast(minimum) {
		abortUnauthorized(c, errors.ErrInsufficientPermissions.Error())
		return
	}

	c.Set(CtxUserIDKey, claims.UID)
	c.Set(CtxRoleKey, claims.Role)
	c.Next()
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: msg})
}

// bearerToken extrai o token do header Authorization
func bearerToken(header string) (string, bool) {
	header = strings.TrimSpace(header)
	if header == "" {
		return "", false
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}

	token := strings.TrimSpace(parts[1])
	if token == "" {
		return "", false
	}

	return token, true
}
