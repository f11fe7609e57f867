package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/miyaru/miyaru-backend/internal/domain/errors"
)

// ErrorResponse é o envelope de erro legado: {"error": mensagem}
type ErrorResponse struct {
	Error string `json:"error"`
}

// DeleteResponse é a resposta legada do delete
type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Error escreve o envelope de erro legado com o status dado
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, ErrorResponse{Error: msg})
}

// FromServiceError mapeia erros da camada de serviço para o contrato
// legado: erros de negócio (validação, conflito, não-encontrado) viram
// 400; qualquer outro vira 500 com a mensagem crua exposta
func FromServiceError(c *gin.Context, err error) {
	if errors.IsBusiness(err) {
		Error(c, http.StatusBadRequest, err.Error())
		return
	}
	Error(c, http.StatusInternalServerError, err.Error())
}
