package errors

import (
	"errors"

	"github.com/miyaru/miyaru-backend/internal/domain/valueobjects"
)

// Business errors
// Nota: As mensagens são exatamente as que o frontend legado consome
// no envelope {"error": ...}; não traduzir nem reformatar.
var (
	ErrUserNotFound          = errors.New("User not found")
	ErrEmailAlreadyExists    = errors.New("Email already exists")
	ErrFullNameEmailRequired = errors.New("fullName and email are required")
	ErrUserIDRequired        = errors.New("User ID is required")
	ErrSearchTermRequired    = errors.New("Search term is required")
)

// Validation errors
var (
	ErrInvalidRole       = errors.New("Invalid role")
	ErrInvalidStatus     = errors.New("Invalid status")
	ErrInvalidTrustScore = errors.New("trustScore must be between 0 and 100")
	ErrInvalidDate       = errors.New("Invalid date format")
)

// Auth errors
var (
	ErrNoToken                 = errors.New("No token provided")
	ErrInvalidToken            = errors.New("Invalid token")
	ErrInsufficientPermissions = errors.New("Insufficient permissions")
	ErrIDTokenRequired         = errors.New("idToken is required")
)

// IsBusiness indica se o erro deve virar 400 na borda HTTP
// (qualquer outro erro vira 500 com a mensagem crua)
func IsBusiness(err error) bool {
	for _, known := range []error{
		ErrUserNotFound,
		ErrEmailAlreadyExists,
		ErrFullNameEmailRequired,
		ErrUserIDRequired,
		ErrSearchTermRequired,
		ErrIDTokenRequired,
		ErrInvalidRole,
		ErrInvalidStatus,
		ErrInvalidTrustScore,
		ErrInvalidDate,
		valueobjects.ErrInvalidEmail,
	} {
		if errors.Is(err, known) {
			return true
		}
	}
	return false
}
