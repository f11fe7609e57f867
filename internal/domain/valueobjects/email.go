package valueobjects

import (
	"errors"
	"regexp"
	"strings"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
)

var emailPattern = regexp.MustCompile(`^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,}$`)

// Email é um value object que garante que emails sejam sempre válidos
// e normalizados em minúsculas
type Email struct {
	value string
}

// NewEmail cria um novo Email validado
func NewEmail(email string) (Email, error) {
	email = strings.TrimSpace(strings.ToLower(email))

	if !isValidEmail(email) {
		return Email{}, ErrInvalidEmail
	}

	return Email{value: email}, nil
}

// String retorna o valor do email
func (e Email) String() string {
	return e.value
}

// LocalPart retorna a parte antes do @ (usada como semente de slug no
// primeiro login via Google)
func (e Email) LocalPart() string {
	at := strings.IndexByte(e.value, '@')
	if at < 0 {
		return e.value
	}
	return e.value[:at]
}

// isValidEmail valida o formato do email
func isValidEmail(email string) bool {
	if len(email) < 3 || len(email) > 254 {
		return false
	}
	return emailPattern.MatchString(email)
}
