package entities

import (
	"errors"
	"time"

	"github.com/miyaru/miyaru-backend/internal/domain/valueobjects"
)

const AuthProviderGoogle = "google"

// Moedas aceitas para o fundo de seguro
const (
	CurrencyVND = "VND"
	CurrencyUSD = "USD"
)

// Avatar é a forma canônica do avatar; payloads legados (string pura)
// são normalizados na borda de ingestão e nunca chegam até aqui
type Avatar struct {
	URL string
	Alt string
}

// Contact agrupa os canais de contato opcionais de um perfil
type Contact struct {
	FacebookPrimary   string
	FacebookSecondary string
	Zalo              string
	Website           string
}

// Insurance representa o fundo de seguro do perfil
type Insurance struct {
	Amount   int64
	Currency string
}

// Detail é um par (título, conteúdo) com dados bancários
type Detail struct {
	Title   string
	Content string
}

// SEO agrupa os metadados de apresentação pública do perfil
type SEO struct {
	Title       string
	Description string
	Keywords    []string
}

// AuthAccount identifica a conta do provedor de login externo
type AuthAccount struct {
	Provider          string
	ProviderAccountID string
}

// User representa um perfil do diretório de confiança
type User struct {
	ID            string
	FullName      string
	Slug          string
	Email         valueobjects.Email
	EmailVerified bool
	Role          Role
	Status        Status
	TrustScore    int
	Avatar        Avatar
	Contact       Contact
	Insurance     Insurance
	Details       []Detail
	SEO           SEO
	Auth          AuthAccount
	JoinedAt      time.Time
	LastLoginAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// IsAdmin verifica se o perfil tem privilégio de administração
func (u *User) IsAdmin() bool {
	return u.Role.AtLeast(RoleAdmin)
}

// Validate valida regras de negócio da entidade User
func (u *User) Validate() error {
	if u.FullName == "" {
		return errors.New("fullName is required")
	}

	if u.Email.String() == "" {
		return errors.New("email is required")
	}

	if u.Slug == "" {
		return errors.New("slug is required")
	}

	if !u.Role.IsValid() {
		return errors.New("invalid role")
	}

	if !u.Status.IsValid() {
		return errors.New("invalid status")
	}

	if u.TrustScore < 0 || u.TrustScore > 100 {
		return errors.New("trustScore must be between 0 and 100")
	}

	return nil
}
