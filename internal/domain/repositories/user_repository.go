package repositories

import (
	"context"
	"time"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/domain/valueobjects"
)

// UserRepository define a interface para persistência de perfis.
// Buscas pontuais retornam (nil, nil) quando o registro não existe;
// ausência não é erro nessa camada.
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	Update(ctx context.Context, id string, patch UserPatch) (*entities.User, error)
	Delete(ctx context.Context, id string) (*entities.User, error)

	FindByID(ctx context.Context, id string) (*entities.User, error)
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindBySlug(ctx context.Context, slug string) (*entities.User, error)
	FindByProviderAccount(ctx context.Context, provider, accountID string) (*entities.User, error)

	List(ctx context.Context, filters ListFilters) ([]*entities.User, int64, error)
	Search(ctx context.Context, term string, page, limit int) ([]*entities.User, int64, error)
	Filter(ctx context.Context, criteria FilterCriteria, page, limit int) ([]*entities.User, int64, error)

	Stats(ctx context.Context) (*DirectoryStats, error)
}

// ListFilters contém os filtros da listagem principal
type ListFilters struct {
	Role   *entities.Role
	Status *entities.Status
	Search string // substring case-insensitive sobre nome, email e slug
	Page   int    // começa em 1
	Limit  int    // default 10; sem teto (comportamento legado preservado)
}

// FilterCriteria contém os critérios do endpoint de filtro avançado.
// Campos ausentes não impõem restrição; os presentes são combinados
// com AND. As faixas de trust score são inclusivas.
type FilterCriteria struct {
	Role          *entities.Role
	Status        *entities.Status
	MinTrustScore *int
	MaxTrustScore *int
	StartDate     *time.Time // sobre joinedAt
	EndDate       *time.Time
}

// UserPatch é o patch parcial de atualização; somente campos não-nil
// são aplicados
type UserPatch struct {
	FullName      *string
	Email         *valueobjects.Email
	EmailVerified *bool
	Role          *entities.Role
	Status        *entities.Status
	TrustScore    *int
	Avatar        *entities.Avatar
	Contact       *entities.Contact
	Insurance     *entities.Insurance
	Details       *[]entities.Detail
	SEO           *entities.SEO
	LastLoginAt   *time.Time
}

// DirectoryStats é o snapshot agregado exibido no dashboard
type DirectoryStats struct {
	TotalUsers      int64
	ByRole          map[entities.Role]int64
	ByStatus        map[entities.Status]int64
	AverageTrust    float64
	TotalInsurance  int64
	GeneratedAtUnix int64
}
