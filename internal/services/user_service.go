package services

import (
	"context"
	"time"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/domain/errors"
	"github.com/miyaru/miyaru-backend/internal/domain/ports"
	"github.com/miyaru/miyaru-backend/internal/domain/repositories"
	"github.com/miyaru/miyaru-backend/internal/domain/valueobjects"
)

// Pagination é o envelope de paginação consumido pelo frontend legado
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// UserPage é uma página de perfis com seus metadados
type UserPage struct {
	Data       []*entities.User
	Pagination Pagination
}

// UserService contém as regras de negócio dos perfis: unicidade de
// email, campos obrigatórios e normalização dos parâmetros de consulta.
// A camada de consulta (repository) não valida nada disso.
type UserService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewUserService cria um novo UserService
func NewUserService(userRepo repositories.UserRepository, logger ports.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// CreateUserInput representa os dados para criar um perfil
type CreateUserInput struct {
	FullName      string
	Email         string
	EmailVerified bool
	Role          string
	Status        string
	TrustScore    int
	Avatar        entities.Avatar
	Contact       entities.Contact
	Insurance     entities.Insurance
	Details       []entities.Detail
	SEO           entities.SEO
	JoinedAt      *time.Time
}

// CreateUser cria um novo perfil após validar campos obrigatórios e
// unicidade de email
func (s *UserService) CreateUser(ctx context.Context, input CreateUserInput) (*entities.User, error) {
	if input.FullName == "" || input.Email == "" {
		return nil, errors.ErrFullNameEmailRequired
	}

	email, err := valueobjects.NewEmail(input.Email)
	if err != nil {
		return nil, err
	}

	if input.Role != "" && !entities.Role(input.Role).IsValid() {
		return nil, errors.ErrInvalidRole
	}
	if input.Status != "" && !entities.Status(input.Status).IsValid() {
		return nil, errors.ErrInvalidStatus
	}
	if input.TrustScore < 0 || input.TrustScore > 100 {
		return nil, errors.ErrInvalidTrustScore
	}

	existing, err := s.userRepo.FindByEmail(ctx, email.String())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.ErrEmailAlreadyExists
	}

	user := &entities.User{
		FullName:      input.FullName,
		Email:         email,
		EmailVerified: input.EmailVerified,
		Role:          entities.Role(input.Role),
		Status:        entities.Status(input.Status),
		TrustScore:    input.TrustScore,
		Avatar:        input.Avatar,
		Contact:       input.Contact,
		Insurance:     input.Insurance,
		Details:       input.Details,
		SEO:           input.SEO,
	}
	if input.JoinedAt != nil {
		user.JoinedAt = *input.JoinedAt
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.logger.Info("user created", "id", created.ID, "slug", created.Slug)
	return created, nil
}

// UpdateUserInput é o patch parcial aceito pelo update; campos nil não
// são tocados
type UpdateUserInput struct {
	FullName      *string
	Email         *string
	EmailVerified *bool
	Role          *string
	Status        *string
	TrustScore    *int
	Avatar        *entities.Avatar
	Contact       *entities.Contact
	Insurance     *entities.Insurance
	Details       *[]entities.Detail
	SEO           *entities.SEO
}

// UpdateUser aplica um patch parcial; mudança de email re-checa
// unicidade excluindo o próprio registro
func (s *UserService) UpdateUser(ctx context.Context, id string, input UpdateUserInput) (*entities.User, error) {
	if id == "" {
		return nil, errors.ErrUserIDRequired
	}

	patch := repositories.UserPatch{
		FullName:      input.FullName,
		EmailVerified: input.EmailVerified,
		TrustScore:    input.TrustScore,
		Avatar:        input.Avatar,
		Contact:       input.Contact,
		Insurance:     input.Insurance,
		Details:       input.Details,
		SEO:           input.SEO,
	}

	if input.Email != nil {
		email, err := valueobjects.NewEmail(*input.Email)
		if err != nil {
			return nil, err
		}

		owner, err := s.userRepo.FindByEmail(ctx, email.String())
		if err != nil {
			return nil, err
		}
		if owner != nil && owner.ID != id {
			return nil, errors.ErrEmailAlreadyExists
		}
		patch.Email = &email
	}

	if input.Role != nil {
		role := entities.Role(*input.Role)
		if !role.IsValid() {
			return nil, errors.ErrInvalidRole
		}
		patch.Role = &role
	}
	if input.Status != nil {
		status := entities.Status(*input.Status)
		if !status.IsValid() {
			return nil, errors.ErrInvalidStatus
		}
		patch.Status = &status
	}
	if input.TrustScore != nil && (*input.TrustScore < 0 || *input.TrustScore > 100) {
		return nil, errors.ErrInvalidTrustScore
	}

	updated, err := s.userRepo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, errors.ErrUserNotFound
	}

	return updated, nil
}

// DeleteUser remove um perfil por id (hard delete, sem recuperação)
func (s *UserService) DeleteUser(ctx context.Context, id string) (*entities.User, error) {
	if id == "" {
		return nil, errors.ErrUserIDRequired
	}

	deleted, err := s.userRepo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	if deleted == nil {
		return nil, errors.ErrUserNotFound
	}

	s.logger.Info("user deleted", "id", id)
	return deleted, nil
}

// ListUsersQuery são os parâmetros da listagem principal
type ListUsersQuery struct {
	Page   int
	Limit  int
	Role   string
	Status string
	Search string
}

// GetUsers lista perfis com filtros de role/status e busca livre
func (s *UserService) GetUsers(ctx context.Context, query ListUsersQuery) (*UserPage, error) {
	filters := repositories.ListFilters{
		Search: query.Search,
		Page:   query.Page,
		Limit:  query.Limit,
	}

	// Valores fora da enumeração passam adiante e não casam com nada,
	// como no comportamento original
	if query.Role != "" {
		role := entities.Role(query.Role)
		filters.Role = &role
	}
	if query.Status != "" {
		status := entities.Status(query.Status)
		filters.Status = &status
	}

	users, total, err := s.userRepo.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	return newUserPage(users, total, query.Page, query.Limit), nil
}

// SearchUsers busca por substring sobre nome, email e slug
func (s *UserService) SearchUsers(ctx context.Context, term string, page, limit int) (*UserPage, error) {
	if term == "" {
		return nil, errors.ErrSearchTermRequired
	}

	users, total, err := s.userRepo.Search(ctx, term, page, limit)
	if err != nil {
		return nil, err
	}

	return newUserPage(users, total, page, limit), nil
}

// FilterUsersInput são os critérios do filtro avançado; datas chegam
// como string e são normalizadas aqui, antes da camada de consulta
type FilterUsersInput struct {
	Role          string
	Status        string
	MinTrustScore *int
	MaxTrustScore *int
	StartDate     string
	EndDate       string
}

// FilterUsers combina os critérios presentes com AND
func (s *UserService) FilterUsers(ctx context.Context, input FilterUsersInput, page, limit int) (*UserPage, error) {
	criteria := repositories.FilterCriteria{
		MinTrustScore: input.MinTrustScore,
		MaxTrustScore: input.MaxTrustScore,
	}

	if input.Role != "" {
		role := entities.Role(input.Role)
		criteria.Role = &role
	}
	if input.Status != "" {
		status := entities.Status(input.Status)
		criteria.Status = &status
	}

	if input.StartDate != "" {
		start, err := parseDate(input.StartDate)
		if err != nil {
			return nil, errors.ErrInvalidDate
		}
		criteria.StartDate = &start
	}
	if input.EndDate != "" {
		end, err := parseDate(input.EndDate)
		if err != nil {
			return nil, errors.ErrInvalidDate
		}
		criteria.EndDate = &end
	}

	users, total, err := s.userRepo.Filter(ctx, criteria, page, limit)
	if err != nil {
		return nil, err
	}

	return newUserPage(users, total, page, limit), nil
}

// parseDate aceita RFC 3339 e o formato curto de data usado pelos
// filtros do back-office
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

func newUserPage(users []*entities.User, total int64, page, limit int) *UserPage {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	pages := int(total) / limit
	if int(total)%limit != 0 {
		pages++
	}

	return &UserPage{
		Data: users,
		Pagination: Pagination{
			Page:  page,
			Limit: limit,
			Total: total,
			Pages: pages,
		},
	}
}
