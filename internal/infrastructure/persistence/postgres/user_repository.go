package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/domain/repositories"
	"github.com/miyaru/miyaru-backend/internal/domain/valueobjects"
)

// maxSlugInsertRetries limita as novas tentativas quando duas criações
// concorrentes disputam o mesmo slug e o índice único rejeita a segunda
const maxSlugInsertRetries = 5

// UserRepository implementa repositories.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository cria um novo UserRepository
func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	if user.ID == "" {
		user.ID = uuid.NewString()
	}
	if user.Role == "" {
		user.Role = entities.RoleUser
	}
	if user.Status == "" {
		user.Status = entities.StatusActive
	}
	if user.JoinedAt.IsZero() {
		user.JoinedAt = time.Now().UTC()
	}

	// Um slug pré-semeado (login Google usa a parte local do email)
	// serve de base; senão a base vem do nome de exibição
	base := valueobjects.Slugify(user.Slug)
	if base == "" {
		base = valueobjects.Slugify(user.FullName)
	}
	if base == "" {
		base = "user"
	}

	// O loop de disponibilidade é só uma otimização; o índice único é a
	// fonte de verdade. Numa corrida residual o insert falha com
	// gorm.ErrDuplicatedKey e tentamos o próximo sufixo.
	suffix := 0
	for attempt := 0; ; attempt++ {
		slug, next, err := r.firstFreeSlug(ctx, base, suffix)
		if err != nil {
			return nil, err
		}

		user.Slug = slug
		model := toModel(user)

		err = r.db.WithContext(ctx).Create(model).Error
		if err == nil {
			return toEntity(model)
		}
		if !errors.Is(err, gorm.ErrDuplicatedKey) || attempt >= maxSlugInsertRetries {
			return nil, err
		}
		suffix = next + 1
	}
}

// firstFreeSlug procura, a partir do sufixo n, o primeiro candidato
// ainda não usado e retorna também o índice em que parou
func (r *UserRepository) firstFreeSlug(ctx context.Context, base string, n int) (string, int, error) {
	for ; ; n++ {
		candidate := valueobjects.SlugWithSuffix(base, n)

		var count int64
		err := r.db.WithContext(ctx).Model(&UserModel{}).
			Where("slug = ?", candidate).
			Count(&count).Error
		if err != nil {
			return "", n, err
		}
		if count == 0 {
			return candidate, n, nil
		}
	}
}

func (r *UserRepository) Update(ctx context.Context, id string, patch repositories.UserPatch) (*entities.User, error) {
	var model UserModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if patch.FullName != nil {
		model.FullName = *patch.FullName

		// Slug só é trocado se o novo candidato não pertence a outro
		// registro; caso contrário o slug antigo permanece válido
		candidate := valueobjects.Slugify(*patch.FullName)
		if candidate != "" && candidate != model.Slug {
			owner, err := r.FindBySlug(ctx, candidate)
			if err != nil {
				return nil, err
			}
			if owner == nil || owner.ID == id {
				model.Slug = candidate
			}
		}
	}
	if patch.Email != nil {
		model.Email = patch.Email.String()
	}
	if patch.EmailVerified != nil {
		model.EmailVerified = *patch.EmailVerified
	}
	if patch.Role != nil {
		model.Role = string(*patch.Role)
	}
	if patch.Status != nil {
		model.Status = string(*patch.Status)
	}
	if patch.TrustScore != nil {
		model.TrustScore = *patch.TrustScore
	}
	if patch.Avatar != nil {
		model.AvatarURL = patch.Avatar.URL
		model.AvatarAlt = patch.Avatar.Alt
	}
	if patch.Contact != nil {
		model.ContactFacebookPrimary = patch.Contact.FacebookPrimary
		model.ContactFacebookSecondary = patch.Contact.FacebookSecondary
		model.ContactZalo = patch.Contact.Zalo
		model.ContactWebsite = patch.Contact.Website
	}
	if patch.Insurance != nil {
		model.InsuranceAmount = patch.Insurance.Amount
		model.InsuranceCurrency = patch.Insurance.Currency
	}
	if patch.Details != nil {
		model.Details = toDetailModels(*patch.Details)
	}
	if patch.SEO != nil {
		model.SeoTitle = patch.SEO.Title
		model.SeoDescription = patch.SEO.Description
		model.SeoKeywords = patch.SEO.Keywords
	}
	if patch.LastLoginAt != nil {
		ts := patch.LastLoginAt.Unix()
		model.LastLoginAt = &ts
	}

	if err := r.db.WithContext(ctx).Save(&model).Error; err != nil {
		return nil, err
	}

	return toEntity(&model)
}

func (r *UserRepository) Delete(ctx context.Context, id string) (*entities.User, error) {
	var model UserModel

	err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	if err := r.db.WithContext(ctx).Delete(&UserModel{}, "id = ?", id).Error; err != nil {
		return nil, err
	}

	return toEntity(&model)
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*entities.User, error) {
	return r.findOne(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *UserRepository) FindBySlug(ctx context.Context, slug string) (*entities.User, error) {
	return r.findOne(ctx, "slug = ?", slug)
}

func (r *UserRepository) FindByProviderAccount(ctx context.Context, provider, accountID string) (*entities.User, error) {
	return r.findOne(ctx, "auth_provider = ? AND auth_provider_account_id = ?", provider, accountID)
}

func (r *UserRepository) findOne(ctx context.Context, query string, args ...any) (*entities.User, error) {
	var model UserModel

	err := r.db.WithContext(ctx).Where(query, args...).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toEntity(&model)
}

func (r *UserRepository) List(ctx context.Context, filters repositories.ListFilters) ([]*entities.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&UserModel{})

	if filters.Role != nil {
		query = query.Where("role = ?", string(*filters.Role))
	}
	if filters.Status != nil {
		query = query.Where("status = ?", string(*filters.Status))
	}
	if filters.Search != "" {
		query = applySearch(query, filters.Search)
	}

	return r.paginate(query, filters.Page, filters.Limit)
}

func (r *UserRepository) Search(ctx context.Context, term string, page, limit int) ([]*entities.User, int64, error) {
	query := applySearch(r.db.WithContext(ctx).Model(&UserModel{}), term)
	return r.paginate(query, page, limit)
}

func (r *UserRepository) Filter(ctx context.Context, criteria repositories.FilterCriteria, page, limit int) ([]*entities.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&UserModel{})

	if criteria.Role != nil {
		query = query.Where("role = ?", string(*criteria.Role))
	}
	if criteria.Status != nil {
		query = query.Where("status = ?", string(*criteria.Status))
	}
	if criteria.MinTrustScore != nil {
		query = query.Where("trust_score >= ?", *criteria.MinTrustScore)
	}
	if criteria.MaxTrustScore != nil {
		query = query.Where("trust_score <= ?", *criteria.MaxTrustScore)
	}
	if criteria.StartDate != nil {
		query = query.Where("joined_at >= ?", criteria.StartDate.Unix())
	}
	if criteria.EndDate != nil {
		query = query.Where("joined_at <= ?", criteria.EndDate.Unix())
	}

	return r.paginate(query, page, limit)
}

// applySearch aplica o match de substring case-insensitive sobre nome,
// email e slug (OR lógico). LOWER/LIKE funciona igual no Postgres e no
// SQLite usado nos testes.
func applySearch(query *gorm.DB, term string) *gorm.DB {
	pattern := "%" + strings.ToLower(strings.TrimSpace(term)) + "%"
	return query.Where(
		"LOWER(full_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(slug) LIKE ?",
		pattern, pattern, pattern,
	)
}

// paginate aplica ordenação por criação decrescente e a janela de
// página. Page e limit têm piso 1/10; não há teto de limit, o chamador
// pode pedir páginas arbitrariamente grandes (comportamento legado).
func (r *UserRepository) paginate(query *gorm.DB, page, limit int) ([]*entities.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var models []*UserModel
	err := query.
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&models).Error
	if err != nil {
		return nil, 0, err
	}

	users, err := toEntities(models)
	if err != nil {
		return nil, 0, err
	}
	return users, total, nil
}

func (r *UserRepository) Stats(ctx context.Context) (*repositories.DirectoryStats, error) {
	db := r.db.WithContext(ctx).Model(&UserModel{})

	stats := &repositories.DirectoryStats{
		ByRole:          make(map[entities.Role]int64),
		ByStatus:        make(map[entities.Status]int64),
		GeneratedAtUnix: time.Now().Unix(),
	}

	if err := db.Session(&gorm.Session{}).Count(&stats.TotalUsers).Error; err != nil {
		return nil, err
	}

	type bucket struct {
		Key string
		N   int64
	}

	var roleBuckets []bucket
	err := db.Session(&gorm.Session{}).
		Select("role AS key, COUNT(*) AS n").
		Group("role").
		Scan(&roleBuckets).Error
	if err != nil {
		return nil, err
	}
	for _, b := range roleBuckets {
		stats.ByRole[entities.Role(b.Key)] = b.N
	}

	var statusBuckets []bucket
	err = db.Session(&gorm.Session{}).
		Select("status AS key, COUNT(*) AS n").
		Group("status").
		Scan(&statusBuckets).Error
	if err != nil {
		return nil, err
	}
	for _, b := range statusBuckets {
		stats.ByStatus[entities.Status(b.Key)] = b.N
	}

	var aggregates struct {
		AvgTrust     float64
		SumInsurance int64
	}
	err = db.Session(&gorm.Session{}).
		Select("COALESCE(AVG(trust_score), 0) AS avg_trust, COALESCE(SUM(insurance_amount), 0) AS sum_insurance").
		Scan(&aggregates).Error
	if err != nil {
		return nil, err
	}
	stats.AverageTrust = aggregates.AvgTrust
	stats.TotalInsurance = aggregates.SumInsurance

	return stats, nil
}

// Conversores
func toModel(user *entities.User) *UserModel {
	var lastLogin *int64
	if user.LastLoginAt != nil {
		ts := user.LastLoginAt.Unix()
		lastLogin = &ts
	}

	// Zero time vira 0 para o autoCreateTime/autoUpdateTime do GORM
	// preencher na inserção (Unix() do zero time é negativo, não zero)
	var createdAt, updatedAt int64
	if !user.CreatedAt.IsZero() {
		createdAt = user.CreatedAt.Unix()
	}
	if !user.UpdatedAt.IsZero() {
		updatedAt = user.UpdatedAt.Unix()
	}

	return &UserModel{
		ID:                       user.ID,
		FullName:                 user.FullName,
		Slug:                     user.Slug,
		Email:                    user.Email.String(),
		EmailVerified:            user.EmailVerified,
		Role:                     string(user.Role),
		Status:                   string(user.Status),
		TrustScore:               user.TrustScore,
		AvatarURL:                user.Avatar.URL,
		AvatarAlt:                user.Avatar.Alt,
		ContactFacebookPrimary:   user.Contact.FacebookPrimary,
		ContactFacebookSecondary: user.Contact.FacebookSecondary,
		ContactZalo:              user.Contact.Zalo,
		ContactWebsite:           user.Contact.Website,
		InsuranceAmount:          user.Insurance.Amount,
		InsuranceCurrency:        user.Insurance.Currency,
		Details:                  toDetailModels(user.Details),
		SeoTitle:                 user.SEO.Title,
		SeoDescription:           user.SEO.Description,
		SeoKeywords:              user.SEO.Keywords,
		AuthProvider:             user.Auth.Provider,
		AuthProviderAccountID:    user.Auth.ProviderAccountID,
		JoinedAt:                 user.JoinedAt.Unix(),
		LastLoginAt:              lastLogin,
		CreatedAt:                createdAt,
		UpdatedAt:                updatedAt,
	}
}

func toEntity(model *UserModel) (*entities.User, error) {
	email, err := valueobjects.NewEmail(model.Email)
	if err != nil {
		return nil, err
	}

	var lastLogin *time.Time
	if model.LastLoginAt != nil {
		ts := time.Unix(*model.LastLoginAt, 0).UTC()
		lastLogin = &ts
	}

	return &entities.User{
		ID:            model.ID,
		FullName:      model.FullName,
		Slug:          model.Slug,
		Email:         email,
		EmailVerified: model.EmailVerified,
		Role:          entities.Role(model.Role),
		Status:        entities.Status(model.Status),
		TrustScore:    model.TrustScore,
		Avatar: entities.Avatar{
			URL: model.AvatarURL,
			Alt: model.AvatarAlt,
		},
		Contact: entities.Contact{
			FacebookPrimary:   model.ContactFacebookPrimary,
			FacebookSecondary: model.ContactFacebookSecondary,
			Zalo:              model.ContactZalo,
			Website:           model.ContactWebsite,
		},
		Insurance: entities.Insurance{
			Amount:   model.InsuranceAmount,
			Currency: model.InsuranceCurrency,
		},
		Details: toDetailEntities(model.Details),
		SEO: entities.SEO{
			Title:       model.SeoTitle,
			Description: model.SeoDescription,
			Keywords:    model.SeoKeywords,
		},
		Auth: entities.AuthAccount{
			Provider:          model.AuthProvider,
			ProviderAccountID: model.AuthProviderAccountID,
		},
		JoinedAt:    time.Unix(model.JoinedAt, 0).UTC(),
		LastLoginAt: lastLogin,
		CreatedAt:   time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0).UTC(),
	}, nil
}

func toEntities(models []*UserModel) ([]*entities.User, error) {
	users := make([]*entities.User, 0, len(models))

	for _, model := range models {
		user, err := toEntity(model)
		if err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	return users, nil
}

func toDetailModels(details []entities.Detail) []DetailModel {
	if len(details) == 0 {
		return nil
	}
	out := make([]DetailModel, len(details))
	for i, d := range details {
		out[i] = DetailModel{Title: d.Title, Content: d.Content}
	}
	return out
}

func toDetailEntities(details []DetailModel) []entities.Detail {
	if len(details) == 0 {
		return nil
	}
	out := make([]entities.Detail, len(details))
	for i, d := range details {
		out[i] = entities.Detail{Title: d.Title, Content: d.Content}
	}
	return out
}
