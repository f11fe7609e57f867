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

const (
	profileCacheKeyPrefix = "profile:slug:"
	newsCacheKey          = "news:discover"
	newsDiscoverLimit     = 20
)

// ProfileService serve a superfície pública de leitura (página de
// perfil e feed de notícias), com cache de TTL curto na frente das
// consultas
type ProfileService struct {
	userRepo repositories.UserRepository
	newsRepo repositories.NewsRepository
	cache    ports.Cache
	ttl      time.Duration
	logger   ports.Logger
}

// NewProfileService cria um novo ProfileService
func NewProfileService(
	userRepo repositories.UserRepository,
	newsRepo repositories.NewsRepository,
	cache ports.Cache,
	ttl time.Duration,
	logger ports.Logger,
) *ProfileService {
	if ttl <= 0 {
		ttl = 60 * time.Second
	}
	return &ProfileService{
		userRepo: userRepo,
		newsRepo: newsRepo,
		cache:    cache,
		ttl:      ttl,
		logger:   logger,
	}
}

// cachedProfile é a projeção cacheada de um perfil público
type cachedProfile struct {
	ID            string             `json:"id"`
	FullName      string             `json:"fullName"`
	Slug          string             `json:"slug"`
	Email         string             `json:"email"`
	EmailVerified bool               `json:"emailVerified"`
	Role          string             `json:"role"`
	Status        string             `json:"status"`
	TrustScore    int                `json:"trustScore"`
	Avatar        entities.Avatar    `json:"avatar"`
	Contact       entities.Contact   `json:"contact"`
	Insurance     entities.Insurance `json:"insurance"`
	Details       []entities.Detail  `json:"details"`
	SEO           entities.SEO       `json:"seo"`
	JoinedAt      time.Time          `json:"joinedAt"`
	CreatedAt     time.Time          `json:"createdAt"`
}

// GetProfileBySlug busca o perfil público pela chave de URL
func (s *ProfileService) GetProfileBySlug(ctx context.Context, slug string) (*entities.User, error) {
	key := profileCacheKeyPrefix + slug

	var cached cachedProfile
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return cached.toEntity()
	}

	user, err := s.userRepo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, errors.ErrUserNotFound
	}

	if err := s.cache.SetJSON(ctx, key, fromEntity(user), s.ttl); err != nil {
		s.logger.Warn("profile cache write failed", "slug", slug, "error", err)
	}

	return user, nil
}

// GetDiscoverNews retorna as notícias publicadas mais recentes
func (s *ProfileService) GetDiscoverNews(ctx context.Context) ([]*entities.News, error) {
	var cached []*entities.News
	if hit, err := s.cache.GetJSON(ctx, newsCacheKey, &cached); err == nil && hit {
		return cached, nil
	}

	news, err := s.newsRepo.ListPublished(ctx, newsDiscoverLimit)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetJSON(ctx, newsCacheKey, news, s.ttl); err != nil {
		s.logger.Warn("news cache write failed", "error", err)
	}

	return news, nil
}

func fromEntity(user *entities.User) cachedProfile {
	return cachedProfile{
		ID:            user.ID,
		FullName:      user.FullName,
		Slug:          user.Slug,
		Email:         user.Email.String(),
		EmailVerified: user.EmailVerified,
		Role:          string(user.Role),
		Status:        string(user.Status),
		TrustScore:    user.TrustScore,
		Avatar:        user.Avatar,
		Contact:       user.Contact,
		Insurance:     user.Insurance,
		Details:       user.Details,
		SEO:           user.SEO,
		JoinedAt:      user.JoinedAt,
		CreatedAt:     user.CreatedAt,
	}
}

func (c cachedProfile) toEntity() (*entities.User, error) {
	email, err := valueobjects.NewEmail(c.Email)
	if err != nil {
		return nil, err
	}

	return &entities.User{
		ID:            c.ID,
		FullName:      c.FullName,
		Slug:          c.Slug,
		Email:         email,
		EmailVerified: c.EmailVerified,
		Role:          entities.Role(c.Role),
		Status:        entities.Status(c.Status),
		TrustScore:    c.TrustScore,
		Avatar:        c.Avatar,
		Contact:       c.Contact,
		Insurance:     c.Insurance,
		Details:       c.Details,
		SEO:           c.SEO,
		JoinedAt:      c.JoinedAt,
		CreatedAt:     c.CreatedAt,
	}, nil
}
