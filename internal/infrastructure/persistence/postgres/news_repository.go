package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/domain/repositories"
)

// NewsRepository implementa repositories.NewsRepository
type NewsRepository struct {
	db *gorm.DB
}

// NewNewsRepository cria um novo NewsRepository
func NewNewsRepository(db *gorm.DB) repositories.NewsRepository {
	return &NewsRepository{db: db}
}

func (r *NewsRepository) Create(ctx context.Context, news *entities.News) (*entities.News, error) {
	if news.ID == "" {
		news.ID = uuid.NewString()
	}
	if news.Status == "" {
		news.Status = entities.NewsDraft
	}

	model := toNewsModel(news)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return nil, err
	}

	return toNewsEntity(model), nil
}

func (r *NewsRepository) FindBySlug(ctx context.Context, slug string) (*entities.News, error) {
	var model NewsModel

	err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return toNewsEntity(&model), nil
}

func (r *NewsRepository) ListPublished(ctx context.Context, limit int) ([]*entities.News, error) {
	if limit < 1 {
		limit = 20
	}

	var models []*NewsModel
	err := r.db.WithContext(ctx).
		Where("status = ?", string(entities.NewsPublished)).
		Order("published_at DESC").
		Limit(limit).
		Find(&models).Error
	if err != nil {
		return nil, err
	}

	news := make([]*entities.News, len(models))
	for i, m := range models {
		news[i] = toNewsEntity(m)
	}
	return news, nil
}

func toNewsModel(news *entities.News) *NewsModel {
	var publishedAt *int64
	if news.PublishedAt != nil {
		ts := news.PublishedAt.Unix()
		publishedAt = &ts
	}

	var createdAt, updatedAt int64
	if !news.CreatedAt.IsZero() {
		createdAt = news.CreatedAt.Unix()
	}
	if !news.UpdatedAt.IsZero() {
		updatedAt = news.UpdatedAt.Unix()
	}

	return &NewsModel{
		ID:          news.ID,
		Title:       news.Title,
		Slug:        news.Slug,
		Summary:     news.Summary,
		Content:     news.Content,
		Status:      string(news.Status),
		AuthorID:    news.AuthorID,
		PublishedAt: publishedAt,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
	}
}

func toNewsEntity(model *NewsModel) *entities.News {
	var publishedAt *time.Time
	if model.PublishedAt != nil {
		ts := time.Unix(*model.PublishedAt, 0).UTC()
		publishedAt = &ts
	}

	return &entities.News{
		ID:          model.ID,
		Title:       model.Title,
		Slug:        model.Slug,
		Summary:     model.Summary,
		Content:     model.Content,
		Status:      entities.NewsStatus(model.Status),
		AuthorID:    model.AuthorID,
		PublishedAt: publishedAt,
		CreatedAt:   time.Unix(model.CreatedAt, 0).UTC(),
		UpdatedAt:   time.Unix(model.UpdatedAt, 0).UTC(),
	}
}
