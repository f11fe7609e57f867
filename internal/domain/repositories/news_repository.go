package repositories

import (
	"context"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
)

// NewsRepository define a interface para persistência de notícias
type NewsRepository interface {
	Create(ctx context.Context, news *entities.News) (*entities.News, error)
	FindBySlug(ctx context.Context, slug string) (*entities.News, error)
	// ListPublished retorna notícias publicadas ordenadas por
	// publishedAt decrescente, limitadas a limit
	ListPublished(ctx context.Context, limit int) ([]*entities.News, error)
}
