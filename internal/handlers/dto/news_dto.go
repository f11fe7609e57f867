package dto

import (
	"time"

	"github.com/miyaru/miyaru-backend/internal/domain/entities"
	"github.com/miyaru/miyaru-backend/internal/domain/repositories"
)

// NewsResponse representa uma notícia do feed público
type NewsResponse struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Summary     string     `json:"summary"`
	Content     string     `json:"content"`
	AuthorID    string     `json:"authorId,omitempty"`
	PublishedAt *time.Time `json:"publishedAt,omitempty"`
}

// ToNewsResponses converte a lista de notícias
func ToNewsResponses(news []*entities.News) []NewsResponse {
	out := make([]NewsResponse, len(news))
	for i, n := range news {
		out[i] = NewsResponse{
			ID:          n.ID,
			Title:       n.Title,
			Slug:        n.Slug,
			Summary:     n.Summary,
			Content:     n.Content,
			AuthorID:    n.AuthorID,
			PublishedAt: n.PublishedAt,
		}
	}
	return out
}

// StatsResponse é o snapshot agregado exibido no dashboard
type StatsResponse struct {
	TotalUsers        int64            `json:"totalUsers"`
	ByRole            map[string]int64 `json:"byRole"`
	ByStatus          map[string]int64 `json:"byStatus"`
	AverageTrustScore float64          `json:"averageTrustScore"`
	TotalInsurance    int64            `json:"totalInsurance"`
	GeneratedAt       int64            `json:"generatedAt"`
}

// ToStatsResponse converte o snapshot do repositório
func ToStatsResponse(stats *repositories.DirectoryStats) StatsResponse {
	byRole := make(map[string]int64, len(stats.ByRole))
	for role, n := range stats.ByRole {
		byRole[string(role)] = n
	}
	byStatus := make(map[string]int64, len(stats.ByStatus))
	for status, n := range stats.ByStatus {
		byStatus[string(status)] = n
	}

	return StatsResponse{
		TotalUsers:        stats.TotalUsers,
		ByRole:            byRole,
		ByStatus:          byStatus,
		AverageTrustScore: stats.AverageTrust,
		TotalInsurance:    stats.TotalInsurance,
		GeneratedAt:       stats.GeneratedAtUnix,
	}
}
