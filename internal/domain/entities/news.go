package entities

import "time"

// NewsStatus representa o estado de publicação de uma notícia
type NewsStatus string

const (
	NewsDraft     NewsStatus = "draft"
	NewsPublished NewsStatus = "published"
)

// News representa uma notícia do feed público do diretório
type News struct {
	ID          string
	Title       string
	Slug        string
	Summary     string
	Content     string
	Status      NewsStatus
	AuthorID    string
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
