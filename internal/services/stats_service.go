package services

import (
	"context"

	"github.com/miyaru/miyaru-backend/internal/domain/ports"
	"github.com/miyaru/miyaru-backend/internal/domain/repositories"
)

// StatsService produz o snapshot agregado consumido pelos gráficos do
// back-office
type StatsService struct {
	userRepo repositories.UserRepository
	logger   ports.Logger
}

// NewStatsService cria um novo StatsService
func NewStatsService(userRepo repositories.UserRepository, logger ports.Logger) *StatsService {
	return &StatsService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// GetDashboardStats retorna totais, contagens por role/status e médias
func (s *StatsService) GetDashboardStats(ctx context.Context) (*repositories.DirectoryStats, error) {
	return s.userRepo.Stats(ctx)
}
