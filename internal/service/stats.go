package service

import (
	"context"

	"github.com/JENIELPUSA/DisasterAppServer-sub000/internal/domain"
)

type statsService struct {
	repo LocationCheckRepository
}

func NewStatsService(repo LocationCheckRepository) StatsService {
	return &statsService{repo: repo}
}

func (s *statsService) GetStats(ctx context.Context, req domain.StatsRequest) (*domain.LocationStats, error) {
	minutes := req.Minutes
	if minutes == 0 {
		minutes = 60
	}
	return s.repo.CountChecks(ctx, minutes)
}
