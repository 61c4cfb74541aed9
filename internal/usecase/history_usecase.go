package usecase

import (
	"context"
	"errors"

	"resume-forge/internal/repository"
)

var ErrHistoryUnavailable = errors.New("generation history unavailable")

type HistoryUsecase interface {
	RecentGenerations(ctx context.Context, limit int) ([]repository.Generation, error)
}

type History struct {
	repo repository.GenerationRepository
}

func NewHistoryUsecase(repo repository.GenerationRepository) *History {
	return &History{repo: repo}
}

func (h *History) RecentGenerations(ctx context.Context, limit int) ([]repository.Generation, error) {
	if h == nil || h.repo == nil {
		return nil, ErrHistoryUnavailable
	}
	return h.repo.ListRecent(ctx, limit)
}
