// Package stats computes dashboard metrics over a date range and compares
// them with the preceding period of equal length.
package stats

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/config"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

type statsRepo interface {
	DealCounts(ctx context.Context, ownerID uuid.UUID, p domain.Period) (domain.DealCounts, error)
	PipelineAmount(ctx context.Context, ownerID uuid.UUID) (int64, error)
	CountCreated(ctx context.Context, table string, ownerID uuid.UUID, p domain.Period) (int64, error)
	TodosCompleted(ctx context.Context, ownerID uuid.UUID, p domain.Period) (int64, error)
	OverdueTodos(ctx context.Context, ownerID uuid.UUID, now time.Time) (int64, error)
}

type statsCache interface {
	Get(ctx context.Context, userID uuid.UUID, rangeKey string) (*domain.DashboardStats, error)
	Set(ctx context.Context, userID uuid.UUID, rangeKey string, stats *domain.DashboardStats, ttl time.Duration) error
}

// Service builds dashboard statistics.
type Service struct {
	log   *slog.Logger
	repo  statsRepo
	cache statsCache
	cfg   config.StatsConfig
	now   func() time.Time
}

// NewService creates a stats service. cache may be nil, which disables caching.
func NewService(logger *slog.Logger, repo statsRepo, cache statsCache, cfg config.StatsConfig) *Service {
	return &Service{
		log:   logger.With("service", "stats"),
		repo:  repo,
		cache: cache,
		cfg:   cfg,
		now:   time.Now,
	}
}
