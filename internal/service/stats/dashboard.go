package stats

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/pkg/ctxutil"
)

// Dashboard returns the authenticated user's metrics for the requested range.
func (s *Service) Dashboard(ctx context.Context, input RangeInput) (*domain.DashboardStats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.now().UTC()
	w, err := resolveRange(input, s.cfg.DefaultRange, now)
	if err != nil {
		return nil, err
	}

	if cached := s.cached(ctx, userID, w.key); cached != nil {
		return cached, nil
	}

	var (
		cur, prev         domain.PeriodCounts
		pipeline, overdue int64
	)

	g, gctx := errgroup.WithContext(ctx)
	s.collect(gctx, g, userID, w.current, &cur)
	s.collect(gctx, g, userID, w.previous, &prev)
	g.Go(func() error {
		var err error
		pipeline, err = s.repo.PipelineAmount(gctx, userID)
		return err
	})
	g.Go(func() error {
		var err error
		overdue, err = s.repo.OverdueTodos(gctx, userID, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("stats.Dashboard: %w", err)
	}

	stats := &domain.DashboardStats{
		Range:          w.key,
		Current:        w.current,
		Previous:       w.previous,
		DealsCreated:   metric(float64(cur.DealsCreated), float64(prev.DealsCreated)),
		DealsWon:       metric(float64(cur.DealsWon), float64(prev.DealsWon)),
		WonAmount:      metric(float64(cur.WonAmount), float64(prev.WonAmount)),
		WinRate:        metric(winRate(cur), winRate(prev)),
		NewCustomers:   metric(float64(cur.NewCustomers), float64(prev.NewCustomers)),
		NewProspects:   metric(float64(cur.NewProspects), float64(prev.NewProspects)),
		TodosCompleted: metric(float64(cur.TodosCompleted), float64(prev.TodosCompleted)),
		PipelineAmount: pipeline,
		OverdueTodos:   overdue,
		GeneratedAt:    now,
	}

	s.store(ctx, userID, w.key, stats)
	return stats, nil
}

// collect schedules the per-period queries on g, writing into out.
// Each goroutine writes a distinct field.
func (s *Service) collect(ctx context.Context, g *errgroup.Group, userID uuid.UUID, p domain.Period, out *domain.PeriodCounts) {
	g.Go(func() error {
		dc, err := s.repo.DealCounts(ctx, userID, p)
		if err != nil {
			return err
		}
		out.DealsCreated, out.DealsWon, out.DealsLost, out.WonAmount = dc.Created, dc.Won, dc.Lost, dc.WonAmount
		return nil
	})
	g.Go(func() error {
		var err error
		out.NewCustomers, err = s.repo.CountCreated(ctx, "customers", userID, p)
		return err
	})
	g.Go(func() error {
		var err error
		out.NewProspects, err = s.repo.CountCreated(ctx, "prospects", userID, p)
		return err
	})
	g.Go(func() error {
		var err error
		out.TodosCompleted, err = s.repo.TodosCompleted(ctx, userID, p)
		return err
	})
}

func (s *Service) cached(ctx context.Context, userID uuid.UUID, key string) *domain.DashboardStats {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return nil
	}
	stats, err := s.cache.Get(ctx, userID, key)
	if err != nil {
		s.log.WarnContext(ctx, "stats.cache_get_failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
		return nil
	}
	return stats
}

func (s *Service) store(ctx context.Context, userID uuid.UUID, key string, stats *domain.DashboardStats) {
	if s.cache == nil || s.cfg.CacheTTL <= 0 {
		return
	}
	if err := s.cache.Set(ctx, userID, key, stats, s.cfg.CacheTTL); err != nil {
		s.log.WarnContext(ctx, "stats.cache_set_failed",
			slog.String("user_id", userID.String()),
			slog.String("error", err.Error()))
	}
}

// metric compares current with previous. The change is a percentage rounded
// to one decimal and nil when previous is zero.
func metric(current, previous float64) domain.Metric {
	m := domain.Metric{Current: current, Previous: previous}
	if previous != 0 {
		pct := math.Round((current-previous)/previous*1000) / 10
		m.ChangePct = &pct
	}
	return m
}

// winRate is the share of closed deals that were won, as a percentage.
func winRate(c domain.PeriodCounts) float64 {
	closed := c.DealsWon + c.DealsLost
	if closed == 0 {
		return 0
	}
	return math.Round(float64(c.DealsWon)/float64(closed)*1000) / 10
}
