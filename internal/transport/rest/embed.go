package rest

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/transport/dataloader"
)

// companySummary is the slice of a company embedded in list responses.
type companySummary struct {
	ID     uuid.UUID            `json:"id"`
	Name   string               `json:"name"`
	Status domain.CompanyStatus `json:"status"`
}

// contactSummary is the slice of a customer embedded in deal responses.
type contactSummary struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"fullName"`
	Email    *string   `json:"email,omitempty"`
}

// collectIDs returns the distinct non-nil IDs in order of first appearance.
func collectIDs(ids ...*uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if id == nil {
			continue
		}
		if _, ok := seen[*id]; ok {
			continue
		}
		seen[*id] = struct{}{}
		out = append(out, *id)
	}
	return out
}

// loadCompanies resolves company summaries through the request's loaders.
// Without loaders, or on failure, the result is empty and embedding is skipped.
func loadCompanies(ctx context.Context, log *slog.Logger, ids []uuid.UUID) map[uuid.UUID]*companySummary {
	loaders := dataloader.FromContext(ctx)
	if loaders == nil || len(ids) == 0 {
		return nil
	}

	companies, errs := loaders.CompanyByID.LoadMany(ctx, ids)()
	out := make(map[uuid.UUID]*companySummary, len(ids))
	for i, c := range companies {
		if i < len(errs) && errs[i] != nil {
			log.WarnContext(ctx, "load company summary", slog.String("company_id", ids[i].String()), slog.String("error", errs[i].Error()))
			continue
		}
		if c != nil {
			out[c.ID] = &companySummary{ID: c.ID, Name: c.Name, Status: c.Status}
		}
	}
	return out
}

// loadContacts resolves customer summaries through the request's loaders.
func loadContacts(ctx context.Context, log *slog.Logger, ids []uuid.UUID) map[uuid.UUID]*contactSummary {
	loaders := dataloader.FromContext(ctx)
	if loaders == nil || len(ids) == 0 {
		return nil
	}

	customers, errs := loaders.CustomerByID.LoadMany(ctx, ids)()
	out := make(map[uuid.UUID]*contactSummary, len(ids))
	for i, c := range customers {
		if i < len(errs) && errs[i] != nil {
			log.WarnContext(ctx, "load contact summary", slog.String("customer_id", ids[i].String()), slog.String("error", errs[i].Error()))
			continue
		}
		if c != nil {
			out[c.ID] = &contactSummary{ID: c.ID, FullName: c.FullName, Email: c.Email}
		}
	}
	return out
}

func lookup[T any](m map[uuid.UUID]*T, id *uuid.UUID) *T {
	if id == nil || m == nil {
		return nil
	}
	return m[*id]
}
