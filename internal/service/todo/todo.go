package todo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/activity"
	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
	"github.com/yonasBSD/klickbee-crm-sub001/pkg/ctxutil"
)

// Create adds a todo owned by the authenticated user. Assigning it to
// someone else notifies the assignee.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Todo, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := s.checkLinks(ctx, userID, input); err != nil {
		return nil, err
	}

	td := &domain.Todo{
		ID:          uuid.New(),
		OwnerID:     userID,
		Title:       input.Title,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		DueDate:     input.DueDate,
		DealID:      input.DealID,
		CustomerID:  input.CustomerID,
		ProspectID:  input.ProspectID,
		AssignedTo:  input.AssignedTo,
	}

	created, err := activity.Run(ctx, s.exec, activity.Mutation[*domain.Todo]{
		EntityType: domain.EntityTypeTodo,
		EntityID:   td.ID.String(),
		Action:     domain.AuditActionCreate,
		UserID:     userID,
		Operation: func(ctx context.Context) (*domain.Todo, error) {
			return s.todos.Create(ctx, td)
		},
		Current:  activity.ResultSnapshot[*domain.Todo],
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("todo.Create: %w", err)
	}

	s.log.InfoContext(ctx, "todo created",
		slog.String("user_id", userID.String()),
		slog.String("todo_id", created.ID.String()))

	s.notifyAssignee(ctx, userID, nil, created)
	return created, nil
}

// Get returns a todo owned by the authenticated user.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Todo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	td, err := s.todos.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("todo.Get: %w", err)
	}
	return td, nil
}

// List returns the authenticated user's todos.
func (s *Service) List(ctx context.Context, filter domain.TodoFilter) ([]domain.Todo, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	todos, err := s.todos.List(ctx, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("todo.List: %w", err)
	}
	return todos, nil
}

// Update applies a partial update to a todo.
func (s *Service) Update(ctx context.Context, id uuid.UUID, input UpdateInput) (*domain.Todo, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if input.AssignedTo != nil {
		if err := s.checkAssignee(ctx, *input.AssignedTo); err != nil {
			return nil, err
		}
	}

	var before *domain.Todo
	updated, err := activity.Run(ctx, s.exec, activity.Mutation[*domain.Todo]{
		EntityType: domain.EntityTypeTodo,
		EntityID:   id.String(),
		Action:     domain.AuditActionUpdate,
		UserID:     userID,
		Previous: activity.LoadSnapshot(func(ctx context.Context) (*domain.Todo, error) {
			var err error
			before, err = s.todos.GetByID(ctx, userID, id)
			return before, err
		}),
		Operation: func(ctx context.Context) (*domain.Todo, error) {
			return s.todos.Update(ctx, userID, id, input.params())
		},
		Current:  activity.ResultSnapshot[*domain.Todo],
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return nil, fmt.Errorf("todo.Update: %w", err)
	}

	s.log.InfoContext(ctx, "todo updated",
		slog.String("user_id", userID.String()),
		slog.String("todo_id", id.String()))

	s.notifyAssignee(ctx, userID, before, updated)
	return updated, nil
}

// BulkUpdateStatus sets one status on many todos and returns how many rows
// changed. Ids that are unknown or owned by someone else are skipped.
func (s *Service) BulkUpdateStatus(ctx context.Context, input BulkStatusInput) (int64, error) {
	input.normalize()
	if err := input.Validate(); err != nil {
		return 0, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	ids := make([]string, len(input.IDs))
	for i, id := range input.IDs {
		ids[i] = id.String()
	}

	var count int64
	_, err := activity.Run(ctx, s.exec, activity.Mutation[int64]{
		EntityType: domain.EntityTypeTodo,
		EntityID:   "bulk",
		Action:     domain.AuditActionUpdate,
		UserID:     userID,
		Operation: func(ctx context.Context) (int64, error) {
			var err error
			count, err = s.todos.BulkUpdateStatus(ctx, userID, input.IDs, input.Status)
			return count, err
		},
		Current: func(_ context.Context, n int64) (domain.Snapshot, error) {
			return domain.Snapshot{"status": input.Status.String(), "count": n}, nil
		},
		Metadata: activity.RequestMetadata(ctx, map[string]any{
			"operation": "bulk_status",
			"ids":       ids,
		}),
	})
	if err != nil {
		return 0, fmt.Errorf("todo.BulkUpdateStatus: %w", err)
	}

	s.log.InfoContext(ctx, "todos status updated",
		slog.String("user_id", userID.String()),
		slog.String("status", input.Status.String()),
		slog.Int64("count", count))

	return count, nil
}

// Delete removes a todo.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	_, err := activity.Run(ctx, s.exec, activity.Mutation[struct{}]{
		EntityType: domain.EntityTypeTodo,
		EntityID:   id.String(),
		Action:     domain.AuditActionDelete,
		UserID:     userID,
		Previous: activity.LoadSnapshot(func(ctx context.Context) (*domain.Todo, error) {
			return s.todos.GetByID(ctx, userID, id)
		}),
		Operation: func(ctx context.Context) (struct{}, error) {
			return struct{}{}, s.todos.Delete(ctx, userID, id)
		},
		Metadata: activity.RequestMetadata(ctx, nil),
	})
	if err != nil {
		return fmt.Errorf("todo.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "todo deleted",
		slog.String("user_id", userID.String()),
		slog.String("todo_id", id.String()))

	return nil
}

func (s *Service) checkLinks(ctx context.Context, userID uuid.UUID, input CreateInput) error {
	var errs domain.FieldErrors

	links := []struct {
		field  string
		entity domain.EntityType
		id     *uuid.UUID
	}{
		{"dealId", domain.EntityTypeDeal, input.DealID},
		{"customerId", domain.EntityTypeCustomer, input.CustomerID},
		{"prospectId", domain.EntityTypeProspect, input.ProspectID},
	}
	for _, l := range links {
		if l.id == nil {
			continue
		}
		found, err := s.links.Exists(ctx, userID, l.entity, *l.id)
		if err != nil {
			return fmt.Errorf("todo: check %s: %w", l.field, err)
		}
		if !found {
			errs.Add(l.field, "not found")
		}
	}
	if err := errs.Err(); err != nil {
		return err
	}

	if input.AssignedTo != nil {
		return s.checkAssignee(ctx, *input.AssignedTo)
	}
	return nil
}

func (s *Service) checkAssignee(ctx context.Context, assignee uuid.UUID) error {
	if _, err := s.users.GetByID(ctx, assignee); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.NewValidationError("assignedTo", "user not found")
		}
		return fmt.Errorf("todo: check assignee: %w", err)
	}
	return nil
}

// notifyAssignee tells a newly assigned user about the todo. Self-assignment
// and unchanged assignments are silent.
func (s *Service) notifyAssignee(ctx context.Context, actor uuid.UUID, before, after *domain.Todo) {
	if after.AssignedTo == nil || *after.AssignedTo == actor {
		return
	}
	if before != nil && before.AssignedTo != nil && *before.AssignedTo == *after.AssignedTo {
		return
	}

	data := map[string]string{
		"todo_id":     after.ID.String(),
		"assigned_by": actor.String(),
	}
	if after.DueDate != nil {
		data["due_date"] = after.DueDate.UTC().Format("2006-01-02")
	}

	s.notifier.Notify(ctx, domain.Notification{
		Kind:        domain.NotificationTodoAssigned,
		RecipientID: *after.AssignedTo,
		Subject:     fmt.Sprintf("New task: %s", after.Title),
		Data:        data,
	})
}
