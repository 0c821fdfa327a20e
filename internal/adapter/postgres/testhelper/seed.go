package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yonasBSD/klickbee-crm-sub001/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a user with default notification settings.
// Returns a filled domain.User.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	user := domain.User{
		ID:           uuid.New(),
		Email:        "testuser-" + suffix + "@example.com",
		Name:         "Test User " + suffix,
		PasswordHash: "$2a$04$not-a-real-hash",
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		user.ID, user.Email, user.Name, user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert user: %v", err)
	}

	settings := domain.DefaultNotificationSettings(user.ID)
	_, err = pool.Exec(ctx,
		`INSERT INTO notification_settings (user_id, email_enabled, deal_updates, todo_reminder, weekly_digest, quiet_hours, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		settings.UserID, settings.EmailEnabled, settings.DealUpdates, settings.TodoReminder,
		settings.WeeklyDigest, settings.QuietHours, now,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedUser insert notification_settings: %v", err)
	}

	return user
}

// SeedCompany creates an ACTIVE company owned by ownerID.
func SeedCompany(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Company {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	c := domain.Company{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      "Company " + uniqueSuffix(),
		Status:    domain.CompanyStatusActive,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO companies (id, owner_id, name, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		c.ID, c.OwnerID, c.Name, string(c.Status), c.CreatedAt, c.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedCompany: %v", err)
	}
	return c
}

// SeedDeal creates a deal in the given stage owned by ownerID.
func SeedDeal(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID, stage domain.DealStage, amount int64) domain.Deal {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	d := domain.Deal{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Name:      "Deal " + uniqueSuffix(),
		Stage:     stage,
		Amount:    amount,
		Currency:  domain.DefaultCurrency,
		Priority:  domain.PriorityMedium,
		Tags:      []string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO deals (id, owner_id, name, stage, amount, currency, priority, tags, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		d.ID, d.OwnerID, d.Name, string(d.Stage), d.Amount, d.Currency, string(d.Priority), d.Tags, d.CreatedAt, d.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedDeal: %v", err)
	}
	return d
}
