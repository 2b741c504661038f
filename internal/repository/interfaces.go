package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/graceware/prayerdeck/pkg/entity"
)

// CardFilter narrows card listings by recurrence fields. Frequency is
// required; the day fields apply only to weekly/monthly filters.
type CardFilter struct {
	Frequency  entity.Frequency
	DayOfWeek  *string
	DayOfMonth *int
}

type CategoriesRepositoryI interface {
	// Lists the fixed defaults plus the user's own categories, defaults first
	ListForUser(ctx context.Context, uid string) ([]entity.Category, error)
	// Lists only the default categories (seed idempotency check)
	Defaults(ctx context.Context) ([]entity.Category, error)
	// Creates a category; a nil UserID marks a default
	Create(ctx context.Context, category *entity.Category) (uuid.UUID, error)
}

type CardsRepositoryI interface {
	// Creates a card. The write path retries a bounded number of times on
	// transient connection failures
	Create(ctx context.Context, card *entity.PrayerCard) (uuid.UUID, error)
	// Fetches one card with category and requests, scoped to uid
	GetByID(ctx context.Context, id uuid.UUID, uid string) (*entity.PrayerCardDetails, error)
	// Lists all of uid's cards joined with category and active-request count
	ListByUser(ctx context.Context, uid string) ([]*entity.PrayerCardDetails, error)
	// Lists uid's cards matching the recurrence filter
	ListByFilter(ctx context.Context, uid string, filter CardFilter) ([]*entity.PrayerCardDetails, error)
	// Updates a card's mutable fields and refreshes updated_at
	Update(ctx context.Context, card *entity.PrayerCard) error
	// Deletes a card; requests and logs cascade
	Delete(ctx context.Context, id uuid.UUID, uid string) error
}

type RequestsRepositoryI interface {
	// Creates a request under a card the service has already resolved for uid
	Create(ctx context.Context, request *entity.PrayerRequest) (uuid.UUID, error)
	// Lists a card's requests, newest first, scoped to uid via the card join
	ListByCard(ctx context.Context, cardID uuid.UUID, uid string) ([]entity.PrayerRequest, error)
	// Replaces a request's text
	Update(ctx context.Context, id uuid.UUID, uid string, text string) (*entity.PrayerRequest, error)
	// One-way soft archive; sets archived_at
	Archive(ctx context.Context, id uuid.UUID, uid string) error
	// Permanent delete
	Delete(ctx context.Context, id uuid.UUID, uid string) error
}

type TrackingRepositoryI interface {
	// Records a completion for the prayedOn day bucket and bumps stats in one
	// transaction. The bool reports alreadyPrayed: a duplicate within the
	// bucket inserts nothing and returns current stats untouched
	MarkCompleted(ctx context.Context, uid string, cardID uuid.UUID, prayedAt, prayedOn time.Time) (*entity.PrayerStats, bool, error)
	// Deletes the single most recent log within [from, to) and decrements
	// stats, floored at zero. ErrLogNotFound when the window holds no log
	UndoMostRecent(ctx context.Context, uid string, cardID uuid.UUID, from, to time.Time) (*entity.PrayerStats, error)
	// Reports whether any log for (uid, card) falls within [from, to)
	HasPrayedBetween(ctx context.Context, uid string, cardID uuid.UUID, from, to time.Time) (bool, error)
	// One-query status lookup for a set of cards; every requested id appears
	// in the result, ids without an in-window log map to false
	BatchPrayedBetween(ctx context.Context, uid string, cardIDs []uuid.UUID, from, to time.Time) (map[uuid.UUID]bool, error)
	// Returns the user's stats row, creating {0, 1} on first read
	GetOrInitStats(ctx context.Context, uid string) (*entity.PrayerStats, error)
}

type RemindersRepositoryI interface {
	// Returns nil without error when the user has no settings row yet
	Get(ctx context.Context, uid string) (*entity.ReminderSettings, error)
	// Creates or replaces the user's single settings row
	Upsert(ctx context.Context, settings *entity.ReminderSettings) (*entity.ReminderSettings, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
}

func (pgcfg *PGCfg) ConnString() string {
	return fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
}
