package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/graceware/prayerdeck/pkg/entity"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/service_mocks.go -package=mocks

type CreateCategoryRequest struct {
	Name  string `validate:"required,min=1,max=100"`
	Color string `validate:"required,hexcolor"`
	Icon  string `validate:"required,max=100"`
}

type CreateCardRequest struct {
	Name                string     `validate:"required,min=1,max=200"`
	Frequency           string     `validate:"required,oneof=daily weekly monthly"`
	DayOfWeek           *string    `validate:"omitempty,weekday"`
	DayOfMonth          *int       `validate:"omitempty,min=1,max=31"`
	DaysOfMonth         []int      `validate:"omitempty,dive,min=1,max=31"`
	CategoryID          *uuid.UUID `validate:"-"`
	Scriptures          []string   `validate:"omitempty,dive,max=2000"`
	ScriptureReferences []string   `validate:"omitempty,dive,max=200"`
}

type UpdateCardRequest struct {
	Name                string     `validate:"required,min=1,max=200"`
	Frequency           string     `validate:"required,oneof=daily weekly monthly"`
	DayOfWeek           *string    `validate:"omitempty,weekday"`
	DayOfMonth          *int       `validate:"omitempty,min=1,max=31"`
	DaysOfMonth         []int      `validate:"omitempty,dive,min=1,max=31"`
	CategoryID          *uuid.UUID `validate:"-"`
	Scriptures          []string   `validate:"omitempty,dive,max=2000"`
	ScriptureReferences []string   `validate:"omitempty,dive,max=200"`
}

type ListCardsFilter struct {
	Frequency  string  `validate:"required,oneof=daily weekly monthly"`
	DayOfWeek  *string `validate:"omitempty,weekday"`
	DayOfMonth *int    `validate:"omitempty,min=1,max=31"`
}

type CreatePrayerRequestRequest struct {
	Text string `validate:"required,min=1,max=2000"`
}

type UpdateRemindersRequest struct {
	EnableReminders            bool     `validate:"-"`
	ReminderTimes              []string `validate:"omitempty,dive,clock_time"`
	Timezone                   string   `validate:"omitempty,timezone"`
	EnableBrowserNotifications bool     `validate:"-"`
}

// MarkResult is the outcome of a mark-prayed call. AlreadyPrayed means
// the day's completion already existed and nothing was written; LevelUp
// is set only on the write that crossed a level boundary.
type MarkResult struct {
	Success       bool                `json:"success"`
	AlreadyPrayed bool                `json:"already_prayed"`
	LevelUp       bool                `json:"level_up"`
	Stats         *entity.PrayerStats `json:"stats"`
}

type CategoriesServiceI interface {
	List(ctx context.Context, uid string) ([]entity.Category, error)
	Create(ctx context.Context, uid string, req *CreateCategoryRequest) (*entity.Category, error)
	// Seeds the fixed default set once; safe to call on every startup
	EnsureDefaults(ctx context.Context) error
}

type CardsServiceI interface {
	Create(ctx context.Context, uid string, req *CreateCardRequest) (*entity.PrayerCardDetails, error)
	Get(ctx context.Context, id uuid.UUID, uid string) (*entity.PrayerCardDetails, error)
	List(ctx context.Context, uid string) ([]*entity.PrayerCardDetails, error)
	// Lists cards matching a recurrence filter; the day fields narrow
	// weekly and monthly listings
	ListFiltered(ctx context.Context, uid string, filter *ListCardsFilter) ([]*entity.PrayerCardDetails, error)
	// Resolves today's due set: the sampled daily cards followed by
	// weekly cards due on now's weekday and monthly cards due on now's
	// day of month
	ListDue(ctx context.Context, uid string, now time.Time) ([]*entity.PrayerCardDetails, error)
	Update(ctx context.Context, id uuid.UUID, uid string, req *UpdateCardRequest) (*entity.PrayerCardDetails, error)
	Delete(ctx context.Context, id uuid.UUID, uid string) error
}

type RequestsServiceI interface {
	Create(ctx context.Context, cardID uuid.UUID, uid string, req *CreatePrayerRequestRequest) (*entity.PrayerRequest, error)
	ListByCard(ctx context.Context, cardID uuid.UUID, uid string) ([]entity.PrayerRequest, error)
	Update(ctx context.Context, id uuid.UUID, uid string, req *CreatePrayerRequestRequest) (*entity.PrayerRequest, error)
	Archive(ctx context.Context, id uuid.UUID, uid string) error
	Delete(ctx context.Context, id uuid.UUID, uid string) error
}

type TrackingServiceI interface {
	// Records today's completion for the card; idempotent within the
	// local day
	MarkPrayed(ctx context.Context, uid string, cardID uuid.UUID, now time.Time) (*MarkResult, error)
	// Removes the most recent completion within the card's current
	// frequency period
	UndoPrayer(ctx context.Context, uid string, cardID uuid.UUID, now time.Time) (*entity.PrayerStats, error)
	HasPrayedToday(ctx context.Context, uid string, cardID uuid.UUID, now time.Time) (bool, error)
	// Resolves today's completion status for a set of cards in one
	// round trip; every requested id appears in the result
	BatchStatus(ctx context.Context, uid string, cardIDs []uuid.UUID, now time.Time) (map[uuid.UUID]bool, error)
	GetStats(ctx context.Context, uid string) (*entity.PrayerStats, error)
}

type RemindersServiceI interface {
	// Returns stored settings, or the zero-value defaults when the user
	// has never saved any
	Get(ctx context.Context, uid string) (*entity.ReminderSettings, error)
	Update(ctx context.Context, uid string, req *UpdateRemindersRequest) (*entity.ReminderSettings, error)
}

type TransferServiceI interface {
	// Moves the guest dataset to the authenticated user's account and
	// purges local data on success
	Transfer(ctx context.Context, uid string) (*TransferReport, error)
}

// TransferReport summarizes what a guest-to-account transfer moved.
type TransferReport struct {
	Categories int `json:"categories"`
	Cards      int `json:"cards"`
	Requests   int `json:"requests"`
}
