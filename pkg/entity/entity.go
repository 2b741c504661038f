package entity

import (
	"time"

	"github.com/google/uuid"
)

// GuestUserID owns every entity created while no authenticated session
// is present. There is a single anonymous local session per deployment.
const GuestUserID = "guest"

type Frequency string

const (
	FrequencyDaily   Frequency = "daily"
	FrequencyWeekly  Frequency = "weekly"
	FrequencyMonthly Frequency = "monthly"
)

type Category struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	IsDefault bool      `json:"is_default"`
	UserID    *string   `json:"uid,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// DefaultCategories returns the fixed category set every account
// starts with. IDs and timestamps are assigned by the store that
// seeds them.
func DefaultCategories() []Category {
	return []Category{
		{Name: "Family", Color: "#10B981", Icon: "fas fa-home", IsDefault: true},
		{Name: "Friends", Color: "#F59E0B", Icon: "fas fa-users", IsDefault: true},
		{Name: "Personal", Color: "#EF4444", Icon: "fas fa-heart", IsDefault: true},
		{Name: "Work", Color: "#8B5CF6", Icon: "fas fa-briefcase", IsDefault: true},
		{Name: "Non Believer", Color: "#EC4899", Icon: "fas fa-cross", IsDefault: true},
		{Name: "Small Group", Color: "#06B6D4", Icon: "fas fa-church", IsDefault: true},
		{Name: "World Issues", Color: "#DC2626", Icon: "fas fa-globe", IsDefault: true},
		{Name: "Leadership", Color: "#6B73FF", Icon: "fas fa-crown", IsDefault: true},
	}
}

type PrayerCard struct {
	ID                  uuid.UUID  `json:"id"`
	UserID              string     `json:"uid"`
	Name                string     `json:"name"`
	Frequency           Frequency  `json:"frequency"`
	DayOfWeek           *string    `json:"day_of_week,omitempty"`
	DayOfMonth          *int       `json:"day_of_month,omitempty"`
	DaysOfMonth         []int      `json:"days_of_month,omitempty"`
	CategoryID          *uuid.UUID `json:"category_id,omitempty"`
	Scriptures          []string   `json:"scriptures,omitempty"`
	ScriptureReferences []string   `json:"scripture_references,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// PrayerCardDetails is the list-rendering shape: the card joined with
// its category (nil when the category was deleted) and the count of
// non-archived requests, resolved without a per-card round trip.
type PrayerCardDetails struct {
	PrayerCard
	Category            *Category       `json:"category"`
	PrayerRequests      []PrayerRequest `json:"prayer_requests"`
	ActiveRequestsCount int             `json:"active_requests_count"`
}

type PrayerRequest struct {
	ID           uuid.UUID  `json:"id"`
	PrayerCardID uuid.UUID  `json:"prayer_card_id"`
	Text         string     `json:"text"`
	IsArchived   bool       `json:"is_archived"`
	ArchivedAt   *time.Time `json:"archived_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type PrayerLog struct {
	ID           uuid.UUID `json:"id"`
	UserID       string    `json:"uid"`
	PrayerCardID uuid.UUID `json:"prayer_card_id"`
	PrayedAt     time.Time `json:"prayed_at"`
}

type PrayerStats struct {
	UserID       string `json:"uid"`
	TotalPrayers int    `json:"total_prayers"`
	CurrentLevel int    `json:"current_level"`
}

type ReminderSettings struct {
	UserID                     string    `json:"uid"`
	EnableReminders            bool      `json:"enable_reminders"`
	ReminderTimes              []string  `json:"reminder_times"`
	Timezone                   string    `json:"timezone"`
	EnableBrowserNotifications bool      `json:"enable_browser_notifications"`
	CreatedAt                  time.Time `json:"created_at"`
	UpdatedAt                  time.Time `json:"updated_at"`
}

// GuestSnapshot is the exported guest dataset handed to the one-time
// transfer operation. Category ids inside cards refer to guest-local
// category ids and are remapped by name during transfer.
type GuestSnapshot struct {
	Categories []Category      `json:"categories"`
	Cards      []PrayerCard    `json:"prayer_cards"`
	Requests   []PrayerRequest `json:"prayer_requests"`
}
