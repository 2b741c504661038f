package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	"github.com/graceware/prayerdeck/internal/repository"
	"github.com/graceware/prayerdeck/pkg/entity"
)

var categoryColumns = []string{"id", "name", "color", "icon", "is_default", "user_id", "created_at"}

func TestListCategoriesForUser(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCategoriesRepoWithConn(mock)
	ctx := context.Background()
	uid := "user-42"
	query := regexp.QuoteMeta(`SELECT id, name, color, icon, is_default, user_id, created_at FROM categories
		WHERE user_id = $1 OR is_default = true
		ORDER BY is_default DESC, name;`)
	t.Run("defaults plus own categories", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(categoryColumns).
				AddRow(uuid.New(), "Family", "#10B981", "fas fa-home", true, (*string)(nil), time.Now()).
				AddRow(uuid.New(), "Missionaries", "#123456", "fas fa-plane", false, &uid, time.Now()),
			)
		categories, err := repo.ListForUser(ctx, uid)
		assert.NoError(t, err)
		if assert.Len(t, categories, 2) {
			assert.True(t, categories[0].IsDefault)
			assert.Nil(t, categories[0].UserID)
			assert.False(t, categories[1].IsDefault)
		}
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(uid).
			WillReturnError(errors.New("db error"))
		_, err := repo.ListForUser(ctx, uid)
		assert.Error(t, err)
	})
}

func TestDefaultCategories(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCategoriesRepoWithConn(mock)
	ctx := context.Background()
	query := regexp.QuoteMeta(`SELECT id, name, color, icon, is_default, user_id, created_at FROM categories WHERE is_default = true;`)
	t.Run("empty before seeding", func(t *testing.T) {
		mock.ExpectQuery(query).
			WillReturnRows(pgxmock.NewRows(categoryColumns))
		categories, err := repo.Defaults(ctx)
		assert.NoError(t, err)
		assert.Empty(t, categories)
	})
}

func TestCreateCategory(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCategoriesRepoWithConn(mock)
	ctx := context.Background()
	uid := "user-42"
	category := entity.Category{
		Name:   "Missionaries",
		Color:  "#123456",
		Icon:   "fas fa-plane",
		UserID: &uid,
	}
	query := regexp.QuoteMeta(`INSERT INTO categories (name, color, icon, is_default, user_id) VALUES ($1, $2, $3, $4, $5) RETURNING id;`)
	cid := uuid.New()
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(category.Name, category.Color, category.Icon, category.IsDefault, category.UserID).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(cid))
		id, err := repo.Create(ctx, &category)
		assert.NoError(t, err)
		assert.Equal(t, cid, id)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(category.Name, category.Color, category.Icon, category.IsDefault, category.UserID).
			WillReturnError(errors.New("db error"))
		_, err := repo.Create(ctx, &category)
		assert.Error(t, err)
	})
}

func TestReminderSettingsRoundTrip(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewRemindersRepoWithConn(mock)
	ctx := context.Background()
	uid := "user-42"
	columns := []string{"enable_reminders", "reminder_times", "timezone", "enable_browser_notifications", "created_at", "updated_at"}
	getQuery := regexp.QuoteMeta(`SELECT enable_reminders, reminder_times, timezone, enable_browser_notifications, created_at, updated_at
		FROM user_reminder_settings WHERE user_id = $1;`)
	t.Run("missing row reads as nil without error", func(t *testing.T) {
		mock.ExpectQuery(getQuery).
			WithArgs(uid).
			WillReturnError(pgx.ErrNoRows)
		settings, err := repo.Get(ctx, uid)
		assert.NoError(t, err)
		assert.Nil(t, settings)
	})
	t.Run("stored row", func(t *testing.T) {
		mock.ExpectQuery(getQuery).
			WithArgs(uid).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(true, []string{"07:30"}, "Europe/Berlin", false, time.Now(), time.Now()),
			)
		settings, err := repo.Get(ctx, uid)
		assert.NoError(t, err)
		assert.True(t, settings.EnableReminders)
		assert.Equal(t, []string{"07:30"}, settings.ReminderTimes)
		assert.Equal(t, uid, settings.UserID)
	})
	t.Run("upsert returns the stored row", func(t *testing.T) {
		upsertQuery := regexp.QuoteMeta(`INSERT INTO user_reminder_settings (user_id, enable_reminders, reminder_times, timezone, enable_browser_notifications)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET enable_reminders = EXCLUDED.enable_reminders,
			reminder_times = EXCLUDED.reminder_times,
			timezone = EXCLUDED.timezone,
			enable_browser_notifications = EXCLUDED.enable_browser_notifications,
			updated_at = NOW()
		RETURNING enable_reminders, reminder_times, timezone, enable_browser_notifications, created_at, updated_at;`)
		settings := entity.ReminderSettings{
			UserID:          uid,
			EnableReminders: true,
			ReminderTimes:   []string{"07:30", "21:00"},
			Timezone:        "Europe/Berlin",
		}
		mock.ExpectQuery(upsertQuery).
			WithArgs(uid, settings.EnableReminders, settings.ReminderTimes, settings.Timezone, settings.EnableBrowserNotifications).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(settings.EnableReminders, settings.ReminderTimes, settings.Timezone, settings.EnableBrowserNotifications, time.Now(), time.Now()),
			)
		stored, err := repo.Upsert(ctx, &settings)
		assert.NoError(t, err)
		assert.Equal(t, settings.ReminderTimes, stored.ReminderTimes)
		assert.Equal(t, uid, stored.UserID)
	})
}
