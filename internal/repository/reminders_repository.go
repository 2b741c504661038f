package repository

import (
	"context"
	"errors"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/graceware/prayerdeck/pkg/cleanup"
	"github.com/graceware/prayerdeck/pkg/entity"
)

type RemindersRepository struct {
	conn PgConnection
}

func NewRemindersRepo(cfg DBConfig) *RemindersRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for remindersRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for remindersRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &RemindersRepository{
		conn: pool,
	}
}

func NewRemindersRepoWithConn(conn PgConnection) *RemindersRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for remindersRepo: " + err.Error())
	}
	return &RemindersRepository{
		conn: conn,
	}
}

func (rr *RemindersRepository) Get(ctx context.Context, uid string) (*entity.ReminderSettings, error) {
	settings := entity.ReminderSettings{UserID: uid}
	row := rr.conn.QueryRow(
		ctx,
		`SELECT enable_reminders, reminder_times, timezone, enable_browser_notifications, created_at, updated_at
		FROM user_reminder_settings WHERE user_id = $1;`,
		uid,
	)
	err := row.Scan(
		&settings.EnableReminders,
		&settings.ReminderTimes,
		&settings.Timezone,
		&settings.EnableBrowserNotifications,
		&settings.CreatedAt,
		&settings.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting reminder settings error: " + err.Error())
	}
	return &settings, nil
}

func (rr *RemindersRepository) Upsert(ctx context.Context, settings *entity.ReminderSettings) (*entity.ReminderSettings, error) {
	updated := entity.ReminderSettings{UserID: settings.UserID}
	row := rr.conn.QueryRow(
		ctx,
		`INSERT INTO user_reminder_settings (user_id, enable_reminders, reminder_times, timezone, enable_browser_notifications)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE
		SET enable_reminders = EXCLUDED.enable_reminders,
			reminder_times = EXCLUDED.reminder_times,
			timezone = EXCLUDED.timezone,
			enable_browser_notifications = EXCLUDED.enable_browser_notifications,
			updated_at = NOW()
		RETURNING enable_reminders, reminder_times, timezone, enable_browser_notifications, created_at, updated_at;`,
		settings.UserID,
		settings.EnableReminders,
		settings.ReminderTimes,
		settings.Timezone,
		settings.EnableBrowserNotifications,
	)
	err := row.Scan(
		&updated.EnableReminders,
		&updated.ReminderTimes,
		&updated.Timezone,
		&updated.EnableBrowserNotifications,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		return nil, errors.New("upserting reminder settings error: " + err.Error())
	}
	return &updated, nil
}
