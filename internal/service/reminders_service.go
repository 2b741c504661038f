package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/graceware/prayerdeck/internal/repository"
	"github.com/graceware/prayerdeck/pkg/entity"
)

type RemindersService struct {
	repo repository.RemindersRepositoryI
}

func NewRemindersService(remindersRepo repository.RemindersRepositoryI) *RemindersService {
	if remindersRepo == nil {
		log.Fatal("provided nil remindersRepo")
	}
	InitValidator()
	return &RemindersService{
		repo: remindersRepo,
	}
}

// Get returns stored settings, or a default row (reminders off, no
// times, server timezone) when the user has never saved any. The
// default is not persisted; the row appears on first update.
func (rs *RemindersService) Get(ctx context.Context, uid string) (*entity.ReminderSettings, error) {
	settings, err := rs.repo.Get(ctx, uid)
	if err != nil {
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	if settings == nil {
		return &entity.ReminderSettings{
			UserID:                     uid,
			EnableReminders:            false,
			ReminderTimes:              []string{},
			Timezone:                   defaultTimezone(),
			EnableBrowserNotifications: false,
		}, nil
	}
	return settings, nil
}

func (rs *RemindersService) Update(ctx context.Context, uid string, req *UpdateRemindersRequest) (*entity.ReminderSettings, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	times := req.ReminderTimes
	if times == nil {
		times = []string{}
	}
	tz := req.Timezone
	if tz == "" {
		tz = defaultTimezone()
	}
	settings, err := rs.repo.Upsert(ctx, &entity.ReminderSettings{
		UserID:                     uid,
		EnableReminders:            req.EnableReminders,
		ReminderTimes:              times,
		Timezone:                   tz,
		EnableBrowserNotifications: req.EnableBrowserNotifications,
	})
	if err != nil {
		return nil, errors.New("reminders repository error: " + err.Error())
	}
	return settings, nil
}

func defaultTimezone() string {
	name := time.Now().Location().String()
	if name == "" || name == "Local" {
		return "America/New_York"
	}
	return name
}
