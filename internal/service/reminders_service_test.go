package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/graceware/prayerdeck/internal/service"
	"github.com/graceware/prayerdeck/pkg/entity"
)

type remindersRepoMock struct {
	state  mockState
	stored *entity.ReminderSettings
}

func (m *remindersRepoMock) Get(ctx context.Context, uid string) (*entity.ReminderSettings, error) {
	if m.state == stateDBError {
		return nil, errors.New("mocked db error")
	}
	return m.stored, nil
}

func (m *remindersRepoMock) Upsert(ctx context.Context, settings *entity.ReminderSettings) (*entity.ReminderSettings, error) {
	if m.state == stateDBError {
		return nil, errors.New("mocked db error")
	}
	m.stored = settings
	return settings, nil
}

func TestGetReminders(t *testing.T) {
	ctx := context.Background()
	t.Run("defaults for a fresh user", func(t *testing.T) {
		repo := &remindersRepoMock{}
		serv := service.NewRemindersService(repo)
		settings, err := serv.Get(ctx, testUID)
		require.NoError(t, err)
		assert.Equal(t, testUID, settings.UserID)
		assert.False(t, settings.EnableReminders)
		assert.NotNil(t, settings.ReminderTimes)
		assert.Empty(t, settings.ReminderTimes)
		assert.NotEmpty(t, settings.Timezone)
		// The default row only appears after an explicit update
		assert.Nil(t, repo.stored)
	})
	t.Run("stored settings win", func(t *testing.T) {
		repo := &remindersRepoMock{stored: &entity.ReminderSettings{
			UserID:          testUID,
			EnableReminders: true,
			ReminderTimes:   []string{"07:30"},
			Timezone:        "Europe/Berlin",
		}}
		serv := service.NewRemindersService(repo)
		settings, err := serv.Get(ctx, testUID)
		require.NoError(t, err)
		assert.True(t, settings.EnableReminders)
		assert.Equal(t, []string{"07:30"}, settings.ReminderTimes)
		assert.Equal(t, "Europe/Berlin", settings.Timezone)
	})
	t.Run("db error", func(t *testing.T) {
		serv := service.NewRemindersService(&remindersRepoMock{state: stateDBError})
		_, err := serv.Get(ctx, testUID)
		assert.Error(t, err)
	})
}

func TestUpdateReminders(t *testing.T) {
	ctx := context.Background()
	t.Run("updated", func(t *testing.T) {
		repo := &remindersRepoMock{}
		serv := service.NewRemindersService(repo)
		settings, err := serv.Update(ctx, testUID, &service.UpdateRemindersRequest{
			EnableReminders: true,
			ReminderTimes:   []string{"07:30", "21:00"},
			Timezone:        "Europe/Berlin",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{"07:30", "21:00"}, settings.ReminderTimes)
		assert.NotNil(t, repo.stored)
	})
	t.Run("nil times become an empty list", func(t *testing.T) {
		serv := service.NewRemindersService(&remindersRepoMock{})
		settings, err := serv.Update(ctx, testUID, &service.UpdateRemindersRequest{})
		require.NoError(t, err)
		assert.NotNil(t, settings.ReminderTimes)
		assert.Empty(t, settings.ReminderTimes)
		assert.NotEmpty(t, settings.Timezone)
	})
	t.Run("invalid time of day", func(t *testing.T) {
		serv := service.NewRemindersService(&remindersRepoMock{})
		_, err := serv.Update(ctx, testUID, &service.UpdateRemindersRequest{
			ReminderTimes: []string{"25:99"},
		})
		assert.Error(t, err)
	})
	t.Run("invalid timezone", func(t *testing.T) {
		serv := service.NewRemindersService(&remindersRepoMock{})
		_, err := serv.Update(ctx, testUID, &service.UpdateRemindersRequest{
			Timezone: "Mars/Olympus_Mons",
		})
		assert.Error(t, err)
	})
}
