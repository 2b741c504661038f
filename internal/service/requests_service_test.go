package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/internal/service"
	"github.com/graceware/prayerdeck/pkg/entity"
)

type requestsRepoMock struct {
	state   mockState
	created []entity.PrayerRequest
}

func (m *requestsRepoMock) Create(ctx context.Context, request *entity.PrayerRequest) (uuid.UUID, error) {
	if m.state == stateDBError {
		return uuid.UUID{}, errors.New("mocked db error")
	}
	created := *request
	created.ID = uuid.New()
	m.created = append(m.created, created)
	return created.ID, nil
}

func (m *requestsRepoMock) ListByCard(ctx context.Context, cardID uuid.UUID, uid string) ([]entity.PrayerRequest, error) {
	if m.state == stateCardNotFound {
		return nil, errorvalues.ErrCardNotFound
	}
	if m.state == stateDBError {
		return nil, errors.New("mocked db error")
	}
	return m.created, nil
}

func (m *requestsRepoMock) Update(ctx context.Context, id uuid.UUID, uid string, text string) (*entity.PrayerRequest, error) {
	if m.state == stateDBError {
		return nil, errorvalues.ErrRequestNotFound
	}
	return &entity.PrayerRequest{ID: id, Text: text}, nil
}

func (m *requestsRepoMock) Archive(ctx context.Context, id uuid.UUID, uid string) error {
	if m.state == stateDBError {
		return errorvalues.ErrRequestNotFound
	}
	return nil
}

func (m *requestsRepoMock) Delete(ctx context.Context, id uuid.UUID, uid string) error {
	if m.state == stateDBError {
		return errorvalues.ErrRequestNotFound
	}
	return nil
}

func TestCreatePrayerRequest(t *testing.T) {
	ctx := context.Background()
	t.Run("created under an owned card", func(t *testing.T) {
		repo := &requestsRepoMock{}
		serv := service.NewRequestsService(&cardsRepoMock{state: stateSuccess}, repo)
		request, err := serv.Create(ctx, testCardID, testUID, &service.CreatePrayerRequestRequest{Text: "please"})
		assert.NoError(t, err)
		assert.Equal(t, testCardID, request.PrayerCardID)
		assert.NotEqual(t, uuid.UUID{}, request.ID)
	})
	t.Run("unknown card", func(t *testing.T) {
		serv := service.NewRequestsService(&cardsRepoMock{state: stateCardNotFound}, &requestsRepoMock{})
		_, err := serv.Create(ctx, testCardID, testUID, &service.CreatePrayerRequestRequest{Text: "please"})
		assert.ErrorIs(t, err, errorvalues.ErrCardNotFound)
	})
	t.Run("empty text", func(t *testing.T) {
		serv := service.NewRequestsService(&cardsRepoMock{state: stateSuccess}, &requestsRepoMock{})
		_, err := serv.Create(ctx, testCardID, testUID, &service.CreatePrayerRequestRequest{})
		assert.Error(t, err)
	})
}

func TestUpdatePrayerRequest(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	t.Run("updated", func(t *testing.T) {
		serv := service.NewRequestsService(&cardsRepoMock{state: stateSuccess}, &requestsRepoMock{})
		request, err := serv.Update(ctx, id, testUID, &service.CreatePrayerRequestRequest{Text: "still praying"})
		assert.NoError(t, err)
		assert.Equal(t, "still praying", request.Text)
	})
	t.Run("not found", func(t *testing.T) {
		serv := service.NewRequestsService(&cardsRepoMock{state: stateSuccess}, &requestsRepoMock{state: stateDBError})
		_, err := serv.Update(ctx, id, testUID, &service.CreatePrayerRequestRequest{Text: "still praying"})
		assert.ErrorIs(t, err, errorvalues.ErrRequestNotFound)
	})
}
