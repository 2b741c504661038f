package service

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"

	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/internal/repository"
	"github.com/graceware/prayerdeck/pkg/entity"
)

type RequestsService struct {
	cardsRepo    repository.CardsRepositoryI
	requestsRepo repository.RequestsRepositoryI
}

func NewRequestsService(cardsRepo repository.CardsRepositoryI, requestsRepo repository.RequestsRepositoryI) *RequestsService {
	if cardsRepo == nil || requestsRepo == nil {
		log.Fatal("on requests service provided nil repos")
	}
	InitValidator()
	return &RequestsService{
		cardsRepo:    cardsRepo,
		requestsRepo: requestsRepo,
	}
}

func (rs *RequestsService) Create(ctx context.Context, cardID uuid.UUID, uid string, req *CreatePrayerRequestRequest) (*entity.PrayerRequest, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	if _, err := rs.cardsRepo.GetByID(ctx, cardID, uid); err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			return nil, err
		}
		return nil, errors.New("cards repository error: " + err.Error())
	}
	request := entity.PrayerRequest{
		PrayerCardID: cardID,
		Text:         req.Text,
	}
	id, err := rs.requestsRepo.Create(ctx, &request)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			return nil, err
		}
		return nil, errors.New("requests repository error: " + err.Error())
	}
	request.ID = id
	return &request, nil
}

func (rs *RequestsService) ListByCard(ctx context.Context, cardID uuid.UUID, uid string) ([]entity.PrayerRequest, error) {
	requests, err := rs.requestsRepo.ListByCard(ctx, cardID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			return nil, err
		}
		return nil, errors.New("requests repository error: " + err.Error())
	}
	return requests, nil
}

func (rs *RequestsService) Update(ctx context.Context, id uuid.UUID, uid string, req *CreatePrayerRequestRequest) (*entity.PrayerRequest, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	request, err := rs.requestsRepo.Update(ctx, id, uid, req.Text)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestNotFound) {
			return nil, err
		}
		return nil, errors.New("requests repository error: " + err.Error())
	}
	return request, nil
}

func (rs *RequestsService) Archive(ctx context.Context, id uuid.UUID, uid string) error {
	err := rs.requestsRepo.Archive(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestNotFound) {
			return err
		}
		return errors.New("requests repository error: " + err.Error())
	}
	return nil
}

func (rs *RequestsService) Delete(ctx context.Context, id uuid.UUID, uid string) error {
	err := rs.requestsRepo.Delete(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrRequestNotFound) {
			return err
		}
		return errors.New("requests repository error: " + err.Error())
	}
	return nil
}
