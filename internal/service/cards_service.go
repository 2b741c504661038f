package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"

	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/internal/repository"
	"github.com/graceware/prayerdeck/pkg/entity"
)

type CardsService struct {
	repo repository.CardsRepositoryI
}

func NewCardsService(cardsRepo repository.CardsRepositoryI) *CardsService {
	if cardsRepo == nil {
		log.Fatal("provided nil cardsRepo")
	}
	InitValidator()
	return &CardsService{
		repo: cardsRepo,
	}
}

func (cs *CardsService) Create(ctx context.Context, uid string, req *CreateCardRequest) (*entity.PrayerCardDetails, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	card := entity.PrayerCard{
		UserID:              uid,
		Name:                req.Name,
		Frequency:           entity.Frequency(req.Frequency),
		DayOfWeek:           req.DayOfWeek,
		DayOfMonth:          req.DayOfMonth,
		DaysOfMonth:         req.DaysOfMonth,
		CategoryID:          req.CategoryID,
		Scriptures:          req.Scriptures,
		ScriptureReferences: req.ScriptureReferences,
	}
	if err := normalizeSchedule(&card); err != nil {
		return nil, err
	}
	id, err := cs.repo.Create(ctx, &card)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCategoryNotFound) {
			return nil, err
		}
		return nil, errors.New("cards repository error: " + err.Error())
	}
	details, err := cs.repo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			return nil, err
		}
		return nil, errors.New("cards repository error: " + err.Error())
	}
	return details, nil
}

func (cs *CardsService) Get(ctx context.Context, id uuid.UUID, uid string) (*entity.PrayerCardDetails, error) {
	details, err := cs.repo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			return nil, err
		}
		return nil, errors.New("cards repository error: " + err.Error())
	}
	return details, nil
}

func (cs *CardsService) List(ctx context.Context, uid string) ([]*entity.PrayerCardDetails, error) {
	cards, err := cs.repo.ListByUser(ctx, uid)
	if err != nil {
		return nil, errors.New("cards repository error: " + err.Error())
	}
	return cards, nil
}

func (cs *CardsService) ListFiltered(ctx context.Context, uid string, filter *ListCardsFilter) ([]*entity.PrayerCardDetails, error) {
	if err := validate.Struct(filter); err != nil {
		return nil, err
	}
	cards, err := cs.repo.ListByFilter(ctx, uid, repository.CardFilter{
		Frequency:  entity.Frequency(filter.Frequency),
		DayOfWeek:  filter.DayOfWeek,
		DayOfMonth: filter.DayOfMonth,
	})
	if err != nil {
		return nil, errors.New("cards repository error: " + err.Error())
	}
	return cards, nil
}

// ListDue assembles the day's queue. Daily cards come first, sampled
// down to the daily cap with the date-seeded shuffle, then weekly cards
// whose weekday is today, then monthly cards whose day of month is
// today. Order within the weekly and monthly groups follows the store
// ordering.
func (cs *CardsService) ListDue(ctx context.Context, uid string, now time.Time) ([]*entity.PrayerCardDetails, error) {
	daily, err := cs.repo.ListByFilter(ctx, uid, repository.CardFilter{
		Frequency: entity.FrequencyDaily,
	})
	if err != nil {
		return nil, errors.New("cards repository error: " + err.Error())
	}
	weekday := WeekdayName(now)
	weekly, err := cs.repo.ListByFilter(ctx, uid, repository.CardFilter{
		Frequency: entity.FrequencyWeekly,
		DayOfWeek: &weekday,
	})
	if err != nil {
		return nil, errors.New("cards repository error: " + err.Error())
	}
	day := now.Day()
	monthly, err := cs.repo.ListByFilter(ctx, uid, repository.CardFilter{
		Frequency:  entity.FrequencyMonthly,
		DayOfMonth: &day,
	})
	if err != nil {
		return nil, errors.New("cards repository error: " + err.Error())
	}

	due := make([]*entity.PrayerCardDetails, 0, dailySampleSize+len(weekly)+len(monthly))
	due = append(due, SampleDaily(daily, now)...)
	due = append(due, weekly...)
	due = append(due, monthly...)
	return due, nil
}

func (cs *CardsService) Update(ctx context.Context, id uuid.UUID, uid string, req *UpdateCardRequest) (*entity.PrayerCardDetails, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	card := entity.PrayerCard{
		ID:                  id,
		UserID:              uid,
		Name:                req.Name,
		Frequency:           entity.Frequency(req.Frequency),
		DayOfWeek:           req.DayOfWeek,
		DayOfMonth:          req.DayOfMonth,
		DaysOfMonth:         req.DaysOfMonth,
		CategoryID:          req.CategoryID,
		Scriptures:          req.Scriptures,
		ScriptureReferences: req.ScriptureReferences,
	}
	if err := normalizeSchedule(&card); err != nil {
		return nil, err
	}
	if err := cs.repo.Update(ctx, &card); err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			return nil, err
		}
		return nil, errors.New("cards repository error: " + err.Error())
	}
	details, err := cs.repo.GetByID(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			return nil, err
		}
		return nil, errors.New("cards repository error: " + err.Error())
	}
	return details, nil
}

func (cs *CardsService) Delete(ctx context.Context, id uuid.UUID, uid string) error {
	err := cs.repo.Delete(ctx, id, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			return err
		}
		return errors.New("cards repository error: " + err.Error())
	}
	return nil
}

// normalizeSchedule clears recurrence fields that don't belong to the
// card's frequency and rejects weekly/monthly cards missing theirs.
func normalizeSchedule(card *entity.PrayerCard) error {
	switch card.Frequency {
	case entity.FrequencyDaily:
		card.DayOfWeek = nil
		card.DayOfMonth = nil
		card.DaysOfMonth = nil
	case entity.FrequencyWeekly:
		if card.DayOfWeek == nil {
			return errorvalues.ErrInvalidSchedule
		}
		card.DayOfMonth = nil
		card.DaysOfMonth = nil
	case entity.FrequencyMonthly:
		if card.DayOfMonth == nil && len(card.DaysOfMonth) == 0 {
			return errorvalues.ErrInvalidSchedule
		}
		card.DayOfWeek = nil
	}
	return nil
}
