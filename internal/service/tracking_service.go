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

type TrackingService struct {
	cardsRepo    repository.CardsRepositoryI
	trackingRepo repository.TrackingRepositoryI
}

func NewTrackingService(cardsRepo repository.CardsRepositoryI, trackingRepo repository.TrackingRepositoryI) *TrackingService {
	if cardsRepo == nil || trackingRepo == nil {
		log.Fatal("on tracking service provided nil repos")
	}
	return &TrackingService{
		cardsRepo:    cardsRepo,
		trackingRepo: trackingRepo,
	}
}

// MarkPrayed records a completion for today's local day. Marking is
// always day-scoped regardless of the card's frequency, so a weekly
// card can collect several logs within its week; undo works against
// the frequency period instead.
func (ts *TrackingService) MarkPrayed(ctx context.Context, uid string, cardID uuid.UUID, now time.Time) (*MarkResult, error) {
	if _, err := ts.cardsRepo.GetByID(ctx, cardID, uid); err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			return nil, err
		}
		return nil, errors.New("cards repository error: " + err.Error())
	}
	dayStart, _ := DayWindow(now)
	stats, alreadyPrayed, err := ts.trackingRepo.MarkCompleted(ctx, uid, cardID, now, dayStart)
	if err != nil {
		return nil, errors.New("tracking repository error: " + err.Error())
	}
	return &MarkResult{
		Success:       !alreadyPrayed,
		AlreadyPrayed: alreadyPrayed,
		LevelUp:       !alreadyPrayed && IsLevelUp(stats.TotalPrayers),
		Stats:         stats,
	}, nil
}

// UndoPrayer removes the most recent completion within the card's
// current frequency period: the local day for daily cards, the
// Sunday-anchored week for weekly, the calendar month for monthly.
func (ts *TrackingService) UndoPrayer(ctx context.Context, uid string, cardID uuid.UUID, now time.Time) (*entity.PrayerStats, error) {
	card, err := ts.cardsRepo.GetByID(ctx, cardID, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			return nil, err
		}
		return nil, errors.New("cards repository error: " + err.Error())
	}
	from, to := PeriodWindow(card.Frequency, now)
	stats, err := ts.trackingRepo.UndoMostRecent(ctx, uid, cardID, from, to)
	if err != nil {
		if errors.Is(err, errorvalues.ErrLogNotFound) {
			return nil, err
		}
		return nil, errors.New("tracking repository error: " + err.Error())
	}
	return stats, nil
}

func (ts *TrackingService) HasPrayedToday(ctx context.Context, uid string, cardID uuid.UUID, now time.Time) (bool, error) {
	if _, err := ts.cardsRepo.GetByID(ctx, cardID, uid); err != nil {
		if errors.Is(err, errorvalues.ErrCardNotFound) {
			return false, err
		}
		return false, errors.New("cards repository error: " + err.Error())
	}
	from, to := DayWindow(now)
	prayed, err := ts.trackingRepo.HasPrayedBetween(ctx, uid, cardID, from, to)
	if err != nil {
		return false, errors.New("tracking repository error: " + err.Error())
	}
	return prayed, nil
}

// BatchStatus answers "prayed today?" for many cards at once. Ids the
// user doesn't own simply come back false; callers render badges, they
// don't need ownership failures per id.
func (ts *TrackingService) BatchStatus(ctx context.Context, uid string, cardIDs []uuid.UUID, now time.Time) (map[uuid.UUID]bool, error) {
	if len(cardIDs) == 0 {
		return map[uuid.UUID]bool{}, nil
	}
	from, to := DayWindow(now)
	status, err := ts.trackingRepo.BatchPrayedBetween(ctx, uid, cardIDs, from, to)
	if err != nil {
		return nil, errors.New("tracking repository error: " + err.Error())
	}
	return status, nil
}

func (ts *TrackingService) GetStats(ctx context.Context, uid string) (*entity.PrayerStats, error) {
	stats, err := ts.trackingRepo.GetOrInitStats(ctx, uid)
	if err != nil {
		return nil, errors.New("tracking repository error: " + err.Error())
	}
	return stats, nil
}
