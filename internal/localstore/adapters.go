package localstore

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/graceware/prayerdeck/internal/repository"
	"github.com/graceware/prayerdeck/pkg/entity"
)

// The store exposes every collection through one mutex, but the
// repository contracts reuse method names across collections. These
// adapters give each contract its own receiver over the shared store.

type CategoriesRepo struct{ store *Store }

func NewCategoriesRepo(store *Store) *CategoriesRepo { return &CategoriesRepo{store: store} }

func (r *CategoriesRepo) ListForUser(ctx context.Context, uid string) ([]entity.Category, error) {
	return r.store.ListForUser(ctx, uid)
}

func (r *CategoriesRepo) Defaults(ctx context.Context) ([]entity.Category, error) {
	return r.store.Defaults(ctx)
}

func (r *CategoriesRepo) Create(ctx context.Context, category *entity.Category) (uuid.UUID, error) {
	return r.store.CreateCategory(ctx, category)
}

type CardsRepo struct{ store *Store }

func NewCardsRepo(store *Store) *CardsRepo { return &CardsRepo{store: store} }

func (r *CardsRepo) Create(ctx context.Context, card *entity.PrayerCard) (uuid.UUID, error) {
	return r.store.CreateCard(ctx, card)
}

func (r *CardsRepo) GetByID(ctx context.Context, id uuid.UUID, uid string) (*entity.PrayerCardDetails, error) {
	return r.store.GetCardByID(ctx, id, uid)
}

func (r *CardsRepo) ListByUser(ctx context.Context, uid string) ([]*entity.PrayerCardDetails, error) {
	return r.store.ListCardsByUser(ctx, uid)
}

func (r *CardsRepo) ListByFilter(ctx context.Context, uid string, filter repository.CardFilter) ([]*entity.PrayerCardDetails, error) {
	return r.store.ListCardsByFilter(ctx, uid, filter)
}

func (r *CardsRepo) Update(ctx context.Context, card *entity.PrayerCard) error {
	return r.store.UpdateCard(ctx, card)
}

func (r *CardsRepo) Delete(ctx context.Context, id uuid.UUID, uid string) error {
	return r.store.DeleteCard(ctx, id, uid)
}

type RequestsRepo struct{ store *Store }

func NewRequestsRepo(store *Store) *RequestsRepo { return &RequestsRepo{store: store} }

func (r *RequestsRepo) Create(ctx context.Context, request *entity.PrayerRequest) (uuid.UUID, error) {
	return r.store.CreateRequest(ctx, request)
}

func (r *RequestsRepo) ListByCard(ctx context.Context, cardID uuid.UUID, uid string) ([]entity.PrayerRequest, error) {
	return r.store.ListRequestsByCard(ctx, cardID, uid)
}

func (r *RequestsRepo) Update(ctx context.Context, id uuid.UUID, uid string, text string) (*entity.PrayerRequest, error) {
	return r.store.UpdateRequest(ctx, id, uid, text)
}

func (r *RequestsRepo) Archive(ctx context.Context, id uuid.UUID, uid string) error {
	return r.store.ArchiveRequest(ctx, id, uid)
}

func (r *RequestsRepo) Delete(ctx context.Context, id uuid.UUID, uid string) error {
	return r.store.DeleteRequest(ctx, id, uid)
}

type TrackingRepo struct{ store *Store }

func NewTrackingRepo(store *Store) *TrackingRepo { return &TrackingRepo{store: store} }

func (r *TrackingRepo) MarkCompleted(ctx context.Context, uid string, cardID uuid.UUID, prayedAt, prayedOn time.Time) (*entity.PrayerStats, bool, error) {
	return r.store.MarkCompleted(ctx, uid, cardID, prayedAt, prayedOn)
}

func (r *TrackingRepo) UndoMostRecent(ctx context.Context, uid string, cardID uuid.UUID, from, to time.Time) (*entity.PrayerStats, error) {
	return r.store.UndoMostRecent(ctx, uid, cardID, from, to)
}

func (r *TrackingRepo) HasPrayedBetween(ctx context.Context, uid string, cardID uuid.UUID, from, to time.Time) (bool, error) {
	return r.store.HasPrayedBetween(ctx, uid, cardID, from, to)
}

func (r *TrackingRepo) BatchPrayedBetween(ctx context.Context, uid string, cardIDs []uuid.UUID, from, to time.Time) (map[uuid.UUID]bool, error) {
	return r.store.BatchPrayedBetween(ctx, uid, cardIDs, from, to)
}

func (r *TrackingRepo) GetOrInitStats(ctx context.Context, uid string) (*entity.PrayerStats, error) {
	return r.store.GetOrInitStats(ctx, uid)
}

type RemindersRepo struct{ store *Store }

func NewRemindersRepo(store *Store) *RemindersRepo { return &RemindersRepo{store: store} }

func (r *RemindersRepo) Get(ctx context.Context, uid string) (*entity.ReminderSettings, error) {
	return r.store.GetReminders(ctx, uid)
}

func (r *RemindersRepo) Upsert(ctx context.Context, settings *entity.ReminderSettings) (*entity.ReminderSettings, error) {
	return r.store.UpsertReminders(ctx, settings)
}
