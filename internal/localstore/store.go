// Package localstore mirrors the database repositories over a single
// durable key/value file, backing the anonymous guest session. It
// implements the same repository interfaces, so the services (and
// with them the scheduling and completion policy) run unchanged
// against either backend.
package localstore

import (
	"context"
	"errors"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"

	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/internal/repository"
	"github.com/graceware/prayerdeck/pkg/entity"
)

type collections struct {
	Categories []entity.Category        `json:"categories"`
	Cards      []entity.PrayerCard      `json:"prayer_cards"`
	Requests   []entity.PrayerRequest   `json:"prayer_requests"`
	Logs       []entity.PrayerLog       `json:"prayer_logs"`
	Reminders  *entity.ReminderSettings `json:"reminder_settings"`
	Stats      *entity.PrayerStats      `json:"prayer_stats"`
}

// Store holds all guest collections behind one mutex. Every mutation
// runs start to finish under the lock, which is what stands in for the
// database's unique index in the mark-completed race.
type Store struct {
	mu   sync.Mutex
	path string
	data collections
}

func Open(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err = sonic.Unmarshal(raw, &s.data); err != nil {
			return nil, errors.New("parsing local store error: " + err.Error())
		}
	case os.IsNotExist(err):
		// First run; collections start empty
	default:
		return nil, errors.New("reading local store error: " + err.Error())
	}
	s.seedDefaultCategories()
	if err := s.persist(); err != nil {
		return nil, err
	}
	return s, nil
}

// seedDefaultCategories is idempotent: it does nothing once any
// default category exists.
func (s *Store) seedDefaultCategories() {
	for _, c := range s.data.Categories {
		if c.IsDefault {
			return
		}
	}
	for _, d := range entity.DefaultCategories() {
		d.ID = uuid.New()
		d.CreatedAt = time.Now()
		s.data.Categories = append(s.data.Categories, d)
	}
}

// persist flushes all collections; the caller holds the lock.
func (s *Store) persist() error {
	raw, err := sonic.Marshal(&s.data)
	if err != nil {
		return errors.New("encoding local store error: " + err.Error())
	}
	if err = os.WriteFile(s.path, raw, 0o600); err != nil {
		return errors.New("writing local store error: " + err.Error())
	}
	return nil
}

// Categories

func (s *Store) ListForUser(ctx context.Context, uid string) ([]entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]entity.Category, 0)
	for _, c := range s.data.Categories {
		if c.IsDefault || (c.UserID != nil && *c.UserID == uid) {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		if result[i].IsDefault != result[j].IsDefault {
			return result[i].IsDefault
		}
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (s *Store) Defaults(ctx context.Context) ([]entity.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make([]entity.Category, 0)
	for _, c := range s.data.Categories {
		if c.IsDefault {
			result = append(result, c)
		}
	}
	return result, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *entity.Category) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *category
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	s.data.Categories = append(s.data.Categories, c)
	if err := s.persist(); err != nil {
		return uuid.UUID{}, err
	}
	return c.ID, nil
}

// Prayer cards

func (s *Store) CreateCard(ctx context.Context, card *entity.PrayerCard) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *card
	c.ID = uuid.New()
	c.CreatedAt = time.Now()
	c.UpdatedAt = c.CreatedAt
	s.data.Cards = append(s.data.Cards, c)
	if err := s.persist(); err != nil {
		return uuid.UUID{}, err
	}
	return c.ID, nil
}

func (s *Store) GetCardByID(ctx context.Context, id uuid.UUID, uid string) (*entity.PrayerCardDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Cards {
		if s.data.Cards[i].ID == id && s.data.Cards[i].UserID == uid {
			details := s.cardDetails(&s.data.Cards[i], true)
			return details, nil
		}
	}
	return nil, errorvalues.ErrCardNotFound
}

func (s *Store) ListCardsByUser(ctx context.Context, uid string) ([]*entity.PrayerCardDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCards(uid, func(*entity.PrayerCard) bool { return true }), nil
}

func (s *Store) ListCardsByFilter(ctx context.Context, uid string, filter repository.CardFilter) ([]*entity.PrayerCardDetails, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.listCards(uid, func(card *entity.PrayerCard) bool {
		if card.Frequency != filter.Frequency {
			return false
		}
		switch {
		case filter.DayOfWeek != nil:
			return card.DayOfWeek != nil && *card.DayOfWeek == *filter.DayOfWeek
		case filter.DayOfMonth != nil:
			if card.DayOfMonth != nil && *card.DayOfMonth == *filter.DayOfMonth {
				return true
			}
			for _, d := range card.DaysOfMonth {
				if d == *filter.DayOfMonth {
					return true
				}
			}
			return false
		}
		return true
	}), nil
}

func (s *Store) listCards(uid string, match func(*entity.PrayerCard) bool) []*entity.PrayerCardDetails {
	result := make([]*entity.PrayerCardDetails, 0)
	for i := range s.data.Cards {
		card := &s.data.Cards[i]
		if card.UserID != uid || !match(card) {
			continue
		}
		result = append(result, s.cardDetails(card, false))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].UpdatedAt.After(result[j].UpdatedAt)
	})
	return result
}

func (s *Store) cardDetails(card *entity.PrayerCard, withRequests bool) *entity.PrayerCardDetails {
	details := &entity.PrayerCardDetails{PrayerCard: *card}
	if card.CategoryID != nil {
		for i := range s.data.Categories {
			if s.data.Categories[i].ID == *card.CategoryID {
				category := s.data.Categories[i]
				details.Category = &category
				break
			}
		}
	}
	for _, req := range s.data.Requests {
		if req.PrayerCardID != card.ID {
			continue
		}
		if !req.IsArchived {
			details.ActiveRequestsCount++
		}
		if withRequests {
			details.PrayerRequests = append(details.PrayerRequests, req)
		}
	}
	if withRequests {
		sort.SliceStable(details.PrayerRequests, func(i, j int) bool {
			return details.PrayerRequests[i].CreatedAt.After(details.PrayerRequests[j].CreatedAt)
		})
	}
	return details
}

func (s *Store) UpdateCard(ctx context.Context, card *entity.PrayerCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Cards {
		if s.data.Cards[i].ID == card.ID && s.data.Cards[i].UserID == card.UserID {
			updated := *card
			updated.CreatedAt = s.data.Cards[i].CreatedAt
			updated.UpdatedAt = time.Now()
			s.data.Cards[i] = updated
			return s.persist()
		}
	}
	return errorvalues.ErrCardNotFound
}

func (s *Store) DeleteCard(ctx context.Context, id uuid.UUID, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i := range s.data.Cards {
		if s.data.Cards[i].ID == id && s.data.Cards[i].UserID == uid {
			idx = i
			break
		}
	}
	if idx == -1 {
		return errorvalues.ErrCardNotFound
	}
	s.data.Cards = append(s.data.Cards[:idx], s.data.Cards[idx+1:]...)
	// Requests and logs cascade, mirroring the database FKs
	requests := s.data.Requests[:0]
	for _, req := range s.data.Requests {
		if req.PrayerCardID != id {
			requests = append(requests, req)
		}
	}
	s.data.Requests = requests
	logs := s.data.Logs[:0]
	for _, l := range s.data.Logs {
		if l.PrayerCardID != id {
			logs = append(logs, l)
		}
	}
	s.data.Logs = logs
	return s.persist()
}

// Prayer requests

func (s *Store) CreateRequest(ctx context.Context, request *entity.PrayerRequest) (uuid.UUID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	found := false
	for i := range s.data.Cards {
		if s.data.Cards[i].ID == request.PrayerCardID {
			found = true
			break
		}
	}
	if !found {
		return uuid.UUID{}, errorvalues.ErrCardNotFound
	}
	req := *request
	req.ID = uuid.New()
	req.IsArchived = false
	req.ArchivedAt = nil
	req.CreatedAt = time.Now()
	s.data.Requests = append(s.data.Requests, req)
	if err := s.persist(); err != nil {
		return uuid.UUID{}, err
	}
	return req.ID, nil
}

func (s *Store) ListRequestsByCard(ctx context.Context, cardID uuid.UUID, uid string) ([]entity.PrayerRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.ownsCard(cardID, uid) {
		return nil, errorvalues.ErrCardNotFound
	}
	result := make([]entity.PrayerRequest, 0)
	for _, req := range s.data.Requests {
		if req.PrayerCardID == cardID {
			result = append(result, req)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (s *Store) UpdateRequest(ctx context.Context, id uuid.UUID, uid string, text string) (*entity.PrayerRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Requests {
		if s.data.Requests[i].ID == id && s.ownsCard(s.data.Requests[i].PrayerCardID, uid) {
			s.data.Requests[i].Text = text
			if err := s.persist(); err != nil {
				return nil, err
			}
			req := s.data.Requests[i]
			return &req, nil
		}
	}
	return nil, errorvalues.ErrRequestNotFound
}

func (s *Store) ArchiveRequest(ctx context.Context, id uuid.UUID, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Requests {
		if s.data.Requests[i].ID == id && s.ownsCard(s.data.Requests[i].PrayerCardID, uid) {
			now := time.Now()
			s.data.Requests[i].IsArchived = true
			s.data.Requests[i].ArchivedAt = &now
			return s.persist()
		}
	}
	return errorvalues.ErrRequestNotFound
}

func (s *Store) DeleteRequest(ctx context.Context, id uuid.UUID, uid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Requests {
		if s.data.Requests[i].ID == id && s.ownsCard(s.data.Requests[i].PrayerCardID, uid) {
			s.data.Requests = append(s.data.Requests[:i], s.data.Requests[i+1:]...)
			return s.persist()
		}
	}
	return errorvalues.ErrRequestNotFound
}

func (s *Store) ownsCard(cardID uuid.UUID, uid string) bool {
	for i := range s.data.Cards {
		if s.data.Cards[i].ID == cardID {
			return s.data.Cards[i].UserID == uid
		}
	}
	return false
}

// Completion tracking

func (s *Store) MarkCompleted(ctx context.Context, uid string, cardID uuid.UUID, prayedAt, prayedOn time.Time) (*entity.PrayerStats, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	dayEnd := prayedOn.AddDate(0, 0, 1)
	for _, l := range s.data.Logs {
		if l.UserID == uid && l.PrayerCardID == cardID &&
			!l.PrayedAt.Before(prayedOn) && l.PrayedAt.Before(dayEnd) {
			stats := *s.statsLocked(uid)
			return &stats, true, nil
		}
	}
	s.data.Logs = append(s.data.Logs, entity.PrayerLog{
		ID:           uuid.New(),
		UserID:       uid,
		PrayerCardID: cardID,
		PrayedAt:     prayedAt,
	})
	stats := s.statsLocked(uid)
	stats.TotalPrayers++
	stats.CurrentLevel = stats.TotalPrayers/7 + 1
	if err := s.persist(); err != nil {
		return nil, false, err
	}
	result := *stats
	return &result, false, nil
}

func (s *Store) UndoMostRecent(ctx context.Context, uid string, cardID uuid.UUID, from, to time.Time) (*entity.PrayerStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	idx := -1
	for i, l := range s.data.Logs {
		if l.UserID != uid || l.PrayerCardID != cardID {
			continue
		}
		if l.PrayedAt.Before(from) || !l.PrayedAt.Before(to) {
			continue
		}
		if idx == -1 || l.PrayedAt.After(s.data.Logs[idx].PrayedAt) {
			idx = i
		}
	}
	if idx == -1 {
		return nil, errorvalues.ErrLogNotFound
	}
	s.data.Logs = append(s.data.Logs[:idx], s.data.Logs[idx+1:]...)
	stats := s.statsLocked(uid)
	if stats.TotalPrayers > 0 {
		stats.TotalPrayers--
	}
	stats.CurrentLevel = stats.TotalPrayers/7 + 1
	if err := s.persist(); err != nil {
		return nil, err
	}
	result := *stats
	return &result, nil
}

func (s *Store) HasPrayedBetween(ctx context.Context, uid string, cardID uuid.UUID, from, to time.Time) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, l := range s.data.Logs {
		if l.UserID == uid && l.PrayerCardID == cardID &&
			!l.PrayedAt.Before(from) && l.PrayedAt.Before(to) {
			return true, nil
		}
	}
	return false, nil
}

func (s *Store) BatchPrayedBetween(ctx context.Context, uid string, cardIDs []uuid.UUID, from, to time.Time) (map[uuid.UUID]bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	status := make(map[uuid.UUID]bool, len(cardIDs))
	for _, id := range cardIDs {
		status[id] = false
	}
	for _, l := range s.data.Logs {
		if l.UserID != uid {
			continue
		}
		if _, requested := status[l.PrayerCardID]; !requested {
			continue
		}
		if !l.PrayedAt.Before(from) && l.PrayedAt.Before(to) {
			status[l.PrayerCardID] = true
		}
	}
	return status, nil
}

func (s *Store) GetOrInitStats(ctx context.Context, uid string) (*entity.PrayerStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stats := *s.statsLocked(uid)
	if err := s.persist(); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (s *Store) statsLocked(uid string) *entity.PrayerStats {
	if s.data.Stats == nil {
		s.data.Stats = &entity.PrayerStats{UserID: uid, TotalPrayers: 0, CurrentLevel: 1}
	}
	return s.data.Stats
}

// Reminder settings

func (s *Store) GetReminders(ctx context.Context, uid string) (*entity.ReminderSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.data.Reminders == nil {
		return nil, nil
	}
	settings := *s.data.Reminders
	return &settings, nil
}

func (s *Store) UpsertReminders(ctx context.Context, settings *entity.ReminderSettings) (*entity.ReminderSettings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	updated := *settings
	now := time.Now()
	if s.data.Reminders != nil {
		updated.CreatedAt = s.data.Reminders.CreatedAt
	} else {
		updated.CreatedAt = now
	}
	updated.UpdatedAt = now
	s.data.Reminders = &updated
	if err := s.persist(); err != nil {
		return nil, err
	}
	result := updated
	return &result, nil
}

// Transfer support

// Export snapshots the guest dataset for transfer. All categories go
// along, defaults included, because cards reference them by local id
// and the transfer remaps those ids by name on the target account.
func (s *Store) Export(ctx context.Context) (*entity.GuestSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := &entity.GuestSnapshot{
		Categories: make([]entity.Category, 0, len(s.data.Categories)),
		Cards:      make([]entity.PrayerCard, 0, len(s.data.Cards)),
		Requests:   make([]entity.PrayerRequest, 0, len(s.data.Requests)),
	}
	snapshot.Categories = append(snapshot.Categories, s.data.Categories...)
	snapshot.Cards = append(snapshot.Cards, s.data.Cards...)
	snapshot.Requests = append(snapshot.Requests, s.data.Requests...)
	return snapshot, nil
}

func (s *Store) HasData(ctx context.Context) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.data.Cards) > 0 || len(s.data.Requests) > 0 {
		return true
	}
	for _, c := range s.data.Categories {
		if !c.IsDefault {
			return true
		}
	}
	return false
}

// Purge drops every guest collection after a successful transfer and
// re-seeds the default categories.
func (s *Store) Purge(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = collections{}
	s.seedDefaultCategories()
	return s.persist()
}
