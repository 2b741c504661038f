package service

import (
	"context"
	"errors"
	"log"
	"log/slog"

	"github.com/google/uuid"

	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/internal/repository"
	"github.com/graceware/prayerdeck/pkg/entity"
)

// fallbackCategoryName absorbs guest cards whose category can't be
// matched on the target account.
const fallbackCategoryName = "Family"

// GuestStoreI is the slice of the local store the transfer needs.
type GuestStoreI interface {
	Export(ctx context.Context) (*entity.GuestSnapshot, error)
	HasData(ctx context.Context) bool
	Purge(ctx context.Context) error
}

type TransferService struct {
	guest          GuestStoreI
	categoriesRepo repository.CategoriesRepositoryI
	cardsRepo      repository.CardsRepositoryI
	requestsRepo   repository.RequestsRepositoryI
}

func NewTransferService(guest GuestStoreI, categoriesRepo repository.CategoriesRepositoryI, cardsRepo repository.CardsRepositoryI, requestsRepo repository.RequestsRepositoryI) *TransferService {
	if guest == nil || categoriesRepo == nil || cardsRepo == nil || requestsRepo == nil {
		log.Fatal("on transfer service provided nil dependencies")
	}
	return &TransferService{
		guest:          guest,
		categoriesRepo: categoriesRepo,
		cardsRepo:      cardsRepo,
		requestsRepo:   requestsRepo,
	}
}

// Transfer copies the guest dataset onto the authenticated account:
// custom categories first, then cards with category ids remapped by
// name, then requests under the new card ids. Local data is purged
// only after everything landed. The copy is not transactional; a
// failure partway leaves already-created rows on the account and the
// guest data intact, and rerunning will duplicate the rows that made
// it. Callers should treat a failed transfer as needing manual review
// rather than a blind retry.
func (ts *TransferService) Transfer(ctx context.Context, uid string) (*TransferReport, error) {
	if !ts.guest.HasData(ctx) {
		return nil, errorvalues.ErrNoGuestData
	}
	snapshot, err := ts.guest.Export(ctx)
	if err != nil {
		return nil, errors.New("local store error: " + err.Error())
	}

	guestNames := make(map[uuid.UUID]string, len(snapshot.Categories))
	for _, c := range snapshot.Categories {
		guestNames[c.ID] = c.Name
	}

	accountCategories, err := ts.categoriesRepo.ListForUser(ctx, uid)
	if err != nil {
		return nil, errors.New("categories repository error: " + err.Error())
	}
	byName := make(map[string]uuid.UUID, len(accountCategories))
	for _, c := range accountCategories {
		byName[c.Name] = c.ID
	}

	report := &TransferReport{}
	for _, c := range snapshot.Categories {
		if c.IsDefault {
			continue
		}
		if _, exists := byName[c.Name]; exists {
			continue
		}
		created := entity.Category{
			Name:   c.Name,
			Color:  c.Color,
			Icon:   c.Icon,
			UserID: &uid,
		}
		id, err := ts.categoriesRepo.Create(ctx, &created)
		if err != nil {
			return nil, errors.New("categories repository error: " + err.Error())
		}
		byName[c.Name] = id
		report.Categories++
	}

	cardIDs := make(map[uuid.UUID]uuid.UUID, len(snapshot.Cards))
	for _, card := range snapshot.Cards {
		created := card
		created.UserID = uid
		created.CategoryID = ts.remapCategory(card.CategoryID, guestNames, byName)
		id, err := ts.cardsRepo.Create(ctx, &created)
		if err != nil {
			return nil, errors.New("cards repository error: " + err.Error())
		}
		cardIDs[card.ID] = id
		report.Cards++
	}

	for _, request := range snapshot.Requests {
		newCardID, ok := cardIDs[request.PrayerCardID]
		if !ok {
			// Request points at a card the snapshot didn't hold; skip
			slog.Warn("transfer skipped orphaned prayer request", slog.String("request_id", request.ID.String()))
			continue
		}
		created := request
		created.PrayerCardID = newCardID
		if _, err := ts.requestsRepo.Create(ctx, &created); err != nil {
			return nil, errors.New("requests repository error: " + err.Error())
		}
		report.Requests++
	}

	if err := ts.guest.Purge(ctx); err != nil {
		return nil, errors.New("local store error: " + err.Error())
	}
	slog.Info("guest data transferred",
		slog.String("uid", uid),
		slog.Int("categories", report.Categories),
		slog.Int("cards", report.Cards),
		slog.Int("requests", report.Requests))
	return report, nil
}

// remapCategory resolves a guest category id to the account's category
// with the same name, falling back to the default "Family" category
// when no name match exists. Uncategorized cards stay uncategorized.
func (ts *TransferService) remapCategory(guestID *uuid.UUID, guestNames map[uuid.UUID]string, byName map[string]uuid.UUID) *uuid.UUID {
	if guestID == nil {
		return nil
	}
	if name, ok := guestNames[*guestID]; ok {
		if id, ok := byName[name]; ok {
			return &id
		}
	}
	if id, ok := byName[fallbackCategoryName]; ok {
		return &id
	}
	return nil
}
