package service

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"time"

	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/internal/repository"
	"github.com/graceware/prayerdeck/pkg/entity"
)

const (
	seedRetries    = 3
	seedRetryDelay = time.Second
)

type CategoriesService struct {
	repo repository.CategoriesRepositoryI
}

func NewCategoriesService(categoriesRepo repository.CategoriesRepositoryI) *CategoriesService {
	if categoriesRepo == nil {
		log.Fatal("provided nil categoriesRepo")
	}
	InitValidator()
	return &CategoriesService{
		repo: categoriesRepo,
	}
}

func (cs *CategoriesService) List(ctx context.Context, uid string) ([]entity.Category, error) {
	categories, err := cs.repo.ListForUser(ctx, uid)
	if err != nil {
		return nil, errors.New("categories repository error: " + err.Error())
	}
	return categories, nil
}

func (cs *CategoriesService) Create(ctx context.Context, uid string, req *CreateCategoryRequest) (*entity.Category, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	category := entity.Category{
		Name:   req.Name,
		Color:  req.Color,
		Icon:   req.Icon,
		UserID: &uid,
	}
	id, err := cs.repo.Create(ctx, &category)
	if err != nil {
		return nil, errors.New("categories repository error: " + err.Error())
	}
	category.ID = id
	category.CreatedAt = time.Now()
	return &category, nil
}

// EnsureDefaults seeds the fixed default categories on first startup.
// The existence check makes repeats no-ops, and each insert gets a few
// attempts with growing delay since this runs while the database may
// still be settling.
func (cs *CategoriesService) EnsureDefaults(ctx context.Context) error {
	existing, err := cs.repo.Defaults(ctx)
	if err != nil {
		return errors.New("categories repository error: " + err.Error())
	}
	if len(existing) > 0 {
		return nil
	}
	for _, category := range entity.DefaultCategories() {
		if err := cs.createWithRetry(ctx, &category); err != nil {
			return err
		}
	}
	slog.Info("seeded default categories", slog.Int("count", len(entity.DefaultCategories())))
	return nil
}

func (cs *CategoriesService) createWithRetry(ctx context.Context, category *entity.Category) error {
	delay := seedRetryDelay
	var lastErr error
	for attempt := 0; attempt < seedRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return ctx.Err()
			}
			delay *= 2
		}
		if _, lastErr = cs.repo.Create(ctx, category); lastErr == nil {
			return nil
		}
		slog.Warn("default category seed attempt failed",
			slog.String("category", category.Name),
			slog.Int("attempt", attempt+1),
			slog.String("error", lastErr.Error()))
	}
	return errors.Join(errorvalues.ErrTransientStorage, lastErr)
}
