package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"

	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/internal/repository"
	"github.com/graceware/prayerdeck/pkg/entity"
)

const cardCols = `pc.id, pc.user_id, pc.name, pc.frequency, pc.day_of_week, pc.day_of_month, pc.days_of_month,
		pc.category_id, pc.scriptures, pc.scripture_references, pc.created_at, pc.updated_at,
		c.name, c.color, c.icon, c.is_default, c.created_at,
		COUNT(pr.id) FILTER (WHERE pr.is_archived = false)`

var cardDetailsColumnNames = []string{
	"id", "user_id", "name", "frequency", "day_of_week", "day_of_month", "days_of_month",
	"category_id", "scriptures", "scripture_references", "created_at", "updated_at",
	"cat_name", "cat_color", "cat_icon", "cat_is_default", "cat_created_at",
	"active_requests_count",
}

func cardRow(card *entity.PrayerCard, category *entity.Category, activeCount int) []any {
	var catName, catColor, catIcon *string
	var catDefault *bool
	var catCreatedAt *time.Time
	if category != nil {
		catName = &category.Name
		catColor = &category.Color
		catIcon = &category.Icon
		catDefault = &category.IsDefault
		catCreatedAt = &category.CreatedAt
	}
	return []any{
		card.ID, card.UserID, card.Name, card.Frequency, card.DayOfWeek, card.DayOfMonth, card.DaysOfMonth,
		card.CategoryID, card.Scriptures, card.ScriptureReferences, card.CreatedAt, card.UpdatedAt,
		catName, catColor, catIcon, catDefault, catCreatedAt,
		activeCount,
	}
}

func TestCreateCard(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCardsRepoWithConn(mock)
	ctx := context.Background()
	categoryID := uuid.New()
	card := entity.PrayerCard{
		UserID:     "user-42",
		Name:       "test_card",
		Frequency:  entity.FrequencyDaily,
		CategoryID: &categoryID,
		Scriptures: []string{"Be still and know"},
	}
	query := regexp.QuoteMeta(`INSERT INTO prayer_cards (user_id, name, frequency, day_of_week, day_of_month, days_of_month, category_id, scriptures, scripture_references)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`)
	args := []any{
		card.UserID, card.Name, card.Frequency, card.DayOfWeek, card.DayOfMonth,
		card.DaysOfMonth, card.CategoryID, card.Scriptures, card.ScriptureReferences,
	}
	cid := uuid.New()
	t.Run("successfully created", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(cid))
		id, err := repo.Create(ctx, &card)
		assert.NoError(t, err)
		assert.Equal(t, cid, id)
	})
	t.Run("FK violation maps to missing category", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "23503"})
		_, err := repo.Create(ctx, &card)
		assert.ErrorIs(t, err, errorvalues.ErrCategoryNotFound)
	})
	t.Run("non-transient pg error fails fast", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "22P02"})
		_, err := repo.Create(ctx, &card)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, errorvalues.ErrTransientStorage)
	})
	t.Run("retries a dropped connection", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "08006"})
		mock.ExpectQuery(query).
			WithArgs(args...).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(cid))
		id, err := repo.Create(ctx, &card)
		assert.NoError(t, err)
		assert.Equal(t, cid, id)
	})
	t.Run("cancelled context stops the retry wait", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(args...).
			WillReturnError(&pgconn.PgError{Code: "08006"})
		cancelled, cancel := context.WithCancel(ctx)
		cancel()
		_, err := repo.Create(cancelled, &card)
		assert.ErrorIs(t, err, context.Canceled)
	})
	t.Run("exhausted retries", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			mock.ExpectQuery(query).
				WithArgs(args...).
				WillReturnError(&pgconn.PgError{Code: "08006"})
		}
		_, err := repo.Create(ctx, &card)
		assert.ErrorIs(t, err, errorvalues.ErrTransientStorage)
	})
}

func TestGetCardByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCardsRepoWithConn(mock)
	ctx := context.Background()
	categoryID := uuid.New()
	category := entity.Category{
		ID:        categoryID,
		Name:      "Family",
		Color:     "#10B981",
		Icon:      "fas fa-home",
		IsDefault: true,
		CreatedAt: time.Now(),
	}
	card := entity.PrayerCard{
		ID:         uuid.New(),
		UserID:     "user-42",
		Name:       "test_card",
		Frequency:  entity.FrequencyDaily,
		CategoryID: &categoryID,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT ` + cardCols + `
		FROM prayer_cards pc
		LEFT JOIN categories c ON c.id = pc.category_id
		LEFT JOIN prayer_requests pr ON pr.prayer_card_id = pc.id
		WHERE pc.id = $1 AND pc.user_id = $2
		GROUP BY pc.id, c.id;`)
	requestsQuery := regexp.QuoteMeta(`SELECT id, text, is_archived, archived_at, created_at FROM prayer_requests
		WHERE prayer_card_id = $1 ORDER BY created_at DESC;`)
	t.Run("success with category and requests", func(t *testing.T) {
		reqID := uuid.New()
		mock.ExpectQuery(query).
			WithArgs(card.ID, card.UserID).
			WillReturnRows(pgxmock.NewRows(cardDetailsColumnNames).AddRow(cardRow(&card, &category, 1)...))
		mock.ExpectQuery(requestsQuery).
			WithArgs(card.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "text", "is_archived", "archived_at", "created_at"}).
				AddRow(reqID, "please", false, (*time.Time)(nil), time.Now()),
			)
		result, err := repo.GetByID(ctx, card.ID, card.UserID)
		assert.NoError(t, err)
		assert.Equal(t, card.Name, result.Name)
		assert.Equal(t, 1, result.ActiveRequestsCount)
		if assert.NotNil(t, result.Category) {
			assert.Equal(t, category.Name, result.Category.Name)
			assert.True(t, result.Category.IsDefault)
		}
		if assert.Len(t, result.PrayerRequests, 1) {
			assert.Equal(t, reqID, result.PrayerRequests[0].ID)
			assert.Equal(t, card.ID, result.PrayerRequests[0].PrayerCardID)
		}
	})
	t.Run("uncategorized card has nil category", func(t *testing.T) {
		bare := card
		bare.CategoryID = nil
		mock.ExpectQuery(query).
			WithArgs(bare.ID, bare.UserID).
			WillReturnRows(pgxmock.NewRows(cardDetailsColumnNames).AddRow(cardRow(&bare, nil, 0)...))
		mock.ExpectQuery(requestsQuery).
			WithArgs(bare.ID).
			WillReturnRows(pgxmock.NewRows([]string{"id", "text", "is_archived", "archived_at", "created_at"}))
		result, err := repo.GetByID(ctx, bare.ID, bare.UserID)
		assert.NoError(t, err)
		assert.Nil(t, result.Category)
		assert.Empty(t, result.PrayerRequests)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(card.ID, card.UserID).
			WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, card.ID, card.UserID)
		assert.ErrorIs(t, err, errorvalues.ErrCardNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(card.ID, card.UserID).
			WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, card.ID, card.UserID)
		assert.Error(t, err)
	})
}

func TestListCardsByFilter(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCardsRepoWithConn(mock)
	ctx := context.Background()
	uid := "user-42"
	base := `SELECT ` + cardCols + `
		FROM prayer_cards pc
		LEFT JOIN categories c ON c.id = pc.category_id
		LEFT JOIN prayer_requests pr ON pr.prayer_card_id = pc.id
		WHERE pc.user_id = $1 AND pc.frequency = $2`
	tail := `
		GROUP BY pc.id, c.id
		ORDER BY pc.updated_at DESC;`
	t.Run("daily has no day clause", func(t *testing.T) {
		card := entity.PrayerCard{ID: uuid.New(), UserID: uid, Name: "daily", Frequency: entity.FrequencyDaily}
		mock.ExpectQuery(regexp.QuoteMeta(base + tail)).
			WithArgs(uid, entity.FrequencyDaily).
			WillReturnRows(pgxmock.NewRows(cardDetailsColumnNames).AddRow(cardRow(&card, nil, 0)...))
		result, err := repo.ListByFilter(ctx, uid, repository.CardFilter{Frequency: entity.FrequencyDaily})
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
	t.Run("weekly filters by weekday", func(t *testing.T) {
		saturday := "Saturday"
		card := entity.PrayerCard{ID: uuid.New(), UserID: uid, Name: "weekly", Frequency: entity.FrequencyWeekly, DayOfWeek: &saturday}
		mock.ExpectQuery(regexp.QuoteMeta(base+` AND pc.day_of_week = $3`+tail)).
			WithArgs(uid, entity.FrequencyWeekly, saturday).
			WillReturnRows(pgxmock.NewRows(cardDetailsColumnNames).AddRow(cardRow(&card, nil, 0)...))
		result, err := repo.ListByFilter(ctx, uid, repository.CardFilter{
			Frequency: entity.FrequencyWeekly,
			DayOfWeek: &saturday,
		})
		assert.NoError(t, err)
		assert.Len(t, result, 1)
	})
	t.Run("monthly matches single day or day set", func(t *testing.T) {
		day := 14
		mock.ExpectQuery(regexp.QuoteMeta(base+` AND (pc.day_of_month = $3 OR $3 = ANY(pc.days_of_month))`+tail)).
			WithArgs(uid, entity.FrequencyMonthly, day).
			WillReturnRows(pgxmock.NewRows(cardDetailsColumnNames))
		result, err := repo.ListByFilter(ctx, uid, repository.CardFilter{
			Frequency:  entity.FrequencyMonthly,
			DayOfMonth: &day,
		})
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
}

func TestUpdateCard(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCardsRepoWithConn(mock)
	ctx := context.Background()
	card := entity.PrayerCard{
		ID:        uuid.New(),
		UserID:    "user-42",
		Name:      "renamed",
		Frequency: entity.FrequencyDaily,
	}
	query := regexp.QuoteMeta(`UPDATE prayer_cards SET name = $1, frequency = $2, day_of_week = $3, day_of_month = $4,
			days_of_month = $5, category_id = $6, scriptures = $7, scripture_references = $8, updated_at = NOW()
		WHERE id = $9 AND user_id = $10;`)
	args := []any{
		card.Name, card.Frequency, card.DayOfWeek, card.DayOfMonth, card.DaysOfMonth,
		card.CategoryID, card.Scriptures, card.ScriptureReferences, card.ID, card.UserID,
	}
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &card))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &card), errorvalues.ErrCardNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(args...).
			WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Update(ctx, &card))
	})
}

func TestDeleteCard(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	repo := repository.NewCardsRepoWithConn(mock)
	ctx := context.Background()
	id := uuid.New()
	uid := "user-42"
	query := regexp.QuoteMeta(`DELETE FROM prayer_cards WHERE id = $1 AND user_id = $2;`)
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id, uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, id, uid))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).
			WithArgs(id, uid).
			WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, id, uid), errorvalues.ErrCardNotFound)
	})
}
