package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/pkg/cleanup"
	"github.com/graceware/prayerdeck/pkg/entity"
)

const (
	createRetries    = 3
	createRetryDelay = time.Second
)

const cardDetailsColumns = `pc.id, pc.user_id, pc.name, pc.frequency, pc.day_of_week, pc.day_of_month, pc.days_of_month,
		pc.category_id, pc.scriptures, pc.scripture_references, pc.created_at, pc.updated_at,
		c.name, c.color, c.icon, c.is_default, c.created_at,
		COUNT(pr.id) FILTER (WHERE pr.is_archived = false)`

type CardsRepository struct {
	conn PgConnection
}

func NewCardsRepo(cfg DBConfig) *CardsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for cardsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for cardsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &CardsRepository{
		conn: pool,
	}
}

func NewCardsRepoWithConn(conn PgConnection) *CardsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for cardsRepo: " + err.Error())
	}
	return &CardsRepository{
		conn: conn,
	}
}

func (cr *CardsRepository) Create(ctx context.Context, card *entity.PrayerCard) (uuid.UUID, error) {
	var id uuid.UUID
	var lastErr error
	for attempt := 0; attempt < createRetries; attempt++ {
		if attempt > 0 {
			select {
			case <-time.After(createRetryDelay):
			case <-ctx.Done():
				return uuid.UUID{}, ctx.Err()
			}
		}
		row := cr.conn.QueryRow(
			ctx,
			`INSERT INTO prayer_cards (user_id, name, frequency, day_of_week, day_of_month, days_of_month, category_id, scriptures, scripture_references)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id;`,
			card.UserID,
			card.Name,
			card.Frequency,
			card.DayOfWeek,
			card.DayOfMonth,
			card.DaysOfMonth,
			card.CategoryID,
			card.Scriptures,
			card.ScriptureReferences,
		)
		err := row.Scan(&id)
		if err == nil {
			return id, nil
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// FK violation
			if pgErr.Code == "23503" {
				return uuid.UUID{}, errorvalues.ErrCategoryNotFound
			}
			if !isTransientCode(pgErr.Code) {
				return uuid.UUID{}, errors.New("creating card error: " + err.Error())
			}
		} else if !errors.Is(err, errorvalues.ErrTransientStorage) {
			return uuid.UUID{}, errors.New("creating card error: " + err.Error())
		}
		lastErr = err
	}
	return uuid.UUID{}, errors.Join(errorvalues.ErrTransientStorage, lastErr)
}

// isTransientCode classifies connection-class failures (08xxx) and
// admin shutdown worth retrying on the create path.
func isTransientCode(code string) bool {
	if len(code) >= 2 && code[:2] == "08" {
		return true
	}
	return code == "57P01"
}

func (cr *CardsRepository) GetByID(ctx context.Context, id uuid.UUID, uid string) (*entity.PrayerCardDetails, error) {
	row := cr.conn.QueryRow(
		ctx,
		`SELECT `+cardDetailsColumns+`
		FROM prayer_cards pc
		LEFT JOIN categories c ON c.id = pc.category_id
		LEFT JOIN prayer_requests pr ON pr.prayer_card_id = pc.id
		WHERE pc.id = $1 AND pc.user_id = $2
		GROUP BY pc.id, c.id;`,
		id,
		uid,
	)
	card, err := scanCardDetails(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrCardNotFound
		}
		return nil, errors.New("getting card by id error: " + err.Error())
	}
	card.PrayerRequests, err = cr.listRequests(ctx, id)
	if err != nil {
		return nil, err
	}
	return card, nil
}

// The single-card view carries the full request list; the list views
// carry only the active count.
func (cr *CardsRepository) listRequests(ctx context.Context, cardID uuid.UUID) ([]entity.PrayerRequest, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT id, text, is_archived, archived_at, created_at FROM prayer_requests
		WHERE prayer_card_id = $1 ORDER BY created_at DESC;`,
		cardID,
	)
	if err != nil {
		return nil, errors.New("listing card requests error: " + err.Error())
	}
	defer rows.Close()
	requests := make([]entity.PrayerRequest, 0)
	for rows.Next() {
		req := entity.PrayerRequest{PrayerCardID: cardID}
		if err = rows.Scan(&req.ID, &req.Text, &req.IsArchived, &req.ArchivedAt, &req.CreatedAt); err != nil {
			return nil, errors.New("request row parsing error: " + err.Error())
		}
		requests = append(requests, req)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected request rows error: " + rows.Err().Error())
	}
	return requests, nil
}

func (cr *CardsRepository) ListByUser(ctx context.Context, uid string) ([]*entity.PrayerCardDetails, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT `+cardDetailsColumns+`
		FROM prayer_cards pc
		LEFT JOIN categories c ON c.id = pc.category_id
		LEFT JOIN prayer_requests pr ON pr.prayer_card_id = pc.id
		WHERE pc.user_id = $1
		GROUP BY pc.id, c.id
		ORDER BY pc.updated_at DESC;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing cards error: " + err.Error())
	}
	return collectCardDetails(rows)
}

func (cr *CardsRepository) ListByFilter(ctx context.Context, uid string, filter CardFilter) ([]*entity.PrayerCardDetails, error) {
	query := `SELECT ` + cardDetailsColumns + `
		FROM prayer_cards pc
		LEFT JOIN categories c ON c.id = pc.category_id
		LEFT JOIN prayer_requests pr ON pr.prayer_card_id = pc.id
		WHERE pc.user_id = $1 AND pc.frequency = $2`
	args := []any{uid, filter.Frequency}
	switch {
	case filter.DayOfWeek != nil:
		query += ` AND pc.day_of_week = $3`
		args = append(args, *filter.DayOfWeek)
	case filter.DayOfMonth != nil:
		// Legacy single day or membership in the day set; either matches
		query += ` AND (pc.day_of_month = $3 OR $3 = ANY(pc.days_of_month))`
		args = append(args, *filter.DayOfMonth)
	}
	query += `
		GROUP BY pc.id, c.id
		ORDER BY pc.updated_at DESC;`
	rows, err := cr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("listing cards by filter error: " + err.Error())
	}
	return collectCardDetails(rows)
}

func (cr *CardsRepository) Update(ctx context.Context, card *entity.PrayerCard) error {
	ct, err := cr.conn.Exec(
		ctx,
		`UPDATE prayer_cards SET name = $1, frequency = $2, day_of_week = $3, day_of_month = $4,
			days_of_month = $5, category_id = $6, scriptures = $7, scripture_references = $8, updated_at = NOW()
		WHERE id = $9 AND user_id = $10;`,
		card.Name,
		card.Frequency,
		card.DayOfWeek,
		card.DayOfMonth,
		card.DaysOfMonth,
		card.CategoryID,
		card.Scriptures,
		card.ScriptureReferences,
		card.ID,
		card.UserID,
	)
	if err != nil {
		return errors.New("updating card error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCardNotFound
	}
	return nil
}

func (cr *CardsRepository) Delete(ctx context.Context, id uuid.UUID, uid string) error {
	ct, err := cr.conn.Exec(ctx, `DELETE FROM prayer_cards WHERE id = $1 AND user_id = $2;`, id, uid)
	if err != nil {
		return errors.New("deleting card error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrCardNotFound
	}
	return nil
}

func scanCardDetails(row pgx.Row) (*entity.PrayerCardDetails, error) {
	var card entity.PrayerCardDetails
	var catName, catColor, catIcon *string
	var catDefault *bool
	var catCreatedAt *time.Time
	err := row.Scan(
		&card.ID,
		&card.UserID,
		&card.Name,
		&card.Frequency,
		&card.DayOfWeek,
		&card.DayOfMonth,
		&card.DaysOfMonth,
		&card.CategoryID,
		&card.Scriptures,
		&card.ScriptureReferences,
		&card.CreatedAt,
		&card.UpdatedAt,
		&catName,
		&catColor,
		&catIcon,
		&catDefault,
		&catCreatedAt,
		&card.ActiveRequestsCount,
	)
	if err != nil {
		return nil, err
	}
	// Category columns are null both when the card has no category and
	// when the category row was deleted
	if card.CategoryID != nil && catName != nil {
		card.Category = &entity.Category{
			ID:        *card.CategoryID,
			Name:      *catName,
			Color:     *catColor,
			Icon:      *catIcon,
			IsDefault: catDefault != nil && *catDefault,
			CreatedAt: *catCreatedAt,
		}
	}
	return &card, nil
}

func collectCardDetails(rows pgx.Rows) ([]*entity.PrayerCardDetails, error) {
	defer rows.Close()
	cards := make([]*entity.PrayerCardDetails, 0)
	for rows.Next() {
		card, err := scanCardDetails(rows)
		if err != nil {
			return nil, errors.New("card row parsing error: " + err.Error())
		}
		cards = append(cards, card)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected card rows error: " + rows.Err().Error())
	}
	return cards, nil
}
