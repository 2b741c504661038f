package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/pkg/cleanup"
	"github.com/graceware/prayerdeck/pkg/entity"
)

type RequestsRepository struct {
	conn PgConnection
}

func NewRequestsRepo(cfg DBConfig) *RequestsRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for requestsRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for requestsRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &RequestsRepository{
		conn: pool,
	}
}

func NewRequestsRepoWithConn(conn PgConnection) *RequestsRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for requestsRepo: " + err.Error())
	}
	return &RequestsRepository{
		conn: conn,
	}
}

func (rr *RequestsRepository) Create(ctx context.Context, request *entity.PrayerRequest) (uuid.UUID, error) {
	var id uuid.UUID
	row := rr.conn.QueryRow(
		ctx,
		`INSERT INTO prayer_requests (prayer_card_id, text) VALUES ($1, $2) RETURNING id;`,
		request.PrayerCardID,
		request.Text,
	)
	if err := row.Scan(&id); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			// FK violation
			if pgErr.Code == "23503" {
				return uuid.UUID{}, errorvalues.ErrCardNotFound
			}
		}
		return uuid.UUID{}, errors.New("creating request error: " + err.Error())
	}
	return id, nil
}

func (rr *RequestsRepository) ListByCard(ctx context.Context, cardID uuid.UUID, uid string) ([]entity.PrayerRequest, error) {
	rows, err := rr.conn.Query(
		ctx,
		`SELECT pr.id, pr.prayer_card_id, pr.text, pr.is_archived, pr.archived_at, pr.created_at
		FROM prayer_requests pr
		JOIN prayer_cards pc ON pc.id = pr.prayer_card_id
		WHERE pr.prayer_card_id = $1 AND pc.user_id = $2
		ORDER BY pr.created_at DESC;`,
		cardID,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing requests error: " + err.Error())
	}
	defer rows.Close()
	requests := make([]entity.PrayerRequest, 0)
	for rows.Next() {
		req := entity.PrayerRequest{}
		err = rows.Scan(&req.ID, &req.PrayerCardID, &req.Text, &req.IsArchived, &req.ArchivedAt, &req.CreatedAt)
		if err != nil {
			return nil, errors.New("request row parsing error: " + err.Error())
		}
		requests = append(requests, req)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected request rows error: " + rows.Err().Error())
	}
	return requests, nil
}

func (rr *RequestsRepository) Update(ctx context.Context, id uuid.UUID, uid string, text string) (*entity.PrayerRequest, error) {
	row := rr.conn.QueryRow(
		ctx,
		`UPDATE prayer_requests pr SET text = $1
		FROM prayer_cards pc
		WHERE pr.id = $2 AND pr.prayer_card_id = pc.id AND pc.user_id = $3
		RETURNING pr.id, pr.prayer_card_id, pr.text, pr.is_archived, pr.archived_at, pr.created_at;`,
		text,
		id,
		uid,
	)
	req := entity.PrayerRequest{}
	err := row.Scan(&req.ID, &req.PrayerCardID, &req.Text, &req.IsArchived, &req.ArchivedAt, &req.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrRequestNotFound
		}
		return nil, errors.New("updating request error: " + err.Error())
	}
	return &req, nil
}

func (rr *RequestsRepository) Archive(ctx context.Context, id uuid.UUID, uid string) error {
	ct, err := rr.conn.Exec(
		ctx,
		`UPDATE prayer_requests pr SET is_archived = true, archived_at = NOW()
		FROM prayer_cards pc
		WHERE pr.id = $1 AND pr.prayer_card_id = pc.id AND pc.user_id = $2;`,
		id,
		uid,
	)
	if err != nil {
		return errors.New("archiving request error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRequestNotFound
	}
	return nil
}

func (rr *RequestsRepository) Delete(ctx context.Context, id uuid.UUID, uid string) error {
	ct, err := rr.conn.Exec(
		ctx,
		`DELETE FROM prayer_requests pr
		USING prayer_cards pc
		WHERE pr.id = $1 AND pr.prayer_card_id = pc.id AND pc.user_id = $2;`,
		id,
		uid,
	)
	if err != nil {
		return errors.New("deleting request error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrRequestNotFound
	}
	return nil
}
