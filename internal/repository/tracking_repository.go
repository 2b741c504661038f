package repository

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	errorvalues "github.com/graceware/prayerdeck/internal/error_values"
	"github.com/graceware/prayerdeck/pkg/cleanup"
	"github.com/graceware/prayerdeck/pkg/entity"
)

// Stats mutations ride the same transaction as the log insert/delete
// and use single-statement upserts, so concurrent marks can neither
// double-count a day nor lose an increment.

const markStatsQuery = `INSERT INTO user_prayer_stats (user_id, total_prayers, current_level) VALUES ($1, 1, 1)
	ON CONFLICT (user_id) DO UPDATE
	SET total_prayers = user_prayer_stats.total_prayers + 1,
		current_level = (user_prayer_stats.total_prayers + 1) / 7 + 1,
		updated_at = NOW()
	RETURNING total_prayers, current_level;`

const undoStatsQuery = `INSERT INTO user_prayer_stats (user_id, total_prayers, current_level) VALUES ($1, 0, 1)
	ON CONFLICT (user_id) DO UPDATE
	SET total_prayers = GREATEST(user_prayer_stats.total_prayers - 1, 0),
		current_level = GREATEST(user_prayer_stats.total_prayers - 1, 0) / 7 + 1,
		updated_at = NOW()
	RETURNING total_prayers, current_level;`

const initStatsQuery = `INSERT INTO user_prayer_stats (user_id) VALUES ($1)
	ON CONFLICT (user_id) DO UPDATE SET user_id = EXCLUDED.user_id
	RETURNING total_prayers, current_level;`

type TrackingRepository struct {
	conn PgConnection
}

func NewTrackingRepo(cfg DBConfig) *TrackingRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for trackingRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for trackingRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &TrackingRepository{
		conn: pool,
	}
}

func NewTrackingRepoWithConn(conn PgConnection) *TrackingRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for trackingRepo: " + err.Error())
	}
	return &TrackingRepository{
		conn: conn,
	}
}

func (tr *TrackingRepository) MarkCompleted(ctx context.Context, uid string, cardID uuid.UUID, prayedAt, prayedOn time.Time) (*entity.PrayerStats, bool, error) {
	tx, err := tr.conn.Begin(ctx)
	if err != nil {
		return nil, false, errors.New("starting mark transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	// The unique index on (user_id, prayer_card_id, prayed_on) is what
	// closes the concurrent double-mark race, not this statement's timing
	ct, err := tx.Exec(
		ctx,
		`INSERT INTO prayer_logs (user_id, prayer_card_id, prayed_at, prayed_on) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, prayer_card_id, prayed_on) DO NOTHING;`,
		uid,
		cardID,
		prayedAt,
		prayedOn,
	)
	if err != nil {
		return nil, false, errors.New("inserting prayer log error: " + err.Error())
	}

	stats := entity.PrayerStats{UserID: uid}
	if ct.RowsAffected() == 0 {
		// Already prayed within this day bucket; stats stay untouched
		row := tx.QueryRow(ctx, initStatsQuery, uid)
		if err = row.Scan(&stats.TotalPrayers, &stats.CurrentLevel); err != nil {
			return nil, false, errors.New("reading stats error: " + err.Error())
		}
		if err = tx.Commit(ctx); err != nil {
			return nil, false, errors.New("committing mark transaction error: " + err.Error())
		}
		return &stats, true, nil
	}

	row := tx.QueryRow(ctx, markStatsQuery, uid)
	if err = row.Scan(&stats.TotalPrayers, &stats.CurrentLevel); err != nil {
		return nil, false, errors.New("incrementing stats error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, false, errors.New("committing mark transaction error: " + err.Error())
	}
	return &stats, false, nil
}

func (tr *TrackingRepository) UndoMostRecent(ctx context.Context, uid string, cardID uuid.UUID, from, to time.Time) (*entity.PrayerStats, error) {
	tx, err := tr.conn.Begin(ctx)
	if err != nil {
		return nil, errors.New("starting undo transaction error: " + err.Error())
	}
	defer tx.Rollback(ctx)

	var deletedID uuid.UUID
	row := tx.QueryRow(
		ctx,
		`DELETE FROM prayer_logs WHERE id = (
			SELECT id FROM prayer_logs
			WHERE user_id = $1 AND prayer_card_id = $2 AND prayed_at >= $3 AND prayed_at < $4
			ORDER BY prayed_at DESC LIMIT 1
		) RETURNING id;`,
		uid,
		cardID,
		from,
		to,
	)
	if err = row.Scan(&deletedID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrLogNotFound
		}
		return nil, errors.New("deleting prayer log error: " + err.Error())
	}

	stats := entity.PrayerStats{UserID: uid}
	row = tx.QueryRow(ctx, undoStatsQuery, uid)
	if err = row.Scan(&stats.TotalPrayers, &stats.CurrentLevel); err != nil {
		return nil, errors.New("decrementing stats error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, errors.New("committing undo transaction error: " + err.Error())
	}
	return &stats, nil
}

func (tr *TrackingRepository) HasPrayedBetween(ctx context.Context, uid string, cardID uuid.UUID, from, to time.Time) (bool, error) {
	var prayed bool
	row := tr.conn.QueryRow(
		ctx,
		`SELECT EXISTS(SELECT 1 FROM prayer_logs WHERE user_id = $1 AND prayer_card_id = $2 AND prayed_at >= $3 AND prayed_at < $4);`,
		uid,
		cardID,
		from,
		to,
	)
	if err := row.Scan(&prayed); err != nil {
		return false, errors.New("inspecting prayer status error: " + err.Error())
	}
	return prayed, nil
}

func (tr *TrackingRepository) BatchPrayedBetween(ctx context.Context, uid string, cardIDs []uuid.UUID, from, to time.Time) (map[uuid.UUID]bool, error) {
	status := make(map[uuid.UUID]bool, len(cardIDs))
	for _, id := range cardIDs {
		status[id] = false
	}
	if len(cardIDs) == 0 {
		return status, nil
	}
	rows, err := tr.conn.Query(
		ctx,
		`SELECT DISTINCT prayer_card_id FROM prayer_logs
		WHERE user_id = $1 AND prayer_card_id = ANY($2) AND prayed_at >= $3 AND prayed_at < $4;`,
		uid,
		cardIDs,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("batch prayer status error: " + err.Error())
	}
	defer rows.Close()
	for rows.Next() {
		var id uuid.UUID
		if err = rows.Scan(&id); err != nil {
			return nil, errors.New("batch status row parsing error: " + err.Error())
		}
		status[id] = true
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected batch status rows error: " + rows.Err().Error())
	}
	return status, nil
}

func (tr *TrackingRepository) GetOrInitStats(ctx context.Context, uid string) (*entity.PrayerStats, error) {
	stats := entity.PrayerStats{UserID: uid}
	row := tr.conn.QueryRow(ctx, initStatsQuery, uid)
	if err := row.Scan(&stats.TotalPrayers, &stats.CurrentLevel); err != nil {
		return nil, errors.New("reading stats error: " + err.Error())
	}
	return &stats, nil
}
