package repository

import (
	"context"
	"errors"
	"log"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/graceware/prayerdeck/pkg/cleanup"
	"github.com/graceware/prayerdeck/pkg/entity"
)

type CategoriesRepository struct {
	conn PgConnection
}

func NewCategoriesRepo(cfg DBConfig) *CategoriesRepository {
	pool, err := pgxpool.New(context.Background(), cfg.ConnString())
	if err != nil {
		log.Fatal("creating connection for categoriesRepo error: " + err.Error())
	}
	err = pool.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for categoriesRepo: " + err.Error())
	}
	cleanup.Register(&cleanup.Job{
		Name: "closing pgxpool",
		F: func() error {
			pool.Close()
			return nil
		},
	})
	return &CategoriesRepository{
		conn: pool,
	}
}

func NewCategoriesRepoWithConn(conn PgConnection) *CategoriesRepository {
	err := conn.Ping(context.Background())
	if err != nil {
		log.Fatal("error while pinging connection for categoriesRepo: " + err.Error())
	}
	return &CategoriesRepository{
		conn: conn,
	}
}

func (catr *CategoriesRepository) ListForUser(ctx context.Context, uid string) ([]entity.Category, error) {
	rows, err := catr.conn.Query(
		ctx,
		`SELECT id, name, color, icon, is_default, user_id, created_at FROM categories
		WHERE user_id = $1 OR is_default = true
		ORDER BY is_default DESC, name;`,
		uid,
	)
	if err != nil {
		return nil, errors.New("listing categories error: " + err.Error())
	}
	return collectCategories(rows)
}

func (catr *CategoriesRepository) Defaults(ctx context.Context) ([]entity.Category, error) {
	rows, err := catr.conn.Query(
		ctx,
		`SELECT id, name, color, icon, is_default, user_id, created_at FROM categories WHERE is_default = true;`,
	)
	if err != nil {
		return nil, errors.New("listing default categories error: " + err.Error())
	}
	return collectCategories(rows)
}

func (catr *CategoriesRepository) Create(ctx context.Context, category *entity.Category) (uuid.UUID, error) {
	var id uuid.UUID
	row := catr.conn.QueryRow(
		ctx,
		`INSERT INTO categories (name, color, icon, is_default, user_id) VALUES ($1, $2, $3, $4, $5) RETURNING id;`,
		category.Name,
		category.Color,
		category.Icon,
		category.IsDefault,
		category.UserID,
	)
	if err := row.Scan(&id); err != nil {
		return uuid.UUID{}, errors.New("creating category error: " + err.Error())
	}
	return id, nil
}

func collectCategories(rows pgx.Rows) ([]entity.Category, error) {
	defer rows.Close()
	categories := make([]entity.Category, 0)
	for rows.Next() {
		c := entity.Category{}
		err := rows.Scan(&c.ID, &c.Name, &c.Color, &c.Icon, &c.IsDefault, &c.UserID, &c.CreatedAt)
		if err != nil {
			return nil, errors.New("category row parsing error: " + err.Error())
		}
		categories = append(categories, c)
	}
	if rows.Err() != nil {
		return nil, errors.New("unexpected category rows error: " + rows.Err().Error())
	}
	return categories, nil
}
