package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/PythonShinobi/Otaku-Store/internal/db"
)

var ErrNotFound = errors.New("product not found")

type Store interface {
	List(ctx context.Context) ([]Product, error)
	ListByCategory(ctx context.Context, category string) ([]Product, error)
	Create(ctx context.Context, p NewProduct) (*Product, error)
	Delete(ctx context.Context, id int64) error
}

type PostgresStore struct {
	db db.Querier
}

func NewPostgresStore(q db.Querier) *PostgresStore {
	return &PostgresStore{db: q}
}

const productColumns = `id, name, price, description, category, image, rating, created_at`

func (s *PostgresStore) List(ctx context.Context) ([]Product, error) {
	return s.query(ctx, `
		SELECT `+productColumns+`
		FROM products
		ORDER BY id
	`)
}

func (s *PostgresStore) ListByCategory(ctx context.Context, category string) ([]Product, error) {
	return s.query(ctx, `
		SELECT `+productColumns+`
		FROM products
		WHERE LOWER(category) = LOWER($1)
		ORDER BY id
	`, category)
}

func (s *PostgresStore) Create(ctx context.Context, p NewProduct) (*Product, error) {
	row := s.db.QueryRowContext(ctx, `
		INSERT INTO products (name, description, price, category, image, rating)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+productColumns,
		p.Name, p.Description, p.Price, p.Category, p.Image, p.Rating,
	)

	out, err := scanProduct(row)
	if err != nil {
		return nil, fmt.Errorf("catalog: create product: %w", err)
	}
	return out, nil
}

func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("catalog: delete product %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("catalog: delete product %d: %w", id, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) query(ctx context.Context, q string, args ...any) ([]Product, error) {
	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog: list products: %w", err)
	}
	defer rows.Close()

	products := []Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("catalog: scan product: %w", err)
		}
		products = append(products, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog: list products: %w", err)
	}

	return products, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanProduct(s scanner) (*Product, error) {
	var (
		p     Product
		image sql.NullString
	)
	if err := s.Scan(&p.ID, &p.Title, &p.Price, &p.Description, &p.Category, &image, &p.Rating, &p.CreatedAt); err != nil {
		return nil, err
	}
	if image.Valid {
		p.Image = &image.String
	}
	return &p, nil
}
