package orders

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/PythonShinobi/Otaku-Store/internal/db"
)

type Store interface {
	// ListItems returns every order line when all is set, otherwise
	// only the lines bought by userID.
	ListItems(ctx context.Context, userID int64, all bool) ([]Item, error)
	PlaceOrder(ctx context.Context, userID int64, order Checkout) (int64, error)
}

type PostgresStore struct {
	conn *sql.DB
}

func NewPostgresStore(conn *sql.DB) *PostgresStore {
	return &PostgresStore{conn: conn}
}

func (s *PostgresStore) ListItems(ctx context.Context, userID int64, all bool) ([]Item, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if all {
		rows, err = s.conn.QueryContext(ctx, `
			SELECT user_id, product_name, quantity, price, created_at
			FROM order_items
			ORDER BY created_at DESC, id DESC
		`)
	} else {
		rows, err = s.conn.QueryContext(ctx, `
			SELECT user_id, product_name, quantity, price, created_at
			FROM order_items
			WHERE user_id = $1
			ORDER BY created_at DESC, id DESC
		`, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("orders: list items: %w", err)
	}
	defer rows.Close()

	items := []Item{}
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.UserID, &it.ProductName, &it.Quantity, &it.Price, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("orders: scan item: %w", err)
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("orders: list items: %w", err)
	}

	return items, nil
}

// PlaceOrder writes the order header and all of its lines in one
// transaction and returns the new order id.
func (s *PostgresStore) PlaceOrder(ctx context.Context, userID int64, order Checkout) (int64, error) {
	var orderID int64

	err := db.WithTx(ctx, s.conn, func(ctx context.Context, tx db.Querier) error {
		err := tx.QueryRowContext(ctx, `
			INSERT INTO orders (user_id, first_name, last_name, email, address, city, postal_code)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id
		`, userID, order.FirstName, order.LastName, order.Email, order.Address, order.City, order.PostalCode).Scan(&orderID)
		if err != nil {
			return fmt.Errorf("insert order: %w", err)
		}

		for _, it := range order.CartItems {
			_, err := tx.ExecContext(ctx, `
				INSERT INTO order_items (order_id, user_id, product_id, product_name, quantity, price)
				VALUES ($1, $2, $3, $4, $5, $6)
			`, orderID, userID, it.ID, it.Name, it.Quantity, it.Price)
			if err != nil {
				return fmt.Errorf("insert item %q: %w", it.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("orders: place order: %w", err)
	}

	return orderID, nil
}
