package product

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shipline/internal/types"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, p *Product) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO products (id, name, description, rating, price, quantity, img_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		string(p.ID),
		p.Name,
		p.Description,
		p.Rating,
		p.Price,
		p.Quantity,
		p.ImgURL,
	)
	return err
}

func (s *Store) Get(ctx context.Context, id types.ID) (*Product, error) {
	row := s.db.QueryRow(ctx, `
		SELECT id, name, description, rating, price, quantity, img_url
		FROM products
		WHERE id = $1`, string(id),
	)
	return scanProduct(row)
}

func (s *Store) List(ctx context.Context, skip, limit int) ([]*Product, error) {
	rows, err := s.db.Query(ctx, `
		SELECT id, name, description, rating, price, quantity, img_url
		FROM products
		ORDER BY name
		OFFSET $1 LIMIT $2`, skip, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*Product{}
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Reserve decrements stock by qty only when enough remains. The guard makes
// concurrent purchases race safely: losers see ErrOutOfStock, never negative
// stock.
func (s *Store) Reserve(ctx context.Context, id types.ID, qty int) error {
	tag, err := s.db.Exec(ctx, `
		UPDATE products
		SET quantity = quantity - $2
		WHERE id = $1 AND quantity >= $2`,
		string(id), qty,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 1 {
		return nil
	}

	var exists bool
	if err := s.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, string(id),
	).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrNotFound
	}
	return ErrOutOfStock
}

func scanProduct(row pgx.Row) (*Product, error) {
	var p Product
	var description, imgURL sql.NullString

	err := row.Scan(&p.ID, &p.Name, &description, &p.Rating, &p.Price, &p.Quantity, &imgURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	if description.Valid {
		p.Description = &description.String
	}
	if imgURL.Valid {
		p.ImgURL = &imgURL.String
	}
	return &p, nil
}
