package product

import (
	"context"

	"shipline/internal/types"
)

type Service struct {
	store *Store
	cache *Cache
}

// NewService wires the store with an optional cache; a nil cache turns every
// read into a store hit.
func NewService(store *Store, cache *Cache) *Service {
	return &Service{store: store, cache: cache}
}

type CreateCommand struct {
	Name        string
	Description *string
	Rating      float64
	Price       float64
	Quantity    int
	ImgURL      *string
}

func (s *Service) Create(ctx context.Context, cmd CreateCommand) (*Product, error) {
	if cmd.Name == "" || cmd.Price < 0 || cmd.Quantity < 0 {
		return nil, ErrBadRequest
	}
	p := &Product{
		ID:          types.NewID(),
		Name:        cmd.Name,
		Description: cmd.Description,
		Rating:      cmd.Rating,
		Price:       cmd.Price,
		Quantity:    cmd.Quantity,
		ImgURL:      cmd.ImgURL,
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id types.ID) (*Product, error) {
	if s.cache != nil {
		if p, ok := s.cache.Get(ctx, id); ok {
			return p, nil
		}
	}
	p, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, id, p)
	}
	return p, nil
}

func (s *Service) List(ctx context.Context, skip, limit int) ([]*Product, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > 100 {
		limit = 10
	}
	return s.store.List(ctx, skip, limit)
}

// Reserve implements the order module's stock hook. The cache entry goes
// stale the moment stock moves, so drop it.
func (s *Service) Reserve(ctx context.Context, id types.ID, qty int) error {
	if err := s.store.Reserve(ctx, id, qty); err != nil {
		return err
	}
	if s.cache != nil {
		_ = s.cache.Delete(ctx, id)
	}
	return nil
}
