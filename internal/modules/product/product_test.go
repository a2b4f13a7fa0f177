package product

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5/pgxpool"

	"shipline/internal/types"
)

func TestCreateValidation(t *testing.T) {
	svc := NewService(nil, nil)
	ctx := context.Background()

	cases := []CreateCommand{
		{},
		{Name: "Phone", Price: -1},
		{Name: "Phone", Price: 10, Quantity: -5},
	}
	for i, cmd := range cases {
		if _, err := svc.Create(ctx, cmd); !errors.Is(err, ErrBadRequest) {
			t.Errorf("case %d: err = %v, want ErrBadRequest", i, err)
		}
	}
}

func TestCatalogFlow(t *testing.T) {
	svc := NewService(setupTestStore(t), nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateCommand{
		Name:     "Test Smartphone",
		Price:    599.99,
		Quantity: 10,
		Rating:   4.5,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.Get(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "Test Smartphone" || got.Quantity != 10 {
		t.Errorf("got = %+v", got)
	}

	list, err := svc.List(ctx, 0, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list returned %d products, want 1", len(list))
	}
}

func TestReserve(t *testing.T) {
	svc := NewService(setupTestStore(t), nil)
	ctx := context.Background()

	p, err := svc.Create(ctx, CreateCommand{Name: "Limited", Price: 10, Quantity: 2})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := svc.Reserve(ctx, p.ID, 2); err != nil {
		t.Fatalf("reserve: %v", err)
	}
	if err := svc.Reserve(ctx, p.ID, 1); !errors.Is(err, ErrOutOfStock) {
		t.Fatalf("err = %v, want ErrOutOfStock", err)
	}
	if err := svc.Reserve(ctx, types.NewID(), 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	got, err := svc.Get(ctx, p.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Quantity != 0 {
		t.Errorf("quantity = %d, want 0", got.Quantity)
	}
}

func setupTestStore(t *testing.T) *Store {
	t.Helper()

	dsn := os.Getenv("SHIPLINE_TEST_DSN")
	if dsn == "" {
		t.Skip("SHIPLINE_TEST_DSN not set; skipping DB-backed tests")
	}

	ctx := context.Background()
	db, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if err := applyMigration(ctx, db); err != nil {
		t.Fatalf("apply migration: %v", err)
	}
	if _, err := db.Exec(ctx, "TRUNCATE TABLE order_reasons, order_tracking, product_orders, products"); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}

	return NewStore(db)
}

func applyMigration(ctx context.Context, db *pgxpool.Pool) error {
	dir, err := os.Getwd()
	if err != nil {
		return err
	}
	for {
		if _, statErr := os.Stat(filepath.Join(dir, "go.mod")); statErr == nil {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return os.ErrNotExist
		}
		dir = parent
	}

	content, err := os.ReadFile(filepath.Join(dir, "migrations", "0001_init.sql"))
	if err != nil {
		return err
	}
	for _, stmt := range splitSQL(string(content)) {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

func splitSQL(sql string) []string {
	var cleaned []string
	for _, line := range strings.Split(sql, "\n") {
		if i := strings.Index(line, "--"); i >= 0 {
			line = line[:i]
		}
		cleaned = append(cleaned, line)
	}
	parts := strings.Split(strings.Join(cleaned, "\n"), ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
