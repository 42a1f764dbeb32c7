package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const itemColumns = `id, type, name, location, capacity, description, created_at`

type ItemRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewItemRepo(db *dbpg.DB) *ItemRepository {
	return &ItemRepository{
		db:       db,
		strategy: defaultStrategy(),
	}
}

func scanItem(row scanner) (*domain.Item, error) {
	var it domain.Item
	if err := row.Scan(
		&it.ID, &it.Type, &it.Name, &it.Location,
		&it.Capacity, &it.Description, &it.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	query := `SELECT ` + itemColumns + ` FROM items WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get item: %w", err)
	}

	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrItemNotFound
		}
		return nil, fmt.Errorf("scan item: %w", err)
	}

	return it, nil
}

// List возвращает каталог, при typ == nil все типы.
func (r *ItemRepository) List(ctx context.Context, typ *domain.ItemType) ([]*domain.Item, error) {
	query := `SELECT ` + itemColumns + `
			  FROM items
			  WHERE ($1::text IS NULL OR type = $1)
			  ORDER BY type, name`

	var arg any
	if typ != nil {
		arg = string(*typ)
	}

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, arg)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	res := make([]*domain.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		res = append(res, it)
	}

	return res, rows.Err()
}
