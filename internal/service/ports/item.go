package ports

import (
	"context"

	"github.com/stpnv0/SiPinjam/internal/domain"
)

type ItemRepo interface {
	List(ctx context.Context, typ *domain.ItemType) ([]*domain.Item, error)
	GetByID(ctx context.Context, id string) (*domain.Item, error)
}
