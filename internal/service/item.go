package service

import (
	"context"
	"fmt"

	"github.com/stpnv0/SiPinjam/internal/domain"
	"github.com/stpnv0/SiPinjam/internal/service/ports"
)

type ItemService struct {
	repo ports.ItemRepo
}

func NewItemService(repo ports.ItemRepo) *ItemService {
	return &ItemService{repo: repo}
}

func (s *ItemService) List(ctx context.Context, typ *domain.ItemType) ([]*domain.Item, error) {
	if typ != nil && !typ.Valid() {
		return nil, fmt.Errorf("%w: unknown item type %q", domain.ErrValidation, *typ)
	}
	return s.repo.List(ctx, typ)
}

func (s *ItemService) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.GetByID(ctx, id)
}
