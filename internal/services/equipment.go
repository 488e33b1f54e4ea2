package services

import (
	"context"

	"github.com/assetledger/apiserver/types"
)

// EquipmentRepository defines persistence operations for equipment.
type EquipmentRepository interface {
	List(ctx context.Context) ([]types.Equipment, error)
	GetByID(ctx context.Context, id int) (types.Equipment, error)
	Create(ctx context.Context, item types.Equipment) (types.Equipment, error)
	Update(ctx context.Context, item types.Equipment) (types.Equipment, error)
	Delete(ctx context.Context, id int) error
}

// EquipmentService encapsulates equipment use-cases.
type EquipmentService struct {
	repo EquipmentRepository
}

func NewEquipmentService(repo EquipmentRepository) *EquipmentService {
	return &EquipmentService{repo: repo}
}

func (s *EquipmentService) List(ctx context.Context) ([]types.Equipment, error) {
	return s.repo.List(ctx)
}

func (s *EquipmentService) GetByID(ctx context.Context, id int) (types.Equipment, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EquipmentService) Create(ctx context.Context, item types.Equipment) (types.Equipment, error) {
	if err := item.Validate(); err != nil {
		return types.Equipment{}, err
	}
	return s.repo.Create(ctx, item)
}

func (s *EquipmentService) Update(ctx context.Context, item types.Equipment) (types.Equipment, error) {
	if err := item.Validate(); err != nil {
		return types.Equipment{}, err
	}
	return s.repo.Update(ctx, item)
}

func (s *EquipmentService) Delete(ctx context.Context, id int) error {
	return s.repo.Delete(ctx, id)
}
