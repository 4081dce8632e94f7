package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/upcheck-dev/upcheck/internal/models"
)

type ServiceStore struct {
	db *gorm.DB
}

func NewServiceStore(db *gorm.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

func (s *ServiceStore) Create(ctx context.Context, service *models.Service) error {
	return s.db.WithContext(ctx).Create(service).Error
}

// FindByID scopes the lookup to both the service id and its workspace. A
// service that exists under a different workspace is indistinguishable from a
// non-existent one, which keeps cross-tenant id probing blind.
func (s *ServiceStore) FindByID(ctx context.Context, id, workspaceID uint) (*models.Service, error) {
	var service models.Service

	err := s.db.WithContext(ctx).
		Scopes(Active).
		First(&service, "id = ? AND workspace_id = ?", id, workspaceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &service, nil
}

func (s *ServiceStore) FindAllByWorkspaceID(ctx context.Context, workspaceID uint) ([]models.Service, error) {
	var services []models.Service

	err := s.db.WithContext(ctx).
		Scopes(Active).
		Where("workspace_id = ?", workspaceID).
		Order("id").
		Find(&services).Error
	if err != nil {
		return nil, err
	}

	return services, nil
}

func (s *ServiceStore) Update(ctx context.Context, id, workspaceID uint, fields map[string]interface{}) (*models.Service, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Service{}).
		Scopes(Active).
		Where("id = ? AND workspace_id = ?", id, workspaceID).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return s.FindByID(ctx, id, workspaceID)
}

// SoftDeleteCascade marks the service and every active endpoint under it as
// deleted, in one transaction with one shared timestamp.
func (s *ServiceStore) SoftDeleteCascade(ctx context.Context, id, workspaceID uint) error {
	now := time.Now().UTC()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Endpoint{}).
			Scopes(Active).
			Where("service_id = ?", id).
			Update("deleted_at", now).Error; err != nil {
			return err
		}

		return tx.Model(&models.Service{}).
			Scopes(Active).
			Where("id = ? AND workspace_id = ?", id, workspaceID).
			Update("deleted_at", now).Error
	})
}
