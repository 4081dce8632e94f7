package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/upcheck-dev/upcheck/internal/models"
)

type EndpointStore struct {
	db *gorm.DB
}

func NewEndpointStore(db *gorm.DB) *EndpointStore {
	return &EndpointStore{db: db}
}

func (s *EndpointStore) Create(ctx context.Context, endpoint *models.Endpoint) error {
	return s.db.WithContext(ctx).Create(endpoint).Error
}

func (s *EndpointStore) FindByID(ctx context.Context, id, serviceID uint) (*models.Endpoint, error) {
	var endpoint models.Endpoint

	err := s.db.WithContext(ctx).
		Scopes(Active).
		First(&endpoint, "id = ? AND service_id = ?", id, serviceID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &endpoint, nil
}

func (s *EndpointStore) FindAllByServiceID(ctx context.Context, serviceID uint) ([]models.Endpoint, error) {
	var endpoints []models.Endpoint

	err := s.db.WithContext(ctx).
		Scopes(Active).
		Where("service_id = ?", serviceID).
		Order("id").
		Find(&endpoints).Error
	if err != nil {
		return nil, err
	}

	return endpoints, nil
}

func (s *EndpointStore) Update(ctx context.Context, id, serviceID uint, fields map[string]interface{}) (*models.Endpoint, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Endpoint{}).
		Scopes(Active).
		Where("id = ? AND service_id = ?", id, serviceID).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return s.FindByID(ctx, id, serviceID)
}

// SoftDelete marks a single endpoint as deleted. Endpoints are leaves; there
// is nothing to cascade to.
func (s *EndpointStore) SoftDelete(ctx context.Context, id, serviceID uint) error {
	return s.db.WithContext(ctx).
		Model(&models.Endpoint{}).
		Scopes(Active).
		Where("id = ? AND service_id = ?", id, serviceID).
		Update("deleted_at", time.Now().UTC()).Error
}
