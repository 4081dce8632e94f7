package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/upcheck-dev/upcheck/internal/models"
)

type WorkspaceStore struct {
	db *gorm.DB
}

func NewWorkspaceStore(db *gorm.DB) *WorkspaceStore {
	return &WorkspaceStore{db: db}
}

func (s *WorkspaceStore) Create(ctx context.Context, workspace *models.Workspace) error {
	return s.db.WithContext(ctx).Create(workspace).Error
}

func (s *WorkspaceStore) FindByID(ctx context.Context, id uint) (*models.Workspace, error) {
	var workspace models.Workspace

	err := s.db.WithContext(ctx).
		Scopes(Active).
		First(&workspace, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &workspace, nil
}

func (s *WorkspaceStore) FindBySlug(ctx context.Context, slug string) (*models.Workspace, error) {
	var workspace models.Workspace

	err := s.db.WithContext(ctx).
		Scopes(Active).
		First(&workspace, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &workspace, nil
}

func (s *WorkspaceStore) FindAllByOwnerID(ctx context.Context, ownerID uint) ([]models.Workspace, error) {
	var workspaces []models.Workspace

	err := s.db.WithContext(ctx).
		Scopes(Active).
		Where("owner_id = ?", ownerID).
		Order("id").
		Find(&workspaces).Error
	if err != nil {
		return nil, err
	}

	return workspaces, nil
}

// Update applies the given column set to an active workspace and returns the
// post-mutation row, or nil when no active row matched.
func (s *WorkspaceStore) Update(ctx context.Context, id uint, fields map[string]interface{}) (*models.Workspace, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Workspace{}).
		Scopes(Active).
		Where("id = ?", id).
		Updates(fields)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return s.FindByID(ctx, id)
}

// SoftDeleteCascade marks the workspace and every active service and endpoint
// under it as deleted. All statements run in one transaction and share a
// single timestamp so rows deleted in the same cascade are traceable.
func (s *WorkspaceStore) SoftDeleteCascade(ctx context.Context, id uint) error {
	now := time.Now().UTC()

	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Endpoint{}).
			Scopes(Active).
			Where("workspace_id = ?", id).
			Update("deleted_at", now).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Service{}).
			Scopes(Active).
			Where("workspace_id = ?", id).
			Update("deleted_at", now).Error; err != nil {
			return err
		}

		return tx.Model(&models.Workspace{}).
			Scopes(Active).
			Where("id = ?", id).
			Update("deleted_at", now).Error
	})
}
