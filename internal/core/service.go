package core

import (
	"context"

	"gorm.io/datatypes"

	"github.com/upcheck-dev/upcheck/internal/apperr"
	"github.com/upcheck-dev/upcheck/internal/models"
	"github.com/upcheck-dev/upcheck/internal/store"
)

type CreateServiceInput struct {
	Name                  string
	BaseURL               string
	DefaultHeaders        datatypes.JSON
	DefaultTimeoutSeconds *int
}

type UpdateServiceInput struct {
	Name                  *string
	BaseURL               *string
	DefaultHeaders        datatypes.JSON
	DefaultTimeoutSeconds *int
}

type ServiceCore struct {
	services   *store.ServiceStore
	workspaces *store.WorkspaceStore
}

func NewServiceCore(services *store.ServiceStore, workspaces *store.WorkspaceStore) *ServiceCore {
	return &ServiceCore{services: services, workspaces: workspaces}
}

func (c *ServiceCore) Create(ctx context.Context, workspaceID, userID uint, input CreateServiceInput) (*models.Service, error) {
	if _, err := assertWorkspaceAccess(ctx, c.workspaces, workspaceID, userID); err != nil {
		return nil, err
	}

	timeout := 30
	if input.DefaultTimeoutSeconds != nil {
		timeout = *input.DefaultTimeoutSeconds
	}

	service := models.Service{
		WorkspaceID:           workspaceID,
		Name:                  input.Name,
		BaseURL:               input.BaseURL,
		DefaultHeaders:        input.DefaultHeaders,
		DefaultTimeoutSeconds: timeout,
	}

	if err := c.services.Create(ctx, &service); err != nil {
		return nil, err
	}

	return &service, nil
}

func (c *ServiceCore) List(ctx context.Context, workspaceID, userID uint) ([]models.Service, error) {
	if _, err := assertWorkspaceAccess(ctx, c.workspaces, workspaceID, userID); err != nil {
		return nil, err
	}

	return c.services.FindAllByWorkspaceID(ctx, workspaceID)
}

func (c *ServiceCore) Get(ctx context.Context, id, workspaceID, userID uint) (*models.Service, error) {
	if _, err := assertWorkspaceAccess(ctx, c.workspaces, workspaceID, userID); err != nil {
		return nil, err
	}

	return assertServiceAccess(ctx, c.services, id, workspaceID)
}

func (c *ServiceCore) Update(ctx context.Context, id, workspaceID, userID uint, input UpdateServiceInput) (*models.Service, error) {
	if _, err := assertWorkspaceAccess(ctx, c.workspaces, workspaceID, userID); err != nil {
		return nil, err
	}
	if _, err := assertServiceAccess(ctx, c.services, id, workspaceID); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})

	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.BaseURL != nil {
		fields["base_url"] = *input.BaseURL
	}
	if input.DefaultHeaders != nil {
		fields["default_headers"] = input.DefaultHeaders
	}
	if input.DefaultTimeoutSeconds != nil {
		fields["default_timeout_seconds"] = *input.DefaultTimeoutSeconds
	}

	if len(fields) == 0 {
		return assertServiceAccess(ctx, c.services, id, workspaceID)
	}

	updated, err := c.services.Update(ctx, id, workspaceID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.ErrServiceNotFound()
	}

	return updated, nil
}

func (c *ServiceCore) Delete(ctx context.Context, id, workspaceID, userID uint) error {
	if _, err := assertWorkspaceAccess(ctx, c.workspaces, workspaceID, userID); err != nil {
		return err
	}
	if _, err := assertServiceAccess(ctx, c.services, id, workspaceID); err != nil {
		return err
	}

	return c.services.SoftDeleteCascade(ctx, id, workspaceID)
}
