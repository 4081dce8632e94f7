package core

import (
	"context"

	"gorm.io/datatypes"

	"github.com/upcheck-dev/upcheck/internal/apperr"
	"github.com/upcheck-dev/upcheck/internal/models"
	"github.com/upcheck-dev/upcheck/internal/store"
)

type CreateEndpointInput struct {
	Name                 string
	Route                string
	HTTPMethod           *string
	Headers              datatypes.JSON
	Body                 datatypes.JSON
	ExpectedStatusCode   *int
	ExpectedBody         datatypes.JSON
	CheckIntervalSeconds *int
	IsActive             *bool
}

type UpdateEndpointInput struct {
	Name                 *string
	Route                *string
	HTTPMethod           *string
	Headers              datatypes.JSON
	Body                 datatypes.JSON
	ExpectedStatusCode   *int
	ExpectedBody         datatypes.JSON
	CheckIntervalSeconds *int
	IsActive             *bool
}

type EndpointCore struct {
	endpoints  *store.EndpointStore
	services   *store.ServiceStore
	workspaces *store.WorkspaceStore
}

func NewEndpointCore(endpoints *store.EndpointStore, services *store.ServiceStore, workspaces *store.WorkspaceStore) *EndpointCore {
	return &EndpointCore{endpoints: endpoints, services: services, workspaces: workspaces}
}

func (c *EndpointCore) Create(ctx context.Context, workspaceID, serviceID, userID uint, input CreateEndpointInput) (*models.Endpoint, error) {
	if _, err := assertWorkspaceAccess(ctx, c.workspaces, workspaceID, userID); err != nil {
		return nil, err
	}
	if _, err := assertServiceAccess(ctx, c.services, serviceID, workspaceID); err != nil {
		return nil, err
	}

	endpoint := models.Endpoint{
		WorkspaceID:          workspaceID,
		ServiceID:            serviceID,
		Name:                 input.Name,
		Route:                input.Route,
		HTTPMethod:           "GET",
		Headers:              input.Headers,
		Body:                 input.Body,
		ExpectedStatusCode:   200,
		ExpectedBody:         input.ExpectedBody,
		CheckIntervalSeconds: 300,
		IsActive:             true,
	}

	if input.HTTPMethod != nil {
		endpoint.HTTPMethod = *input.HTTPMethod
	}
	if input.ExpectedStatusCode != nil {
		endpoint.ExpectedStatusCode = *input.ExpectedStatusCode
	}
	if input.CheckIntervalSeconds != nil {
		endpoint.CheckIntervalSeconds = *input.CheckIntervalSeconds
	}
	if input.IsActive != nil {
		endpoint.IsActive = *input.IsActive
	}

	if err := c.endpoints.Create(ctx, &endpoint); err != nil {
		return nil, err
	}

	return &endpoint, nil
}

func (c *EndpointCore) List(ctx context.Context, workspaceID, serviceID, userID uint) ([]models.Endpoint, error) {
	if _, err := assertWorkspaceAccess(ctx, c.workspaces, workspaceID, userID); err != nil {
		return nil, err
	}
	if _, err := assertServiceAccess(ctx, c.services, serviceID, workspaceID); err != nil {
		return nil, err
	}

	return c.endpoints.FindAllByServiceID(ctx, serviceID)
}

func (c *EndpointCore) Get(ctx context.Context, id, serviceID, workspaceID, userID uint) (*models.Endpoint, error) {
	if _, err := assertWorkspaceAccess(ctx, c.workspaces, workspaceID, userID); err != nil {
		return nil, err
	}
	if _, err := assertServiceAccess(ctx, c.services, serviceID, workspaceID); err != nil {
		return nil, err
	}

	return assertEndpointAccess(ctx, c.endpoints, id, serviceID)
}

func (c *EndpointCore) Update(ctx context.Context, id, serviceID, workspaceID, userID uint, input UpdateEndpointInput) (*models.Endpoint, error) {
	if _, err := assertWorkspaceAccess(ctx, c.workspaces, workspaceID, userID); err != nil {
		return nil, err
	}
	if _, err := assertServiceAccess(ctx, c.services, serviceID, workspaceID); err != nil {
		return nil, err
	}
	if _, err := assertEndpointAccess(ctx, c.endpoints, id, serviceID); err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})

	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Route != nil {
		fields["route"] = *input.Route
	}
	if input.HTTPMethod != nil {
		fields["http_method"] = *input.HTTPMethod
	}
	if input.Headers != nil {
		fields["headers"] = input.Headers
	}
	if input.Body != nil {
		fields["body"] = input.Body
	}
	if input.ExpectedStatusCode != nil {
		fields["expected_status_code"] = *input.ExpectedStatusCode
	}
	if input.ExpectedBody != nil {
		fields["expected_body"] = input.ExpectedBody
	}
	if input.CheckIntervalSeconds != nil {
		fields["check_interval_seconds"] = *input.CheckIntervalSeconds
	}
	if input.IsActive != nil {
		fields["is_active"] = *input.IsActive
	}

	if len(fields) == 0 {
		return assertEndpointAccess(ctx, c.endpoints, id, serviceID)
	}

	updated, err := c.endpoints.Update(ctx, id, serviceID, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.ErrEndpointNotFound()
	}

	return updated, nil
}

func (c *EndpointCore) Delete(ctx context.Context, id, serviceID, workspaceID, userID uint) error {
	if _, err := assertWorkspaceAccess(ctx, c.workspaces, workspaceID, userID); err != nil {
		return err
	}
	if _, err := assertServiceAccess(ctx, c.services, serviceID, workspaceID); err != nil {
		return err
	}
	if _, err := assertEndpointAccess(ctx, c.endpoints, id, serviceID); err != nil {
		return err
	}

	return c.endpoints.SoftDelete(ctx, id, serviceID)
}
