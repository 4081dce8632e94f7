// Package core implements the authorization-aware resource model: the
// ownership-chain checks, cascading soft deletes, and the
// uniqueness-among-active-rows rules for workspace slugs and user emails.
//
// Checks always run top-down (workspace ownership, then service existence,
// then endpoint existence) and short-circuit on the first failure. A
// non-owner probing a workspace therefore receives Forbidden even when the
// nested resource does not exist, never learning whether it exists.
package core

import (
	"context"

	"github.com/upcheck-dev/upcheck/internal/apperr"
	"github.com/upcheck-dev/upcheck/internal/models"
	"github.com/upcheck-dev/upcheck/internal/store"
)

// assertWorkspaceAccess resolves the workspace among active rows and confirms
// the requesting user owns it. Callers reuse the returned record to avoid a
// second lookup.
func assertWorkspaceAccess(ctx context.Context, workspaces *store.WorkspaceStore, workspaceID, userID uint) (*models.Workspace, error) {
	workspace, err := workspaces.FindByID(ctx, workspaceID)
	if err != nil {
		return nil, err
	}
	if workspace == nil {
		return nil, apperr.ErrWorkspaceNotFound()
	}
	if workspace.OwnerID != userID {
		return nil, apperr.ErrForbidden()
	}

	return workspace, nil
}

// assertServiceAccess resolves the service scoped to (id, workspaceID) among
// active rows. A mismatch on either is reported identically to absence.
func assertServiceAccess(ctx context.Context, services *store.ServiceStore, serviceID, workspaceID uint) (*models.Service, error) {
	service, err := services.FindByID(ctx, serviceID, workspaceID)
	if err != nil {
		return nil, err
	}
	if service == nil {
		return nil, apperr.ErrServiceNotFound()
	}

	return service, nil
}

func assertEndpointAccess(ctx context.Context, endpoints *store.EndpointStore, endpointID, serviceID uint) (*models.Endpoint, error) {
	endpoint, err := endpoints.FindByID(ctx, endpointID, serviceID)
	if err != nil {
		return nil, err
	}
	if endpoint == nil {
		return nil, apperr.ErrEndpointNotFound()
	}

	return endpoint, nil
}
