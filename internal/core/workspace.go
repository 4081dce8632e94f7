package core

import (
	"context"

	"github.com/upcheck-dev/upcheck/internal/apperr"
	"github.com/upcheck-dev/upcheck/internal/models"
	"github.com/upcheck-dev/upcheck/internal/slug"
	"github.com/upcheck-dev/upcheck/internal/store"
)

type CreateWorkspaceInput struct {
	Name string
	Slug *string
}

type UpdateWorkspaceInput struct {
	Name *string
	Slug *string
}

type WorkspaceCore struct {
	workspaces *store.WorkspaceStore
}

func NewWorkspaceCore(workspaces *store.WorkspaceStore) *WorkspaceCore {
	return &WorkspaceCore{workspaces: workspaces}
}

// assertSlugAvailable fails with SlugTaken when an active workspace other
// than excludeID already holds the slug. A caller re-submitting its own
// current slug is not a conflict.
func (c *WorkspaceCore) assertSlugAvailable(ctx context.Context, candidate string, excludeID uint) error {
	existing, err := c.workspaces.FindBySlug(ctx, candidate)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return apperr.ErrSlugTaken()
	}

	return nil
}

func (c *WorkspaceCore) Create(ctx context.Context, ownerID uint, input CreateWorkspaceInput) (*models.Workspace, error) {
	candidate := slug.Generate(input.Name)
	if input.Slug != nil {
		candidate = *input.Slug
	}

	if err := c.assertSlugAvailable(ctx, candidate, 0); err != nil {
		return nil, err
	}

	workspace := models.Workspace{
		OwnerID:                 ownerID,
		Name:                    input.Name,
		Slug:                    candidate,
		Plan:                    "free",
		MaxServices:             5,
		MaxCheckIntervalSeconds: 300,
	}

	if err := c.workspaces.Create(ctx, &workspace); err != nil {
		return nil, err
	}

	return &workspace, nil
}

func (c *WorkspaceCore) List(ctx context.Context, ownerID uint) ([]models.Workspace, error) {
	return c.workspaces.FindAllByOwnerID(ctx, ownerID)
}

func (c *WorkspaceCore) Get(ctx context.Context, id, userID uint) (*models.Workspace, error) {
	return assertWorkspaceAccess(ctx, c.workspaces, id, userID)
}

func (c *WorkspaceCore) Update(ctx context.Context, id, userID uint, input UpdateWorkspaceInput) (*models.Workspace, error) {
	workspace, err := assertWorkspaceAccess(ctx, c.workspaces, id, userID)
	if err != nil {
		return nil, err
	}

	fields := make(map[string]interface{})

	if input.Name != nil {
		fields["name"] = *input.Name
	}

	if input.Slug != nil {
		if err := c.assertSlugAvailable(ctx, *input.Slug, id); err != nil {
			return nil, err
		}
		fields["slug"] = *input.Slug
	}

	if len(fields) == 0 {
		return workspace, nil
	}

	updated, err := c.workspaces.Update(ctx, id, fields)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperr.ErrWorkspaceNotFound()
	}

	return updated, nil
}

func (c *WorkspaceCore) Delete(ctx context.Context, id, userID uint) error {
	if _, err := assertWorkspaceAccess(ctx, c.workspaces, id, userID); err != nil {
		return err
	}

	return c.workspaces.SoftDeleteCascade(ctx, id)
}
