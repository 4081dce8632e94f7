package core

import (
	"context"
	"errors"
	"testing"

	"github.com/upcheck-dev/upcheck/internal/apperr"
)

func TestCreateServiceRequiresWorkspaceOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "a@example.com")
	intruder := f.user(t, "b@example.com")

	workspace, err := f.workspaces.Create(ctx, owner.ID, CreateWorkspaceInput{Name: "Mine"})
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}

	input := CreateServiceInput{Name: "api", BaseURL: "https://api.example.com"}

	if _, err := f.services.Create(ctx, workspace.ID, intruder.ID, input); !errors.Is(err, apperr.ErrForbidden()) {
		t.Fatalf("expected Forbidden, got %v", err)
	}

	service, err := f.services.Create(ctx, workspace.ID, owner.ID, input)
	if err != nil {
		t.Fatalf("owner create: %v", err)
	}
	if service.DefaultTimeoutSeconds != 30 {
		t.Fatalf("default timeout = %d, want 30", service.DefaultTimeoutSeconds)
	}
}

func TestCreateServiceUnderDeletedWorkspaceFails(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "a@example.com")

	workspace, err := f.workspaces.Create(ctx, owner.ID, CreateWorkspaceInput{Name: "Mine"})
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}
	if err := f.workspaces.Delete(ctx, workspace.ID, owner.ID); err != nil {
		t.Fatalf("delete workspace: %v", err)
	}

	_, err = f.services.Create(ctx, workspace.ID, owner.ID, CreateServiceInput{Name: "api", BaseURL: "https://api.example.com"})
	if !errors.Is(err, apperr.ErrWorkspaceNotFound()) {
		t.Fatalf("expected WorkspaceNotFound, got %v", err)
	}
}

func TestGetServiceCrossWorkspaceIsNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "a@example.com")

	workspaceA, err := f.workspaces.Create(ctx, owner.ID, CreateWorkspaceInput{Name: "Alpha"})
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}
	workspaceB, err := f.workspaces.Create(ctx, owner.ID, CreateWorkspaceInput{Name: "Beta"})
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}

	service, err := f.services.Create(ctx, workspaceA.ID, owner.ID, CreateServiceInput{Name: "api", BaseURL: "https://api.example.com"})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	// A real id reached through the wrong workspace is indistinguishable from
	// a missing one.
	_, err = f.services.Get(ctx, service.ID, workspaceB.ID, owner.ID)
	if !errors.Is(err, apperr.ErrServiceNotFound()) {
		t.Fatalf("expected ServiceNotFound, got %v", err)
	}
}

func TestOwnershipCheckPrecedesServiceExistence(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "a@example.com")
	intruder := f.user(t, "b@example.com")

	workspace, err := f.workspaces.Create(ctx, owner.ID, CreateWorkspaceInput{Name: "Mine"})
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}

	// The probed service does not exist, but a non-owner must still see
	// Forbidden, never learning anything about nested resources.
	_, err = f.services.Get(ctx, 9999, workspace.ID, intruder.ID)
	if !errors.Is(err, apperr.ErrForbidden()) {
		t.Fatalf("expected Forbidden, got %v", err)
	}
}

func TestUpdateServiceFields(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "a@example.com")

	workspace, err := f.workspaces.Create(ctx, owner.ID, CreateWorkspaceInput{Name: "Mine"})
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}
	service, err := f.services.Create(ctx, workspace.ID, owner.ID, CreateServiceInput{Name: "api", BaseURL: "https://api.example.com"})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}

	updated, err := f.services.Update(ctx, service.ID, workspace.ID, owner.ID, UpdateServiceInput{
		Name:                  strPtr("api-v2"),
		DefaultTimeoutSeconds: intPtr(60),
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "api-v2" || updated.DefaultTimeoutSeconds != 60 {
		t.Fatalf("unexpected update result: %+v", updated)
	}
	if updated.BaseURL != "https://api.example.com" {
		t.Fatalf("untouched field changed: %q", updated.BaseURL)
	}
}

func TestDeleteServiceCascadesToEndpoints(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	owner := f.user(t, "a@example.com")

	workspace, err := f.workspaces.Create(ctx, owner.ID, CreateWorkspaceInput{Name: "Mine"})
	if err != nil {
		t.Fatalf("create workspace: %v", err)
	}
	service, err := f.services.Create(ctx, workspace.ID, owner.ID, CreateServiceInput{Name: "api", BaseURL: "https://api.example.com"})
	if err != nil {
		t.Fatalf("create service: %v", err)
	}
	endpoint, err := f.endpoints.Create(ctx, workspace.ID, service.ID, owner.ID, CreateEndpointInput{Name: "health", Route: "/health"})
	if err != nil {
		t.Fatalf("create endpoint: %v", err)
	}

	if err := f.services.Delete(ctx, service.ID, workspace.ID, owner.ID); err != nil {
		t.Fatalf("delete service: %v", err)
	}

	// The chain breaks at the service level, so the endpoint is unreachable
	// even though the delete never addressed it directly.
	_, err = f.endpoints.Get(ctx, endpoint.ID, service.ID, workspace.ID, owner.ID)
	if !errors.Is(err, apperr.ErrServiceNotFound()) {
		t.Fatalf("expected ServiceNotFound, got %v", err)
	}

	listed, err := f.services.List(ctx, workspace.ID, owner.ID)
	if err != nil {
		t.Fatalf("list services: %v", err)
	}
	if len(listed) != 0 {
		t.Fatalf("expected no active services, got %d", len(listed))
	}
}
