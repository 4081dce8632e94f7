package store

import (
	"context"
	"testing"
)

func TestServiceLookupIsWorkspaceScoped(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	services := NewServiceStore(conn)

	owner := seedUser(t, conn, "owner@example.com")
	workspaceA := seedWorkspace(t, conn, owner.ID, "alpha")
	workspaceB := seedWorkspace(t, conn, owner.ID, "beta")
	service := seedService(t, conn, workspaceA.ID, "api")

	found, err := services.FindByID(ctx, service.ID, workspaceA.ID)
	if err != nil {
		t.Fatalf("find in own workspace: %v", err)
	}
	if found == nil {
		t.Fatal("expected service under its own workspace")
	}

	// Same id through the wrong workspace looks exactly like a missing row.
	found, err = services.FindByID(ctx, service.ID, workspaceB.ID)
	if err != nil {
		t.Fatalf("find in wrong workspace: %v", err)
	}
	if found != nil {
		t.Fatal("expected cross-workspace lookup to find nothing")
	}
}

func TestEndpointLookupIsServiceScoped(t *testing.T) {
	conn := openTestDB(t)
	ctx := context.Background()
	endpoints := NewEndpointStore(conn)

	owner := seedUser(t, conn, "owner@example.com")
	workspace := seedWorkspace(t, conn, owner.ID, "acme")
	serviceA := seedService(t, conn, workspace.ID, "api")
	serviceB := seedService(t, conn, workspace.ID, "billing")
	endpoint := seedEndpoint(t, conn, workspace.ID, serviceA.ID, "health")

	found, err := endpoints.FindByID(ctx, endpoint.ID, serviceA.ID)
	if err != nil {
		t.Fatalf("find under own service: %v", err)
	}
	if found == nil {
		t.Fatal("expected endpoint under its own service")
	}

	found, err = endpoints.FindByID(ctx, endpoint.ID, serviceB.ID)
	if err != nil {
		t.Fatalf("find under wrong service: %v", err)
	}
	if found != nil {
		t.Fatal("expected cross-service lookup to find nothing")
	}
}
