package core

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/upcheck-dev/upcheck/internal/auth"
	"github.com/upcheck-dev/upcheck/internal/db"
	"github.com/upcheck-dev/upcheck/internal/models"
	"github.com/upcheck-dev/upcheck/internal/store"
)

// fixture wires the full core against a throwaway in-memory database.
type fixture struct {
	conn       *gorm.DB
	auth       *AuthCore
	workspaces *WorkspaceCore
	services   *ServiceCore
	endpoints  *EndpointCore
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	dsn := fmt.Sprintf("file:core_test_%d?mode=memory&cache=shared", time.Now().UnixNano())
	conn, err := db.Open(dsn)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		t.Fatalf("migrate db: %v", err)
	}

	tokens, err := auth.NewTokenManager("test-secret")
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}

	users := store.NewUserStore(conn)
	workspaces := store.NewWorkspaceStore(conn)
	services := store.NewServiceStore(conn)
	endpoints := store.NewEndpointStore(conn)

	return &fixture{
		conn:       conn,
		auth:       NewAuthCore(users, tokens),
		workspaces: NewWorkspaceCore(workspaces),
		services:   NewServiceCore(services, workspaces),
		endpoints:  NewEndpointCore(endpoints, services, workspaces),
	}
}

func (f *fixture) user(t *testing.T, email string) *models.User {
	t.Helper()

	user := models.User{
		Email:        email,
		PasswordHash: "x",
		FullName:     "Test User",
	}
	if err := f.conn.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	return &user
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }
