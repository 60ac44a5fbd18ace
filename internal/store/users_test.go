package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/aitoolhub/aitoolhub/internal/store"
	"github.com/aitoolhub/aitoolhub/internal/testutil"
)

func newUserTestEnv(t *testing.T) *store.UserStore {
	t.Helper()
	return store.NewUserStore(testutil.NewTestDB(t))
}

func TestUserStore_SignUpAndAuthenticate(t *testing.T) {
	us := newUserTestEnv(t)
	ctx := context.Background()

	u, err := us.SignUp(ctx, "User@Example.com", "hunter22", "Test User", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if u.Email != "user@example.com" {
		t.Errorf("email = %q, want lowercased", u.Email)
	}
	if u.Role != store.RoleUser {
		t.Errorf("role = %q, want user", u.Role)
	}

	got, err := us.Authenticate(ctx, "user@example.com", "hunter22")
	if err != nil {
		t.Fatalf("Authenticate: %v", err)
	}
	if got.ID != u.ID {
		t.Errorf("authenticated a different account: %q vs %q", got.ID, u.ID)
	}
}

func TestUserStore_SignUp_EmailTaken(t *testing.T) {
	us := newUserTestEnv(t)
	ctx := context.Background()

	if _, err := us.SignUp(ctx, "user@example.com", "hunter22", "", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	_, err := us.SignUp(ctx, "USER@example.com", "other", "", "")
	if !errors.Is(err, store.ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestUserStore_SignUp_DefaultDisplayName(t *testing.T) {
	us := newUserTestEnv(t)

	u, err := us.SignUp(context.Background(), "jane@example.com", "hunter22", "", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if u.DisplayName != "jane" {
		t.Errorf("display name = %q, want the email local part", u.DisplayName)
	}
}

func TestUserStore_Authenticate_WrongPassword(t *testing.T) {
	us := newUserTestEnv(t)
	ctx := context.Background()

	if _, err := us.SignUp(ctx, "user@example.com", "hunter22", "", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	_, err := us.Authenticate(ctx, "user@example.com", "wrong")
	if !errors.Is(err, store.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUserStore_Authenticate_UnknownEmail(t *testing.T) {
	us := newUserTestEnv(t)

	_, err := us.Authenticate(context.Background(), "nobody@example.com", "hunter22")
	if !errors.Is(err, store.ErrInvalidCredentials) {
		t.Errorf("err = %v, want ErrInvalidCredentials", err)
	}
}

func TestUserStore_AdminEmailBootstrap(t *testing.T) {
	us := newUserTestEnv(t)
	ctx := context.Background()

	admin, err := us.SignUp(ctx, "admin@example.com", "hunter22", "", "admin@example.com")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if !admin.IsAdmin() {
		t.Error("expected the configured admin email to bootstrap as admin")
	}

	regular, err := us.SignUp(ctx, "user@example.com", "hunter22", "", "admin@example.com")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if regular.IsAdmin() {
		t.Error("other accounts must not bootstrap as admin")
	}
}

func TestUserStore_UpsertOIDC_CreateThenUpdate(t *testing.T) {
	us := newUserTestEnv(t)
	ctx := context.Background()

	first, err := us.UpsertOIDC(ctx, "okta", "sub1", "sso@example.com", "SSO User", "")
	if err != nil {
		t.Fatalf("first UpsertOIDC: %v", err)
	}

	second, err := us.UpsertOIDC(ctx, "okta", "sub1", "sso@example.com", "Renamed", "")
	if err != nil {
		t.Fatalf("second UpsertOIDC: %v", err)
	}
	if second.ID != first.ID {
		t.Errorf("expected the same account, got %q and %q", first.ID, second.ID)
	}
	if second.DisplayName != "Renamed" {
		t.Errorf("display name = %q, want the refreshed claim value", second.DisplayName)
	}
}

func TestUserStore_UpsertOIDC_KeepsAdminRole(t *testing.T) {
	us := newUserTestEnv(t)
	ctx := context.Background()

	u, err := us.UpsertOIDC(ctx, "okta", "sub1", "sso@example.com", "SSO User", "")
	if err != nil {
		t.Fatalf("UpsertOIDC: %v", err)
	}
	if _, err := us.UpdateRole(ctx, u.ID, store.RoleAdmin); err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}

	again, err := us.UpsertOIDC(ctx, "okta", "sub1", "sso@example.com", "SSO User", "")
	if err != nil {
		t.Fatalf("UpsertOIDC: %v", err)
	}
	if !again.IsAdmin() {
		t.Error("a returning SSO login must keep the admin-assigned role")
	}
}

func TestUserStore_UpdateRole(t *testing.T) {
	us := newUserTestEnv(t)
	ctx := context.Background()

	u, err := us.SignUp(ctx, "user@example.com", "hunter22", "", "")
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	updated, err := us.UpdateRole(ctx, u.ID, store.RoleAdmin)
	if err != nil {
		t.Fatalf("UpdateRole: %v", err)
	}
	if !updated.IsAdmin() {
		t.Errorf("role = %q, want admin", updated.Role)
	}
}

func TestUserStore_ListAllAndCount(t *testing.T) {
	us := newUserTestEnv(t)
	ctx := context.Background()

	if _, err := us.SignUp(ctx, "b@example.com", "hunter22", "Bea", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if _, err := us.SignUp(ctx, "a@example.com", "hunter22", "Ada", ""); err != nil {
		t.Fatalf("SignUp: %v", err)
	}

	users, err := us.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(users) != 2 || users[0].DisplayName != "Ada" {
		t.Errorf("users = %d starting with %q, want 2 ordered by display name", len(users), users[0].DisplayName)
	}

	n, err := us.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if n != 2 {
		t.Errorf("count = %d, want 2", n)
	}
}
