package service

import (
	"context"
	"errors"
	"testing"

	"request_desk/internal/common"
	"request_desk/internal/common/security"
	"request_desk/internal/domain/model"
	"request_desk/internal/platform/config"
)

func setupAuth(t *testing.T) (*AuthService, *fakeUserRepo) {
	t.Helper()
	config.Load()
	security.InitJWT()
	repo := newFakeUserRepo()
	return NewAuthService(repo), repo
}

func TestRegister(t *testing.T) {
	svc, repo := setupAuth(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterRequest{
		Name: "Bob", Email: "bob@student.com", Password: "bobpass", Role: model.RoleStudent,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if resp.UserID == 0 {
		t.Error("expected a user id to be assigned")
	}
	if resp.Role != model.RoleStudent {
		t.Errorf("role = %q, want %q", resp.Role, model.RoleStudent)
	}

	stored, err := repo.FindByEmail(ctx, "bob@student.com")
	if err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if stored.HashedPassword == "bobpass" {
		t.Error("password stored in plaintext")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	req := RegisterRequest{Name: "Bob", Email: "bob@student.com", Password: "bobpass", Role: model.RoleStudent}
	if _, err := svc.Register(ctx, req); err != nil {
		t.Fatalf("first Register failed: %v", err)
	}
	_, err := svc.Register(ctx, req)
	if !errors.Is(err, common.ErrConflict) {
		t.Errorf("second Register error = %v, want ErrConflict", err)
	}
}

func TestRegisterValidation(t *testing.T) {
	svc, repo := setupAuth(t)
	ctx := context.Background()

	cases := []RegisterRequest{
		{Email: "a@b.com", Password: "x", Role: model.RoleStudent},      // missing name
		{Name: "A", Password: "x", Role: model.RoleStudent},             // missing email
		{Name: "A", Email: "a@b.com", Role: model.RoleStudent},          // missing password
		{Name: "A", Email: "a@b.com", Password: "x"},                    // missing role
		{Name: "A", Email: "a@b.com", Password: "x", Role: "superuser"}, // unknown role
	}
	for _, req := range cases {
		if _, err := svc.Register(ctx, req); !errors.Is(err, common.ErrBadRequest) {
			t.Errorf("Register(%+v) error = %v, want ErrBadRequest", req, err)
		}
	}
	if any, _ := repo.HasAny(ctx); any {
		t.Error("invalid registrations must not persist users")
	}
}

func TestLogin(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{
		Name: "Alice", Email: "alice@admin.com", Password: "adminpass", Role: model.RoleAdmin,
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	resp, err := svc.Login(ctx, LoginRequest{Email: "alice@admin.com", Password: "adminpass"})
	if err != nil {
		t.Fatalf("Login failed: %v", err)
	}
	if resp.Role != model.RoleAdmin {
		t.Errorf("role = %q, want %q", resp.Role, model.RoleAdmin)
	}
	if resp.Token == "" {
		t.Error("expected a signed token")
	}
}

func TestLoginGenericFailure(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, RegisterRequest{
		Name: "Alice", Email: "alice@admin.com", Password: "adminpass", Role: model.RoleAdmin,
	}); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	_, wrongPassword := svc.Login(ctx, LoginRequest{Email: "alice@admin.com", Password: "nope"})
	_, unknownEmail := svc.Login(ctx, LoginRequest{Email: "ghost@admin.com", Password: "nope"})

	if !errors.Is(wrongPassword, common.ErrUnauthorized) {
		t.Errorf("wrong password error = %v, want ErrUnauthorized", wrongPassword)
	}
	if !errors.Is(unknownEmail, common.ErrUnauthorized) {
		t.Errorf("unknown email error = %v, want ErrUnauthorized", unknownEmail)
	}
	// The two failures must be indistinguishable to the caller.
	if wrongPassword.Error() != unknownEmail.Error() {
		t.Errorf("login failures differ: %q vs %q", wrongPassword, unknownEmail)
	}
}

func TestResolveRole(t *testing.T) {
	svc, _ := setupAuth(t)
	ctx := context.Background()

	resp, err := svc.Register(ctx, RegisterRequest{
		Name: "Bob", Email: "bob@student.com", Password: "bobpass", Role: model.RoleStudent,
	})
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	role, err := svc.ResolveRole(ctx, resp.UserID)
	if err != nil {
		t.Fatalf("ResolveRole failed: %v", err)
	}
	if role != model.RoleStudent {
		t.Errorf("role = %q, want %q", role, model.RoleStudent)
	}

	if _, err := svc.ResolveRole(ctx, 999); !errors.Is(err, common.ErrNotFound) {
		t.Errorf("ResolveRole(999) error = %v, want ErrNotFound", err)
	}
}
