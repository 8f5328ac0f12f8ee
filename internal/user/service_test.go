// AngelaMos | 2026
// service_test.go

package user

import (
	"context"
	"errors"
	"testing"

	"github.com/carterperez-dev/client-portal/internal/core"
)

type stubUserRepo struct {
	byUsername map[string]*User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byUsername: make(map[string]*User)}
}

func (r *stubUserRepo) GetByUsername(
	_ context.Context,
	username string,
) (*User, error) {
	u, ok := r.byUsername[username]
	if !ok {
		return nil, core.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) Create(_ context.Context, user *User) error {
	if _, exists := r.byUsername[user.Username]; exists {
		return core.ErrDuplicateKey
	}
	clone := *user
	r.byUsername[user.Username] = &clone
	return nil
}

func (r *stubUserRepo) List(_ context.Context) ([]User, error) {
	out := make([]User, 0, len(r.byUsername))
	for _, u := range r.byUsername {
		out = append(out, *u)
	}
	return out, nil
}

func TestService_Provision_HashesPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewService(repo)

	created, err := svc.Provision(context.Background(), "client2", "s3cret", RoleClient)
	if err != nil {
		t.Fatalf("Provision returned error: %v", err)
	}
	if created.PasswordHash == "s3cret" {
		t.Fatalf("password stored in plaintext")
	}

	ok, err := core.VerifyPassword("s3cret", created.PasswordHash)
	if err != nil {
		t.Fatalf("VerifyPassword: %v", err)
	}
	if !ok {
		t.Fatalf("stored hash does not verify against the password")
	}
}

func TestService_Provision_InvalidRole(t *testing.T) {
	svc := NewService(newStubUserRepo())

	if _, err := svc.Provision(context.Background(), "x", "pw", "owner"); !errors.Is(err, core.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown role, got %v", err)
	}
}

func TestService_Provision_Duplicate(t *testing.T) {
	svc := NewService(newStubUserRepo())
	ctx := context.Background()

	if _, err := svc.Provision(ctx, "client2", "pw", RoleClient); err != nil {
		t.Fatalf("first Provision: %v", err)
	}
	if _, err := svc.Provision(ctx, "client2", "pw2", RoleClient); !errors.Is(err, core.ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
}

func TestService_GetByUsername_MapsToIdentity(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.Provision(ctx, "client1", "pass123", RoleClient); err != nil {
		t.Fatalf("Provision: %v", err)
	}

	identity, err := svc.GetByUsername(ctx, "client1")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if identity.Username != "client1" || identity.Role != RoleClient {
		t.Fatalf("unexpected identity: %+v", identity)
	}
	if identity.PasswordHash == "" {
		t.Fatalf("identity is missing the password hash")
	}

	if _, err := svc.GetByUsername(ctx, "ghost"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
