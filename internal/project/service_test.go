// AngelaMos | 2026
// service_test.go

package project

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/carterperez-dev/client-portal/internal/core"
)

type stubProjectRepo struct {
	byID    map[int64]*Project
	listErr error
}

func newStubProjectRepo() *stubProjectRepo {
	return &stubProjectRepo{byID: make(map[int64]*Project)}
}

func (r *stubProjectRepo) ListByClient(
	_ context.Context,
	username string,
) ([]Project, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	var out []Project
	for _, p := range r.byID {
		if p.ClientUsername == username {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProjectRepo) GetByID(
	_ context.Context,
	projectID int64,
) (*Project, error) {
	p, ok := r.byID[projectID]
	if !ok {
		return nil, core.ErrNotFound
	}
	clone := *p
	return &clone, nil
}

func seededRepo() *stubProjectRepo {
	repo := newStubProjectRepo()
	repo.byID[1] = &Project{
		ID:             1,
		ClientUsername: "client1",
		Name:           "Roofing Project",
		Status:         "In Progress",
		Milestone:      "Foundation Complete",
		LastUpdated:    time.Date(2025, 4, 20, 0, 0, 0, 0, time.UTC),
	}
	return repo
}

func TestService_ListForClient_ScopedToOwner(t *testing.T) {
	svc := NewService(seededRepo())

	projects, err := svc.ListForClient(context.Background(), "client1")
	if err != nil {
		t.Fatalf("ListForClient returned error: %v", err)
	}
	if len(projects) != 1 || projects[0].Name != "Roofing Project" {
		t.Fatalf("unexpected projects: %+v", projects)
	}
}

func TestService_ListForClient_EmptyNotNil(t *testing.T) {
	svc := NewService(seededRepo())

	projects, err := svc.ListForClient(context.Background(), "client2")
	if err != nil {
		t.Fatalf("ListForClient returned error: %v", err)
	}
	if projects == nil {
		t.Fatalf("expected empty slice, got nil")
	}
	if len(projects) != 0 {
		t.Fatalf("expected no projects for a foreign client, got %d", len(projects))
	}
}

func TestService_AuthorizeAccess(t *testing.T) {
	svc := NewService(seededRepo())
	ctx := context.Background()

	if err := svc.AuthorizeAccess(ctx, 1, "client1"); err != nil {
		t.Fatalf("owner rejected: %v", err)
	}

	if err := svc.AuthorizeAccess(ctx, 1, "client2"); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign client, got %v", err)
	}

	if err := svc.AuthorizeAccess(ctx, 99, "client1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing project, got %v", err)
	}
}
