// AngelaMos | 2026
// service_test.go

package message

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/carterperez-dev/client-portal/internal/core"
)

type stubMessageRepo struct {
	byProject map[int64][]Message
	nextID    int64
	createErr error
}

func newStubMessageRepo() *stubMessageRepo {
	return &stubMessageRepo{byProject: make(map[int64][]Message), nextID: 1}
}

func (r *stubMessageRepo) ListByProject(
	_ context.Context,
	projectID int64,
) ([]Message, error) {
	return r.byProject[projectID], nil
}

func (r *stubMessageRepo) Create(_ context.Context, msg *Message) error {
	if r.createErr != nil {
		return r.createErr
	}
	msg.ID = r.nextID
	msg.SentAt = time.Now()
	r.nextID++
	r.byProject[msg.ProjectID] = append(r.byProject[msg.ProjectID], *msg)
	return nil
}

// allowGuard admits a single (project, username) pair.
type allowGuard struct {
	projectID int64
	username  string
}

func (g *allowGuard) AuthorizeAccess(
	_ context.Context,
	projectID int64,
	username string,
) error {
	if projectID != g.projectID {
		return core.ErrNotFound
	}
	if username != g.username {
		return fmt.Errorf("project access: %w", core.ErrForbidden)
	}
	return nil
}

func newTestService() (*Service, *stubMessageRepo) {
	repo := newStubMessageRepo()
	svc := NewService(repo, &allowGuard{projectID: 1, username: "client1"})
	return svc, repo
}

func TestService_Post_And_List(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	msg, err := svc.Post(ctx, 1, "client1", "How is the roof coming along?")
	if err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if msg.Content != "How is the roof coming along?" {
		t.Fatalf("unexpected content: %q", msg.Content)
	}
	if msg.Sender != "client1" {
		t.Fatalf("unexpected sender: %s", msg.Sender)
	}
	if msg.SentAt.IsZero() {
		t.Fatalf("expected a server-side timestamp")
	}

	messages, err := svc.ListForProject(ctx, 1, "client1")
	if err != nil {
		t.Fatalf("ListForProject returned error: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
}

func TestService_Post_StoresContentVerbatim(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	// Surrounding whitespace is valid content and must survive the
	// round trip untouched.
	content := "  padded update  "
	msg, err := svc.Post(ctx, 1, "client1", content)
	if err != nil {
		t.Fatalf("Post returned error: %v", err)
	}
	if msg.Content != content {
		t.Fatalf("content altered: sent %q, stored %q", content, msg.Content)
	}

	stored := repo.byProject[1]
	if len(stored) != 1 || stored[0].Content != content {
		t.Fatalf("persisted content altered: %q", stored[0].Content)
	}
}

func TestService_Post_RejectsEmptyContent(t *testing.T) {
	svc, repo := newTestService()
	ctx := context.Background()

	for _, content := range []string{"", "   ", "\n\t"} {
		if _, err := svc.Post(ctx, 1, "client1", content); !errors.Is(err, core.ErrInvalidInput) {
			t.Fatalf("content %q: expected ErrInvalidInput, got %v", content, err)
		}
	}
	if len(repo.byProject[1]) != 0 {
		t.Fatalf("empty messages must not be persisted")
	}
}

func TestService_OwnershipEnforced(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	if _, err := svc.ListForProject(ctx, 1, "client2"); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign client, got %v", err)
	}
	if _, err := svc.Post(ctx, 1, "client2", "hi"); !errors.Is(err, core.ErrForbidden) {
		t.Fatalf("expected ErrForbidden for foreign client post, got %v", err)
	}
	if _, err := svc.ListForProject(ctx, 42, "client1"); !errors.Is(err, core.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for missing project, got %v", err)
	}
}

func TestService_ListForProject_EmptyNotNil(t *testing.T) {
	svc, _ := newTestService()

	messages, err := svc.ListForProject(context.Background(), 1, "client1")
	if err != nil {
		t.Fatalf("ListForProject returned error: %v", err)
	}
	if messages == nil {
		t.Fatalf("expected empty slice, got nil")
	}
}
