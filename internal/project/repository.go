// AngelaMos | 2026
// repository.go

package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/carterperez-dev/client-portal/internal/core"
)

type Repository interface {
	ListByClient(ctx context.Context, username string) ([]Project, error)
	GetByID(ctx context.Context, projectID int64) (*Project, error)
}

type repository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &repository{db: db}
}

func (r *repository) ListByClient(
	ctx context.Context,
	username string,
) ([]Project, error) {
	query := `
		SELECT project_id, client_username, name, status, milestone, last_updated
		FROM projects
		WHERE client_username = $1
		ORDER BY last_updated DESC, project_id`

	var projects []Project
	if err := r.db.SelectContext(ctx, &projects, query, username); err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	return projects, nil
}

func (r *repository) GetByID(
	ctx context.Context,
	projectID int64,
) (*Project, error) {
	query := `
		SELECT project_id, client_username, name, status, milestone, last_updated
		FROM projects
		WHERE project_id = $1`

	var p Project
	err := r.db.GetContext(ctx, &p, query, projectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("get project: %w", core.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}

	return &p, nil
}
