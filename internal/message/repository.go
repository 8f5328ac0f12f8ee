// AngelaMos | 2026
// repository.go

package message

import (
	"context"
	"fmt"

	"github.com/carterperez-dev/client-portal/internal/core"
)

type Repository interface {
	ListByProject(ctx context.Context, projectID int64) ([]Message, error)
	Create(ctx context.Context, msg *Message) error
}

type messageRepository struct {
	db core.DBTX
}

func NewRepository(db core.DBTX) Repository {
	return &messageRepository{db: db}
}

func (r *messageRepository) ListByProject(
	ctx context.Context,
	projectID int64,
) ([]Message, error) {
	query := `
		SELECT message_id, project_id, sender, content, sent_at
		FROM messages
		WHERE project_id = $1
		ORDER BY sent_at ASC, message_id ASC`

	var messages []Message
	if err := r.db.SelectContext(ctx, &messages, query, projectID); err != nil {
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return messages, nil
}

func (r *messageRepository) Create(ctx context.Context, msg *Message) error {
	query := `
		INSERT INTO messages (project_id, sender, content)
		VALUES ($1, $2, $3)
		RETURNING message_id, sent_at`

	err := r.db.QueryRowxContext(
		ctx,
		query,
		msg.ProjectID,
		msg.Sender,
		msg.Content,
	).Scan(&msg.ID, &msg.SentAt)
	if err != nil {
		return fmt.Errorf("creating message: %w", err)
	}
	return nil
}
