// AngelaMos | 2026
// entity.go

package message

import (
	"time"
)

// Message is an append-only record: rows are only ever inserted, never
// updated or deleted.
type Message struct {
	ID        int64     `db:"message_id"`
	ProjectID int64     `db:"project_id"`
	Sender    string    `db:"sender"`
	Content   string    `db:"content"`
	SentAt    time.Time `db:"sent_at"`
}
