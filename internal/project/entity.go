// AngelaMos | 2026
// entity.go

package project

import (
	"time"
)

type Project struct {
	ID             int64     `db:"project_id"`
	ClientUsername string    `db:"client_username"`
	Name           string    `db:"name"`
	Status         string    `db:"status"`
	Milestone      string    `db:"milestone"`
	LastUpdated    time.Time `db:"last_updated"`
}
