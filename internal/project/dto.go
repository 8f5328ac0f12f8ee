// AngelaMos | 2026
// dto.go

package project

import (
	"time"
)

type ProjectResponse struct {
	ID          int64     `json:"project_id"`
	Name        string    `json:"name"`
	Status      string    `json:"status"`
	Milestone   string    `json:"milestone"`
	LastUpdated time.Time `json:"last_updated"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

func ToProjectResponse(p *Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Status:      p.Status,
		Milestone:   p.Milestone,
		LastUpdated: p.LastUpdated,
	}
}

func ToProjectResponseList(projects []Project) []ProjectResponse {
	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, ToProjectResponse(&p))
	}
	return responses
}
