// AngelaMos | 2026
// dto.go

package message

import (
	"time"
)

type PostMessageRequest struct {
	Content string `json:"content" validate:"required"`
}

type MessageResponse struct {
	ID        int64     `json:"id"`
	ProjectID int64     `json:"project_id"`
	Sender    string    `json:"sender"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

type MessageListResponse struct {
	Messages []MessageResponse `json:"messages"`
	Count    int               `json:"count"`
}

func ToMessageResponse(m *Message) MessageResponse {
	return MessageResponse{
		ID:        m.ID,
		ProjectID: m.ProjectID,
		Sender:    m.Sender,
		Content:   m.Content,
		Timestamp: m.SentAt,
	}
}

func ToMessageListResponse(messages []Message) MessageListResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		responses = append(responses, ToMessageResponse(&messages[i]))
	}
	return MessageListResponse{
		Messages: responses,
		Count:    len(responses),
	}
}
