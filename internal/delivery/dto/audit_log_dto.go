package dto

import "time"

type AuditLogResponse struct {
	ID        int64                  `json:"id"`
	RequestID string                 `json:"requestId"`
	Action    string                 `json:"action"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	CreatedAt time.Time              `json:"createdAt"`
}
