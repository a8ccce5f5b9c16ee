// api/audit/model.go
package audit

import (
	"encoding/json"
	"time"
)

// AuditLog records one attempted action, allowed or not.
type AuditLog struct {
	ID            string          `json:"id"`
	Timestamp     time.Time       `json:"timestamp"`
	RequestID     string          `json:"request_id,omitempty"`
	UserID        uint            `json:"user_id"`
	ActorRole     string          `json:"actor_role"`
	Action        string          `json:"action"`
	ResourceType  string          `json:"resource_type"`
	ResourceID    uint            `json:"resource_id"`
	FromStatus    string          `json:"from_status,omitempty"`
	ToStatus      string          `json:"to_status,omitempty"`
	AccessGranted bool            `json:"access_granted"`
	Reason        string          `json:"reason,omitempty"`
	Error         string          `json:"error,omitempty"`
	ChangeDetails json.RawMessage `json:"change_details,omitempty"`
}

// Query narrows a log search. Zero values are ignored.
type Query struct {
	From         time.Time
	To           time.Time
	UserID       uint
	ResourceType string
	ResourceID   uint
	Action       string
	Limit        int
	Offset       int
}
