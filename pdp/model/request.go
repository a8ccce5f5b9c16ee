package model

import (
	"time"

	"github.com/dev-mohitbeniwal/community/api/model"
)

// Capability names the question asked of the decision point.
type Capability string

const (
	CapabilityPrivileged        Capability = "privileged"
	CapabilityOwner             Capability = "owner"
	CapabilityOwnerOrPrivileged Capability = "owner_or_privileged"
)

type AccessRequest struct {
	Actor      *model.Actor `json:"actor"`
	Capability Capability   `json:"capability"`
	Resource   Resource     `json:"resource"`
	Timestamp  time.Time    `json:"timestamp"`
}

// Resource identifies the record an access request is about. Owner is the
// stored requester/creator/owner foreign key, zero when not applicable.
type Resource struct {
	Type  string `json:"type"`
	ID    uint   `json:"id"`
	Owner uint   `json:"owner_id,omitempty"`
}

func (r Resource) OwnerID() uint { return r.Owner }

// NewResource describes an owned record for an access request.
func NewResource(resourceType string, id uint, owned model.Owned) Resource {
	r := Resource{Type: resourceType, ID: id}
	if owned != nil {
		r.Owner = owned.OwnerID()
	}
	return r
}
