package workflow

import (
	"fmt"
	"time"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
)

// decision points at the review fields shared by bindings and merchant
// applications.
type decision[S ~string] struct {
	status       *S
	approverID   **uint
	approvedAt   **time.Time
	rejectReason *string
}

// decide moves a reviewed record into target. Repeating the same decision is
// a no-op only for the actor who made it; everyone else sees ErrInvalidState
// and the recorded reviewer is never overwritten.
func decide[S ~string](m Machine[S], actor *model.Actor, d decision[S], target S, reason string, now time.Time) (bool, error) {
	if !engine.IsPrivileged(actor) {
		return false, echo_errors.ErrNotAuthorized
	}

	current := *d.status
	if current == target {
		if *d.approverID != nil && **d.approverID == actor.ID {
			return false, nil
		}
		return false, fmt.Errorf("%w: already %s by another reviewer", echo_errors.ErrInvalidState, current)
	}
	if err := m.Check(current, target); err != nil {
		return false, err
	}

	reviewer := actor.ID
	at := now.UTC()
	*d.status = target
	*d.approverID = &reviewer
	*d.approvedAt = &at
	if reason != "" {
		*d.rejectReason = reason
	}
	return true, nil
}
