package workflow

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
)

var ComplaintMachine = NewMachine("complaint", map[model.ComplaintStatus][]model.ComplaintStatus{
	model.ComplaintSubmitted:  {model.ComplaintProcessing, model.ComplaintRejected},
	model.ComplaintProcessing: {model.ComplaintResolved, model.ComplaintRejected},
})

const minRemarkLength = 5

// NewComplaint builds a submitted complaint. Staff do not file complaints.
func NewComplaint(actor *model.Actor, req *model.CreateComplaintRequest) (*model.Complaint, error) {
	if actor == nil || engine.IsPrivileged(actor) {
		return nil, echo_errors.ErrNotAuthorized
	}
	if !IsComplaintType(req.Type) {
		return nil, fmt.Errorf("%w: unknown complaint type %q", echo_errors.ErrInvalidComplaintData, req.Type)
	}
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, fmt.Errorf("%w: title and content are required", echo_errors.ErrInvalidComplaintData)
	}
	return &model.Complaint{
		UserID:    actor.ID,
		HouseID:   req.HouseID,
		Type:      req.Type,
		Title:     req.Title,
		Content:   req.Content,
		ImageURLs: req.ImageURLs,
		Status:    model.ComplaintSubmitted,
	}, nil
}

func IsComplaintType(value string) bool {
	for _, t := range model.ComplaintTypes {
		if t.Value == value {
			return true
		}
	}
	return false
}

// ProcessComplaint is the staff handling step. Closing a complaint, either
// way, needs a remark of at least five characters.
func ProcessComplaint(actor *model.Actor, complaint *model.Complaint, target model.ComplaintStatus, remark string, now time.Time) (bool, error) {
	if !engine.IsPrivileged(actor) {
		return false, echo_errors.ErrNotAuthorized
	}
	if complaint.Status == target {
		return false, nil
	}
	if err := ComplaintMachine.Check(complaint.Status, target); err != nil {
		return false, err
	}

	remark = strings.TrimSpace(remark)
	closing := ComplaintMachine.IsTerminal(target)
	if closing && utf8.RuneCountInString(remark) < minRemarkLength {
		return false, echo_errors.ErrInvalidRemark
	}

	processor := actor.ID
	at := now.UTC()
	complaint.Status = target
	complaint.ProcessorID = &processor
	complaint.ProcessedAt = &at
	if remark != "" {
		complaint.ProcessRemark = remark
	}
	if closing {
		complaint.ResolvedAt = &at
	}
	return true, nil
}

// SupplementComplaint appends to the complaint content while it is open.
func SupplementComplaint(actor *model.Actor, complaint *model.Complaint, text string, now time.Time) (bool, error) {
	if engine.IsPrivileged(actor) || !engine.IsOwnerOf(actor, complaint) {
		return false, echo_errors.ErrNotAuthorized
	}
	if ComplaintMachine.IsTerminal(complaint.Status) {
		return false, fmt.Errorf("%w: complaint is %s", echo_errors.ErrInvalidState, complaint.Status)
	}
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minRemarkLength {
		return false, fmt.Errorf("%w: supplement must be at least %d characters", echo_errors.ErrInvalidComplaintData, minRemarkLength)
	}
	complaint.Content = appendSupplement(complaint.Content, text, now)
	return true, nil
}

// CheckComplaintDeletion allows the filer to withdraw a complaint nobody has
// picked up yet.
func CheckComplaintDeletion(actor *model.Actor, complaint *model.Complaint) error {
	if !engine.IsOwnerOf(actor, complaint) {
		return echo_errors.ErrNotAuthorized
	}
	if complaint.Status != model.ComplaintSubmitted {
		return fmt.Errorf("%w: only submitted complaints can be deleted", echo_errors.ErrInvalidState)
	}
	return nil
}
