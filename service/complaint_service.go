// api/service/complaint_service.go
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/dev-mohitbeniwal/community/api/dao"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
	pdp_model "github.com/dev-mohitbeniwal/community/api/pdp/model"
	"github.com/dev-mohitbeniwal/community/api/workflow"
)

// Submitted complaints older than this are reported as overdue.
const complaintPendingThreshold = 3 * 24 * time.Hour

// IComplaintService handles resident complaints.
type IComplaintService interface {
	CreateComplaint(ctx context.Context, actor *model.Actor, req model.CreateComplaintRequest) (*model.Complaint, error)
	GetComplaint(ctx context.Context, actor *model.Actor, complaintID uint) (*model.Complaint, error)
	ListComplaints(ctx context.Context, actor *model.Actor, filter model.ComplaintFilter, limit, offset int) ([]model.Complaint, error)
	DeleteComplaint(ctx context.Context, actor *model.Actor, complaintID uint) error
	ProcessComplaint(ctx context.Context, actor *model.Actor, complaintID uint, req model.ProcessComplaintRequest) (*model.Complaint, error)
	SupplementComplaint(ctx context.Context, actor *model.Actor, complaintID uint, text string) (*model.Complaint, error)
	Statistics(ctx context.Context, actor *model.Actor) (*model.ComplaintStatistics, error)
	Types() []model.ComplaintType
}

type ComplaintStore interface {
	CreateComplaint(ctx context.Context, complaint *model.Complaint) error
	GetComplaint(ctx context.Context, complaintID uint) (*model.Complaint, error)
	ListComplaints(ctx context.Context, filter model.ComplaintFilter, limit, offset int) ([]model.Complaint, error)
	CountComplaints(ctx context.Context, filter model.ComplaintFilter) (int64, error)
	CountSubmittedBefore(ctx context.Context, cutoff time.Time) (int64, error)
	TransitionComplaint(ctx context.Context, complaintID uint, mutate dao.Mutation[model.Complaint]) (*model.Complaint, bool, error)
	DeleteComplaint(ctx context.Context, complaintID uint, check func(*model.Complaint) error) (*model.Complaint, error)
}

var _ ComplaintStore = (*dao.ComplaintDAO)(nil)

type ComplaintService struct {
	store  ComplaintStore
	houses HouseAccess
	Common
}

var _ IComplaintService = &ComplaintService{}

func NewComplaintService(store ComplaintStore, houses HouseAccess, common Common) *ComplaintService {
	return &ComplaintService{store: store, houses: houses, Common: common}
}

func (s *ComplaintService) CreateComplaint(ctx context.Context, actor *model.Actor, req model.CreateComplaintRequest) (*model.Complaint, error) {
	complaint, err := workflow.NewComplaint(actor, &req)
	if err != nil {
		return nil, err
	}
	if err := s.requireHouseAccess(ctx, s.houses, actor, req.HouseID); err != nil {
		return nil, err
	}
	if err := s.store.CreateComplaint(ctx, complaint); err != nil {
		return nil, fmt.Errorf("failed to create complaint: %w", err)
	}
	logger.Info("Complaint submitted", zap.Uint("complaintID", complaint.ID), zap.Uint("userID", actor.ID))
	return complaint, nil
}

func (s *ComplaintService) GetComplaint(ctx context.Context, actor *model.Actor, complaintID uint) (*model.Complaint, error) {
	complaint, err := s.store.GetComplaint(ctx, complaintID)
	if err != nil {
		return nil, err
	}
	resource := pdp_model.NewResource("complaint", complaint.ID, complaint)
	if err := s.authorize(ctx, actor, pdp_model.CapabilityOwnerOrPrivileged, resource, "read"); err != nil {
		return nil, err
	}
	return complaint, nil
}

func (s *ComplaintService) ListComplaints(ctx context.Context, actor *model.Actor, filter model.ComplaintFilter, limit, offset int) ([]model.Complaint, error) {
	if scope := ownScope(actor); scope != nil {
		filter.UserID = scope
	}
	return s.store.ListComplaints(ctx, filter, limit, offset)
}

// DeleteComplaint withdraws a complaint. The owner check and the status check
// run against the locked row.
func (s *ComplaintService) DeleteComplaint(ctx context.Context, actor *model.Actor, complaintID uint) error {
	res := workflow.Result{Entity: "complaint", ID: complaintID, Action: "delete", To: "deleted"}
	_, err := s.store.DeleteComplaint(ctx, complaintID, func(c *model.Complaint) error {
		res.From = string(c.Status)
		return workflow.CheckComplaintDeletion(actor, c)
	})
	s.record(ctx, actor, res, err == nil, err)
	if err != nil {
		return fmt.Errorf("failed to delete complaint %d: %w", complaintID, err)
	}
	return nil
}

func (s *ComplaintService) ProcessComplaint(ctx context.Context, actor *model.Actor, complaintID uint, req model.ProcessComplaintRequest) (*model.Complaint, error) {
	res := workflow.Result{Entity: "complaint", ID: complaintID, Action: "process", To: string(req.Status)}
	complaint, changed, err := s.store.TransitionComplaint(ctx, complaintID, func(c *model.Complaint) (bool, error) {
		res.From = string(c.Status)
		return workflow.ProcessComplaint(actor, c, req.Status, req.Remark, s.now())
	})
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to process complaint %d: %w", complaintID, err)
	}
	if changed {
		content := fmt.Sprintf("Your complaint %q is now %s.", complaint.Title, complaint.Status)
		if complaint.ProcessRemark != "" {
			content += " Remark: " + complaint.ProcessRemark
		}
		s.notify(ctx, model.NotificationRequest{
			UserIDs:   []uint{complaint.UserID},
			Title:     "Complaint " + string(complaint.Status),
			Content:   content,
			Type:      model.NotificationComplaint,
			RelatedID: complaint.ID,
		})
	}
	return complaint, nil
}

func (s *ComplaintService) SupplementComplaint(ctx context.Context, actor *model.Actor, complaintID uint, text string) (*model.Complaint, error) {
	res := workflow.Result{Entity: "complaint", ID: complaintID, Action: "supplement"}
	complaint, changed, err := s.store.TransitionComplaint(ctx, complaintID, func(c *model.Complaint) (bool, error) {
		res.From = string(c.Status)
		res.To = res.From
		return workflow.SupplementComplaint(actor, c, text, s.now())
	})
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to supplement complaint %d: %w", complaintID, err)
	}
	return complaint, nil
}

// Statistics counts complaints per status. Privileged actors see every
// complaint plus the number left submitted for more than three days.
func (s *ComplaintService) Statistics(ctx context.Context, actor *model.Actor) (*model.ComplaintStatistics, error) {
	base := model.ComplaintFilter{UserID: ownScope(actor)}
	stats := &model.ComplaintStatistics{}

	targets := map[model.ComplaintStatus]*int64{
		"":                        &stats.Total,
		model.ComplaintSubmitted:  &stats.Submitted,
		model.ComplaintProcessing: &stats.Processing,
		model.ComplaintResolved:   &stats.Resolved,
		model.ComplaintRejected:   &stats.Rejected,
	}

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	for status, dest := range targets {
		status, dest := status, dest
		g.Go(func() error {
			filter := base
			filter.Status = status
			n, err := s.store.CountComplaints(gctx, filter)
			if err != nil {
				return err
			}
			mu.Lock()
			*dest = n
			mu.Unlock()
			return nil
		})
	}
	if engine.IsPrivileged(actor) {
		g.Go(func() error {
			n, err := s.store.CountSubmittedBefore(gctx, s.now().Add(-complaintPendingThreshold))
			if err != nil {
				return err
			}
			mu.Lock()
			stats.PendingOver3Days = &n
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to compute complaint statistics: %w", err)
	}
	return stats, nil
}

func (s *ComplaintService) Types() []model.ComplaintType {
	return append([]model.ComplaintType(nil), model.ComplaintTypes...)
}
