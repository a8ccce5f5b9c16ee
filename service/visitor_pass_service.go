// api/service/visitor_pass_service.go
package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/dev-mohitbeniwal/community/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	logger "github.com/dev-mohitbeniwal/community/api/logging"
	"github.com/dev-mohitbeniwal/community/api/model"
	pdp_model "github.com/dev-mohitbeniwal/community/api/pdp/model"
	helper_util "github.com/dev-mohitbeniwal/community/api/util/helper"
	"github.com/dev-mohitbeniwal/community/api/workflow"
)

// IVisitorPassService issues visitor passes and checks them at the gate.
type IVisitorPassService interface {
	CreatePass(ctx context.Context, actor *model.Actor, req model.CreateVisitorPassRequest) (*model.VisitorPass, error)
	GetPass(ctx context.Context, actor *model.Actor, passID uint) (*model.VisitorPass, error)
	ListPasses(ctx context.Context, actor *model.Actor, status model.PassStatus, limit, offset int) ([]model.VisitorPass, error)
	CancelPass(ctx context.Context, actor *model.Actor, passID uint) (*model.VisitorPass, error)
	UsePass(ctx context.Context, actor *model.Actor, passCode string) (*model.VisitorPass, error)
}

type VisitorPassStore interface {
	CreatePass(ctx context.Context, pass *model.VisitorPass) error
	GetPass(ctx context.Context, passID uint) (*model.VisitorPass, error)
	ListPasses(ctx context.Context, filter model.VisitorPassFilter, limit, offset int) ([]model.VisitorPass, error)
	TransitionPass(ctx context.Context, passID uint, mutate dao.Mutation[model.VisitorPass]) (*model.VisitorPass, bool, error)
	TransitionPassByCode(ctx context.Context, passCode string, mutate dao.Mutation[model.VisitorPass]) (*model.VisitorPass, bool, error)
}

var _ VisitorPassStore = (*dao.VisitorPassDAO)(nil)

type VisitorPassService struct {
	store   VisitorPassStore
	houses  HouseAccess
	newCode func() string
	Common
}

var _ IVisitorPassService = &VisitorPassService{}

func NewVisitorPassService(store VisitorPassStore, houses HouseAccess, common Common) *VisitorPassService {
	return &VisitorPassService{store: store, houses: houses, newCode: helper_util.NewPassCode, Common: common}
}

// present reports the status as seen now without persisting it.
func (s *VisitorPassService) present(pass *model.VisitorPass) *model.VisitorPass {
	pass.Status = workflow.EffectiveStatus(pass, s.now())
	return pass
}

func (s *VisitorPassService) CreatePass(ctx context.Context, actor *model.Actor, req model.CreateVisitorPassRequest) (*model.VisitorPass, error) {
	pass, err := workflow.NewVisitorPass(actor, &req, s.newCode(), s.now())
	if err != nil {
		return nil, err
	}
	if err := s.requireHouseAccess(ctx, s.houses, actor, req.HouseID); err != nil {
		return nil, err
	}
	if err := s.store.CreatePass(ctx, pass); err != nil {
		return nil, fmt.Errorf("failed to create visitor pass: %w", err)
	}
	logger.Info("Visitor pass issued", zap.Uint("passID", pass.ID), zap.Uint("userID", actor.ID))
	return s.present(pass), nil
}

func (s *VisitorPassService) GetPass(ctx context.Context, actor *model.Actor, passID uint) (*model.VisitorPass, error) {
	pass, err := s.store.GetPass(ctx, passID)
	if err != nil {
		return nil, err
	}
	resource := pdp_model.NewResource("visitor_pass", pass.ID, pass)
	if err := s.authorize(ctx, actor, pdp_model.CapabilityOwnerOrPrivileged, resource, "read"); err != nil {
		return nil, err
	}
	return s.present(pass), nil
}

// ListPasses filters on the effective status: expired passes are stored as
// active.
func (s *VisitorPassService) ListPasses(ctx context.Context, actor *model.Actor, status model.PassStatus, limit, offset int) ([]model.VisitorPass, error) {
	filter := model.VisitorPassFilter{UserID: ownScope(actor), Status: status, At: s.now()}
	passes, err := s.store.ListPasses(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}
	for i := range passes {
		s.present(&passes[i])
	}
	return passes, nil
}

func (s *VisitorPassService) CancelPass(ctx context.Context, actor *model.Actor, passID uint) (*model.VisitorPass, error) {
	res := workflow.Result{Entity: "visitor_pass", ID: passID, Action: "cancel", To: string(model.PassCancelled)}
	pass, changed, err := s.store.TransitionPass(ctx, passID, func(p *model.VisitorPass) (bool, error) {
		res.From = string(workflow.EffectiveStatus(p, s.now()))
		return workflow.CancelPass(actor, p, s.now())
	})
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to cancel visitor pass %d: %w", passID, err)
	}
	return s.present(pass), nil
}

// UsePass admits the visitor holding passCode.
func (s *VisitorPassService) UsePass(ctx context.Context, actor *model.Actor, passCode string) (*model.VisitorPass, error) {
	passCode = strings.TrimSpace(passCode)
	if passCode == "" {
		return nil, fmt.Errorf("%w: pass code is required", echo_errors.ErrInvalidVisitorPassData)
	}

	res := workflow.Result{Entity: "visitor_pass", Action: "use", To: string(model.PassUsed)}
	pass, changed, err := s.store.TransitionPassByCode(ctx, passCode, func(p *model.VisitorPass) (bool, error) {
		res.ID = p.ID
		res.From = string(workflow.EffectiveStatus(p, s.now()))
		return workflow.UsePass(actor, p, s.now())
	})
	s.record(ctx, actor, res, changed, err)
	if err != nil {
		return nil, fmt.Errorf("failed to use visitor pass: %w", err)
	}
	if changed {
		s.notify(ctx, model.NotificationRequest{
			UserIDs:   []uint{pass.UserID},
			Title:     "Visitor arrived",
			Content:   fmt.Sprintf("%s has entered with your visitor pass.", pass.VisitorName),
			Type:      model.NotificationVisitor,
			RelatedID: pass.ID,
		})
	}
	return s.present(pass), nil
}
