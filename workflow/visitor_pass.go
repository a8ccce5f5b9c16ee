package workflow

import (
	"fmt"
	"strings"
	"time"

	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
)

var PassMachine = NewMachine("visitor pass", map[model.PassStatus][]model.PassStatus{
	model.PassActive: {model.PassUsed, model.PassCancelled},
})

func NewVisitorPass(actor *model.Actor, req *model.CreateVisitorPassRequest, passCode string, now time.Time) (*model.VisitorPass, error) {
	if actor == nil {
		return nil, echo_errors.ErrNotAuthorized
	}
	if strings.TrimSpace(req.VisitorName) == "" {
		return nil, fmt.Errorf("%w: visitor name is required", echo_errors.ErrInvalidVisitorPassData)
	}
	if !req.ValidFrom.Before(req.ValidTo) {
		return nil, fmt.Errorf("%w: valid_from must be before valid_to", echo_errors.ErrInvalidVisitorPassData)
	}
	if !req.ValidTo.After(now) {
		return nil, fmt.Errorf("%w: pass window has already ended", echo_errors.ErrInvalidVisitorPassData)
	}
	return &model.VisitorPass{
		UserID:       actor.ID,
		HouseID:      req.HouseID,
		VisitorName:  req.VisitorName,
		VisitorPhone: req.VisitorPhone,
		PassCode:     passCode,
		ValidFrom:    req.ValidFrom.UTC(),
		ValidTo:      req.ValidTo.UTC(),
		Status:       model.PassActive,
	}, nil
}

// EffectiveStatus reads an active pass whose window has closed as expired.
// The stored status is left alone.
func EffectiveStatus(pass *model.VisitorPass, now time.Time) model.PassStatus {
	if pass.Status == model.PassActive && !now.Before(pass.ValidTo) {
		return model.PassExpired
	}
	return pass.Status
}

func withinWindow(pass *model.VisitorPass, now time.Time) bool {
	return !now.Before(pass.ValidFrom) && now.Before(pass.ValidTo)
}

// UsePass is the gate check. The creator or staff may redeem the pass, only
// inside [ValidFrom, ValidTo).
func UsePass(actor *model.Actor, pass *model.VisitorPass, now time.Time) (bool, error) {
	if !engine.IsOwnerOrPrivileged(actor, pass) {
		return false, echo_errors.ErrNotAuthorized
	}
	if err := PassMachine.Check(pass.Status, model.PassUsed); err != nil {
		return false, err
	}
	if !withinWindow(pass, now) {
		return false, fmt.Errorf("%w: pass is valid from %s to %s", echo_errors.ErrExpired,
			pass.ValidFrom.Format(time.RFC3339), pass.ValidTo.Format(time.RFC3339))
	}
	at := now.UTC()
	pass.Status = model.PassUsed
	pass.UsedAt = &at
	return true, nil
}

func CancelPass(actor *model.Actor, pass *model.VisitorPass, now time.Time) (bool, error) {
	if !engine.IsOwnerOrPrivileged(actor, pass) {
		return false, echo_errors.ErrNotAuthorized
	}
	switch EffectiveStatus(pass, now) {
	case model.PassCancelled:
		return false, nil
	case model.PassActive:
	default:
		return false, fmt.Errorf("%w: pass is %s", echo_errors.ErrInvalidState, EffectiveStatus(pass, now))
	}
	at := now.UTC()
	pass.Status = model.PassCancelled
	pass.CancelledAt = &at
	return true, nil
}
