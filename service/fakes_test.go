package service

import (
	"context"
	"sync"
	"time"

	"github.com/dev-mohitbeniwal/community/api/dao"
	echo_errors "github.com/dev-mohitbeniwal/community/api/errors"
	"github.com/dev-mohitbeniwal/community/api/model"
	"github.com/dev-mohitbeniwal/community/api/pdp/engine"
	"github.com/dev-mohitbeniwal/community/api/test/mock"
	"github.com/dev-mohitbeniwal/community/api/util"
)

var (
	clock      = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)
	staff      = &model.Actor{ID: 1, Username: "staff", Role: model.RolePropertyStaff}
	otherStaff = &model.Actor{ID: 2, Username: "staff2", Role: model.RolePropertyStaff}
	admin      = &model.Actor{ID: 3, Username: "admin", IsSuperuser: true}
	resident   = &model.Actor{ID: 10, Username: "alice", Role: model.RoleResident}
	neighbour  = &model.Actor{ID: 11, Username: "bob", Role: model.RoleResident}
	vendor     = &model.Actor{ID: 20, Username: "fixit", Role: model.RoleMerchant}
)

// table stands in for a locked row set: the mutex plays the role of
// SELECT ... FOR UPDATE and a failed mutation leaves the row untouched.
type table[T any] struct {
	mu   sync.Mutex
	rows map[uint]*T
	next uint
}

func newTable[T any]() *table[T] {
	return &table[T]{rows: make(map[uint]*T)}
}

func (t *table[T]) insert(row *T, setID func(*T, uint)) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.next++
	setID(row, t.next)
	cp := *row
	t.rows[t.next] = &cp
}

func (t *table[T]) get(id uint, notFound error) (*T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return nil, notFound
	}
	cp := *row
	return &cp, nil
}

func (t *table[T]) all() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]T, 0, len(t.rows))
	for id := uint(1); id <= t.next; id++ {
		if row, ok := t.rows[id]; ok {
			out = append(out, *row)
		}
	}
	return out
}

func (t *table[T]) transition(id uint, notFound error, mutate dao.Mutation[T]) (*T, bool, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	row, ok := t.rows[id]
	if !ok {
		return nil, false, notFound
	}
	cp := *row
	changed, err := mutate(&cp)
	if err != nil {
		return nil, false, err
	}
	if changed {
		*row = cp
	}
	out := cp
	return &out, changed, nil
}

func (t *table[T]) remove(id uint, notFound error) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.rows[id]; !ok {
		return notFound
	}
	delete(t.rows, id)
	return nil
}

type recordedEvent struct {
	Type    string
	Payload interface{}
}

type fakeEvents struct {
	mu     sync.Mutex
	events []recordedEvent
}

func (f *fakeEvents) Publish(ctx context.Context, eventType string, payload interface{}) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, recordedEvent{Type: eventType, Payload: payload})
}

func (f *fakeEvents) notifications() []model.NotificationRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.NotificationRequest
	for _, e := range f.events {
		if e.Type == util.EventNotify {
			out = append(out, e.Payload.(model.NotificationRequest))
		}
	}
	return out
}

// fakeHouses answers binding and house lookups from fixed data.
type fakeHouses struct {
	houses   map[uint]model.House
	approved map[uint][]uint
}

func newFakeHouses() *fakeHouses {
	return &fakeHouses{
		houses: map[uint]model.House{
			101: {ID: 101, BuildingID: 7, Number: "101"},
			102: {ID: 102, BuildingID: 7, Number: "102"},
			201: {ID: 201, BuildingID: 8, Number: "201"},
		},
		approved: map[uint][]uint{
			resident.ID: {101},
		},
	}
}

func (f *fakeHouses) HasApprovedBinding(ctx context.Context, userID, houseID uint) (bool, error) {
	for _, id := range f.approved[userID] {
		if id == houseID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeHouses) ApprovedHouseIDs(ctx context.Context, userID uint) ([]uint, error) {
	return f.approved[userID], nil
}

func (f *fakeHouses) GetHouse(ctx context.Context, houseID uint) (*model.House, error) {
	h, ok := f.houses[houseID]
	if !ok {
		return nil, echo_errors.ErrHouseNotFound
	}
	return &h, nil
}

func (f *fakeHouses) ListHousesByIDs(ctx context.Context, houseIDs []uint) ([]model.House, error) {
	out := []model.House{}
	for _, id := range houseIDs {
		if h, ok := f.houses[id]; ok {
			out = append(out, h)
		}
	}
	return out, nil
}

func newCommon() (Common, *mock.RecordingAuditService, *fakeEvents) {
	auditLog := &mock.RecordingAuditService{}
	events := &fakeEvents{}
	return Common{
		Audit:     auditLog,
		Events:    events,
		Evaluator: engine.NewEvaluator(),
		Now:       func() time.Time { return clock },
	}, auditLog, events
}
