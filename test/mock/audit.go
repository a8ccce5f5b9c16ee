// test/mock/audit.go
package mock

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/dev-mohitbeniwal/community/api/audit"
)

// MockAuditService is a mock implementation of audit.Service
type MockAuditService struct {
	mock.Mock
}

func (m *MockAuditService) LogAccess(ctx context.Context, log audit.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *MockAuditService) QueryLogs(ctx context.Context, query audit.Query) ([]audit.AuditLog, error) {
	args := m.Called(ctx, query)
	if logs, ok := args.Get(0).([]audit.AuditLog); ok {
		return logs, args.Error(1)
	}
	return nil, args.Error(1)
}

// RecordingAuditService keeps every entry in memory for assertions.
type RecordingAuditService struct {
	mu   sync.Mutex
	Logs []audit.AuditLog
}

func (r *RecordingAuditService) LogAccess(ctx context.Context, log audit.AuditLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Logs = append(r.Logs, log)
	return nil
}

func (r *RecordingAuditService) QueryLogs(ctx context.Context, query audit.Query) ([]audit.AuditLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]audit.AuditLog(nil), r.Logs...), nil
}

// Actions lists the recorded actions in order.
func (r *RecordingAuditService) Actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	actions := make([]string, 0, len(r.Logs))
	for _, l := range r.Logs {
		actions = append(actions, l.Action)
	}
	return actions
}
