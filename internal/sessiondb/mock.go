package sessiondb

import (
	"github.com/fweigt/tslabel/internal/contract"
	"github.com/fweigt/tslabel/schema"
	"github.com/stretchr/testify/mock"
)

// MockSessionStore is a mock implementation of SessionStore for testing.
type MockSessionStore struct {
	mock.Mock
}

var _ contract.SessionStore = &MockSessionStore{} // Compile-time check

// SaveAssignments implements the SessionStore interface.
func (m *MockSessionStore) SaveAssignments(session string, assignments []schema.LabelAssignment) error {
	args := m.Called(session, assignments)
	return args.Error(0)
}

// LoadAssignments implements the SessionStore interface.
func (m *MockSessionStore) LoadAssignments(session string) ([]schema.LabelAssignment, error) {
	args := m.Called(session)
	assignments, _ := args.Get(0).([]schema.LabelAssignment)
	return assignments, args.Error(1)
}

// ClearSession implements the SessionStore interface.
func (m *MockSessionStore) ClearSession(session string) error {
	args := m.Called(session)
	return args.Error(0)
}

// GetStatus implements the SessionStore interface.
func (m *MockSessionStore) GetStatus() (schema.SessionStatus, error) {
	args := m.Called()
	return args.Get(0).(schema.SessionStatus), args.Error(1)
}

// Close implements the SessionStore interface.
func (m *MockSessionStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
