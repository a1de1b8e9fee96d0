// Hand-written in the shape mockgen produces for
// github.com/nano-o/tvl/solver (interfaces: Adapter).

package solver

import (
	"context"
	"reflect"

	"go.uber.org/mock/gomock"

	"github.com/nano-o/tvl/classical"
)

// MockAdapter is a mock of the Adapter interface, for tests that need
// to assert the solver was invoked with a specific formula shape
// without running the real backtracking search. The intertwined and
// overlay tests in this module do not use it; they run Backtracking.
type MockAdapter struct {
	ctrl     *gomock.Controller
	recorder *MockAdapterMockRecorder
}

// MockAdapterMockRecorder is the mock recorder for MockAdapter.
type MockAdapterMockRecorder struct {
	mock *MockAdapter
}

// NewMockAdapter creates a new mock instance.
func NewMockAdapter(ctrl *gomock.Controller) *MockAdapter {
	mock := &MockAdapter{ctrl: ctrl}
	mock.recorder = &MockAdapterMockRecorder{mock}
	return mock
}

// EXPECT returns an object that allows the caller to indicate expected
// use.
func (m *MockAdapter) EXPECT() *MockAdapterMockRecorder {
	return m.recorder
}

// IsSat mocks base method.
func (m *MockAdapter) IsSat(ctx context.Context, f classical.Formula) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsSat", ctx, f)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsSat indicates an expected call of IsSat.
func (mr *MockAdapterMockRecorder) IsSat(ctx, f interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsSat", reflect.TypeOf((*MockAdapter)(nil).IsSat), ctx, f)
}

// IsValid mocks base method.
func (m *MockAdapter) IsValid(ctx context.Context, f classical.Formula) (bool, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "IsValid", ctx, f)
	ret0, _ := ret[0].(bool)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// IsValid indicates an expected call of IsValid.
func (mr *MockAdapterMockRecorder) IsValid(ctx, f interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "IsValid", reflect.TypeOf((*MockAdapter)(nil).IsValid), ctx, f)
}

// Maximize mocks base method.
func (m *MockAdapter) Maximize(ctx context.Context, hard, soft []classical.Formula, weights []int) (Assignment, error) {
	m.ctrl.T.Helper()
	ret := m.ctrl.Call(m, "Maximize", ctx, hard, soft, weights)
	ret0, _ := ret[0].(Assignment)
	ret1, _ := ret[1].(error)
	return ret0, ret1
}

// Maximize indicates an expected call of Maximize.
func (mr *MockAdapterMockRecorder) Maximize(ctx, hard, soft, weights interface{}) *gomock.Call {
	mr.mock.ctrl.T.Helper()
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "Maximize", reflect.TypeOf((*MockAdapter)(nil).Maximize), ctx, hard, soft, weights)
}

var _ Adapter = (*MockAdapter)(nil)
