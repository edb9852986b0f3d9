// Hand-written mock in the shape MockGen produces.
// Source: internal_service.go

package internal

import (
	"context"
	reflect "reflect"

	gomock "github.com/golang/mock/gomock"
)

// MockServiceClient is a mock of the ServiceClient interface, in the shape
// mockgen would generate from its method set.
type MockServiceClient struct {
	ctrl     *gomock.Controller
	recorder *MockServiceClientMockRecorder
}

type MockServiceClientMockRecorder struct {
	mock *MockServiceClient
}

func NewMockServiceClient(ctrl *gomock.Controller) *MockServiceClient {
	mock := &MockServiceClient{ctrl: ctrl}
	mock.recorder = &MockServiceClientMockRecorder{mock}
	return mock
}

func (m *MockServiceClient) EXPECT() *MockServiceClientMockRecorder {
	return m.recorder
}

func (m *MockServiceClient) RegisterDomain(ctx context.Context, domain string) error {
	ret := m.ctrl.Call(m, "RegisterDomain", ctx, domain)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockServiceClientMockRecorder) RegisterDomain(ctx, domain interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterDomain", reflect.TypeOf((*MockServiceClient)(nil).RegisterDomain), ctx, domain)
}

func (m *MockServiceClient) RegisterWorkflowType(ctx context.Context, domain, name, version string) error {
	ret := m.ctrl.Call(m, "RegisterWorkflowType", ctx, domain, name, version)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockServiceClientMockRecorder) RegisterWorkflowType(ctx, domain, name, version interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterWorkflowType", reflect.TypeOf((*MockServiceClient)(nil).RegisterWorkflowType), ctx, domain, name, version)
}

func (m *MockServiceClient) RegisterActivityType(ctx context.Context, domain, name, version string) error {
	ret := m.ctrl.Call(m, "RegisterActivityType", ctx, domain, name, version)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockServiceClientMockRecorder) RegisterActivityType(ctx, domain, name, version interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RegisterActivityType", reflect.TypeOf((*MockServiceClient)(nil).RegisterActivityType), ctx, domain, name, version)
}

func (m *MockServiceClient) StartWorkflow(ctx context.Context, domain, queue string, task Task, input *string) error {
	ret := m.ctrl.Call(m, "StartWorkflow", ctx, domain, queue, task, input)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockServiceClientMockRecorder) StartWorkflow(ctx, domain, queue, task, input interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "StartWorkflow", reflect.TypeOf((*MockServiceClient)(nil).StartWorkflow), ctx, domain, queue, task, input)
}

func (m *MockServiceClient) PollActivity(ctx context.Context, domain, queue string) (*ActivityTask, error) {
	ret := m.ctrl.Call(m, "PollActivity", ctx, domain, queue)
	task, _ := ret[0].(*ActivityTask)
	err, _ := ret[1].(error)
	return task, err
}

func (mr *MockServiceClientMockRecorder) PollActivity(ctx, domain, queue interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PollActivity", reflect.TypeOf((*MockServiceClient)(nil).PollActivity), ctx, domain, queue)
}

func (m *MockServiceClient) PollDecision(ctx context.Context, domain, queue string) (*DecisionTask, error) {
	ret := m.ctrl.Call(m, "PollDecision", ctx, domain, queue)
	task, _ := ret[0].(*DecisionTask)
	err, _ := ret[1].(error)
	return task, err
}

func (mr *MockServiceClientMockRecorder) PollDecision(ctx, domain, queue interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "PollDecision", reflect.TypeOf((*MockServiceClient)(nil).PollDecision), ctx, domain, queue)
}

func (m *MockServiceClient) RespondActivityCompleted(ctx context.Context, token []byte, output *string) error {
	ret := m.ctrl.Call(m, "RespondActivityCompleted", ctx, token, output)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockServiceClientMockRecorder) RespondActivityCompleted(ctx, token, output interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RespondActivityCompleted", reflect.TypeOf((*MockServiceClient)(nil).RespondActivityCompleted), ctx, token, output)
}

func (m *MockServiceClient) RespondActivityFailed(ctx context.Context, token []byte, reason string) error {
	ret := m.ctrl.Call(m, "RespondActivityFailed", ctx, token, reason)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockServiceClientMockRecorder) RespondActivityFailed(ctx, token, reason interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RespondActivityFailed", reflect.TypeOf((*MockServiceClient)(nil).RespondActivityFailed), ctx, token, reason)
}

func (m *MockServiceClient) RespondActivityCanceled(ctx context.Context, token []byte) error {
	ret := m.ctrl.Call(m, "RespondActivityCanceled", ctx, token)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockServiceClientMockRecorder) RespondActivityCanceled(ctx, token interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RespondActivityCanceled", reflect.TypeOf((*MockServiceClient)(nil).RespondActivityCanceled), ctx, token)
}

func (m *MockServiceClient) RespondDecisionCompleted(ctx context.Context, token []byte, decisions []Decision) error {
	ret := m.ctrl.Call(m, "RespondDecisionCompleted", ctx, token, decisions)
	err, _ := ret[0].(error)
	return err
}

func (mr *MockServiceClientMockRecorder) RespondDecisionCompleted(ctx, token, decisions interface{}) *gomock.Call {
	return mr.mock.ctrl.RecordCallWithMethodType(mr.mock, "RespondDecisionCompleted", reflect.TypeOf((*MockServiceClient)(nil).RespondDecisionCompleted), ctx, token, decisions)
}
