package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/service"
)

type MockSubmissions struct {
	mock.Mock
}

func (m *MockSubmissions) SubmitLead(ctx context.Context, in service.LeadInput) service.SubmitResult {
	args := m.Called(ctx, in)
	return args.Get(0).(service.SubmitResult)
}

func (m *MockSubmissions) SubmitApplication(ctx context.Context, in service.ApplicationInput) service.ApplicationResult {
	args := m.Called(ctx, in)
	return args.Get(0).(service.ApplicationResult)
}

func (m *MockSubmissions) SubmitReferral(ctx context.Context, in service.ReferralInput) service.SubmitResult {
	args := m.Called(ctx, in)
	return args.Get(0).(service.SubmitResult)
}

func (m *MockSubmissions) SubscribeTalentPool(ctx context.Context, in service.TalentPoolInput) service.SubmitResult {
	args := m.Called(ctx, in)
	return args.Get(0).(service.SubmitResult)
}

func (m *MockSubmissions) CheckApplicationStatus(ctx context.Context, in service.StatusInput) service.StatusResult {
	args := m.Called(ctx, in)
	return args.Get(0).(service.StatusResult)
}
