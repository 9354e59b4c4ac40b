package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/model"
)

type MockLeadRepository struct {
	mock.Mock
}

func (m *MockLeadRepository) Create(ctx context.Context, lead *model.Lead) error {
	args := m.Called(ctx, lead)
	return args.Error(0)
}

type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *model.Application) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindByEmail(ctx context.Context, email string) ([]model.Application, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Application), args.Error(1)
}

type MockReferralRepository struct {
	mock.Mock
}

func (m *MockReferralRepository) Create(ctx context.Context, ref *model.Referral) error {
	args := m.Called(ctx, ref)
	return args.Error(0)
}

type MockTalentPoolRepository struct {
	mock.Mock
}

func (m *MockTalentPoolRepository) Exists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockTalentPoolRepository) Create(ctx context.Context, entry *model.TalentPoolEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}
