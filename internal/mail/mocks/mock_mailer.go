package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/mail"
)

type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, msg mail.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
