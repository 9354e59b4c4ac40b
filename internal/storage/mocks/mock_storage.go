package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/danielmorris2014/fiber-guys-sub000/internal/storage"
)

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Configured() bool {
	args := m.Called()
	return args.Bool(0)
}

func (m *MockStorage) Put(ctx context.Context, key string, r io.Reader, opt storage.PutObjectOptions) (storage.ObjectInfo, error) {
	args := m.Called(ctx, key, r, opt)
	if f, ok := args.Get(0).(func(context.Context, string, io.Reader, storage.PutObjectOptions) storage.ObjectInfo); ok {
		return f(ctx, key, r, opt), args.Error(1)
	}
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

func (m *MockStorage) PublicURL(key string) string {
	args := m.Called(key)
	return args.String(0)
}
