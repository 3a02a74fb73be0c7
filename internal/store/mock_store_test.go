package store_test

import "github.com/stretchr/testify/mock"

// MockStore lets tests force backend failures.
type MockStore struct {
	mock.Mock
}

func (m *MockStore) GetCollection(name string) ([]byte, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockStore) SetCollection(name string, data []byte) error {
	args := m.Called(name, data)
	return args.Error(0)
}

func (m *MockStore) GetFlag(name string) (bool, error) {
	args := m.Called(name)
	return args.Bool(0), args.Error(1)
}

func (m *MockStore) SetFlag(name string, value bool) error {
	args := m.Called(name, value)
	return args.Error(0)
}
