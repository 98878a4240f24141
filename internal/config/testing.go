/*
Copyright © 2025 Stackcat Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package config

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockProvider implements Provider for testing
type MockProvider struct {
	mock.Mock
}

func (m *MockProvider) Load(ctx context.Context) (*Config, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Config), args.Error(1)
}

var _ Provider = (*MockProvider)(nil)
