// Package mocks provides mock expectation helpers for common testing patterns
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/talent-api/internal/entities"
	loadermock "github.com/KirkDiggler/talent-api/internal/loader/mock"
)

// ExpectLoad sets up a single Load call on the source
func ExpectLoad(mockSource *loadermock.MockSource, defs map[string]entities.TreeDefinition, err error) *gomock.Call {
	return mockSource.EXPECT().
		Load(gomock.Any()).
		Return(defs, err)
}
