// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserIDCtxKey_String(t *testing.T) {
	assert.Equal(t, "userID", UserIDCtxKey.String())
	assert.Equal(t, "traceKey", contextKey("traceKey").String())
}

func TestGetUserIDFromContext(t *testing.T) {
	tests := []struct {
		name   string
		ctx    context.Context
		wantID int64
		wantOK bool
	}{
		{
			name:   "authenticated librarian",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, int64(42)),
			wantID: 42,
			wantOK: true,
		},
		{
			name: "public request",
			ctx:  context.Background(),
		},
		{
			name: "wrong value type",
			ctx:  context.WithValue(context.Background(), UserIDCtxKey, "42"),
		},
		{
			name: "plain string key",
			ctx:  context.WithValue(context.Background(), contextKey("otherKey"), int64(99)),
		},
		{
			name:   "zero id is still present",
			ctx:    context.WithValue(context.Background(), UserIDCtxKey, int64(0)),
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userID, ok := GetUserIDFromContext(tt.ctx)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, userID)
		})
	}
}
