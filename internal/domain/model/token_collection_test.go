//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTokenCollectionRequest_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		req     CreateTokenCollectionRequest
		wantErr bool
		errMsg  string
	}{
		{
			name:    "valid request",
			req:     CreateTokenCollectionRequest{Name: "Colors", Key: "colors", DesignSystemID: 1},
			wantErr: false,
		},
		{
			name:    "empty name",
			req:     CreateTokenCollectionRequest{Name: "  ", Key: "colors", DesignSystemID: 1},
			wantErr: true,
			errMsg:  "name is required and cannot be empty",
		},
		{
			name:    "name too long",
			req:     CreateTokenCollectionRequest{Name: strings.Repeat("x", 256), Key: "colors", DesignSystemID: 1},
			wantErr: true,
			errMsg:  "name cannot exceed 255 characters",
		},
		{
			name:    "missing key",
			req:     CreateTokenCollectionRequest{Name: "Colors", DesignSystemID: 1},
			wantErr: true,
			errMsg:  "key is required",
		},
		{
			name:    "missing design system id",
			req:     CreateTokenCollectionRequest{Name: "Colors", Key: "colors"},
			wantErr: true,
			errMsg:  "design_system_id must be > 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := tt.req.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestUpdateTokenCollectionRequest_Validate(t *testing.T) {
	t.Parallel()

	name := "Spacing"
	key := "spacing"
	blank := " "

	err := (&UpdateTokenCollectionRequest{}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one field must be updated")

	require.NoError(t, (&UpdateTokenCollectionRequest{Name: &name, Key: &key}).Validate())

	err = (&UpdateTokenCollectionRequest{Name: &blank}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be empty")

	err = (&UpdateTokenCollectionRequest{Key: &blank}).Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "key cannot be empty")
}
