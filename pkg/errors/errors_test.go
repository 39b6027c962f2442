// pkg/errors/errors_test.go
// TEST TYPE: Unit Test
// DEPENDENCIES: None
// PURPOSE: Test error creation, wrapping, and utility functions

package errors_test

import (
	stderrors "errors"
	"testing"

	"github.com/crategroups/crategroups/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		code    errors.ErrorCode
		message string
		wantStr string
	}{
		{
			name:    "group_not_found_error",
			code:    errors.ErrGroupNotFound,
			message: "group backend not found",
			wantStr: "[GROUP_NOT_FOUND] group backend not found",
		},
		{
			name:    "pattern_invalid_error",
			code:    errors.ErrPatternInvalid,
			message: "invalid glob pattern",
			wantStr: "[PATTERN_INVALID] invalid glob pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := errors.New(tt.code, tt.message)

			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.message, err.Message)
			assert.NotNil(t, err.Details)
			assert.Equal(t, tt.wantStr, err.Error())
		})
	}
}

func TestWrap(t *testing.T) {
	base := stderrors.New("underlying failure")

	err := errors.Wrap(base, errors.ErrMetadataLoad, "metadata command failed")
	require.NotNil(t, err)
	assert.Equal(t, "[METADATA_LOAD] metadata command failed: underlying failure", err.Error())
	assert.ErrorIs(t, err, base)

	// Wrapping nil yields nil
	assert.Nil(t, errors.Wrap(nil, errors.ErrMetadataLoad, "ignored"))
}

func TestIsErrorCode(t *testing.T) {
	err := errors.Newf(errors.ErrGroupNotFound, "group %s not found", "backend")

	assert.True(t, errors.IsErrorCode(err, errors.ErrGroupNotFound))
	assert.False(t, errors.IsErrorCode(err, errors.ErrPatternInvalid))
	assert.False(t, errors.IsErrorCode(stderrors.New("plain"), errors.ErrGroupNotFound))

	// Codes survive wrapping in plain fmt-style chains
	wrapped := errors.Wrap(err, errors.ErrInternal, "outer")
	assert.Equal(t, errors.ErrInternal, errors.GetErrorCode(wrapped))
}

func TestWithDetail(t *testing.T) {
	err := errors.New(errors.ErrGroupNotFound, "group not found").
		WithDetail("group", "backend").
		WithDetail("available", []string{"tools", "backend-v2"})

	details := errors.GetErrorDetails(err)
	require.NotNil(t, details)
	assert.Equal(t, "backend", details["group"])

	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestGetErrorCodeUnknown(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}
