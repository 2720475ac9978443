package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/license_portal/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want apperrors.Kind
	}{
		{
			name: "not found",
			err:  apperrors.NewNotFound("Package Detail with ID: 2 not found"),
			want: apperrors.KindNotFound,
		},
		{
			name: "wrapped not found",
			err:  fmt.Errorf("lookup: %w", apperrors.NewNotFound("License with ID: 3 not found")),
			want: apperrors.KindNotFound,
		},
		{
			name: "activation failed",
			err:  apperrors.NewActivationFailed("WCF service call resulted in ERROR"),
			want: apperrors.KindActivationFailed,
		},
		{
			name: "accessor error wrapping the not found sentinel",
			err:  fmt.Errorf("%w: serial number SN-1", apperrors.ErrNotFound),
			want: apperrors.KindUnexpected,
		},
		{
			name: "wrapped activation sentinel",
			err:  fmt.Errorf("call: %w", apperrors.ErrActivationFailed),
			want: apperrors.KindUnexpected,
		},
		{
			name: "unclassified",
			err:  errors.New("connection reset"),
			want: apperrors.KindUnexpected,
		},
		{
			name: "app error without kind sentinel",
			err:  apperrors.NewAppError("failed to begin transaction", errors.New("pool closed")),
			want: apperrors.KindUnexpected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, apperrors.KindOf(tt.err))
		})
	}
}

func TestAppError_IsAndMessage(t *testing.T) {
	err := apperrors.NewNotFound("Organization Account with ID: 1 not found")

	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.False(t, errors.Is(err, apperrors.ErrActivationFailed))
	assert.Equal(t, "Organization Account with ID: 1 not found", err.Error())

	cause := errors.New("pool closed")
	wrapped := apperrors.NewAppError("failed to commit transaction", cause)
	assert.ErrorIs(t, wrapped, cause)
	assert.False(t, errors.Is(wrapped, apperrors.ErrNotFound))
}
