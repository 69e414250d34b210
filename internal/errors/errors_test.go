package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *E
		expected string
	}{
		{
			name:     "without cause",
			err:      New(NavigationFailed, "no view for /nowhere"),
			expected: "navigation_failed: no view for /nowhere",
		},
		{
			name:     "with cause",
			err:      Wrap(StoreWrite, "save userRole", stderrors.New("disk full")),
			expected: "store_write: save userRole: disk full",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}

func TestUnwrapAndKind(t *testing.T) {
	cause := stderrors.New("connection refused")
	err := fmt.Errorf("restore session: %w", Wrap(StoreRead, "load userRole", cause))

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, StoreRead, KindOf(err))
	assert.True(t, Is(err, StoreRead))
	assert.False(t, Is(err, StoreWrite))
	assert.Equal(t, Kind(""), KindOf(cause))
}

func TestIsNested(t *testing.T) {
	inner := Wrap(StoreUnavailable, "open keyring", stderrors.New("no backend"))
	outer := Wrap(InvalidConfig, "store backend", inner)

	assert.True(t, Is(outer, InvalidConfig))
	assert.True(t, Is(outer, StoreUnavailable))
	assert.False(t, Is(outer, NavigationFailed))
}
