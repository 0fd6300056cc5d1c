package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrCatalogNotFound, "stacks catalog not found")
	assert.Equal(t, ErrCatalogNotFound, err.Code)
	assert.Equal(t, "[CATALOG_NOT_FOUND] stacks catalog not found", err.Error())
}

func TestNewf(t *testing.T) {
	err := Newf(ErrStackNotFound, "stack %q not found", "webdev")
	assert.Equal(t, `[STACK_NOT_FOUND] stack "webdev" not found`, err.Error())
}

func TestWrap(t *testing.T) {
	t.Run("wraps underlying error", func(t *testing.T) {
		underlying := fmt.Errorf("read failed")
		err := Wrap(underlying, ErrCatalogCorrupt, "invalid catalog")
		require.NotNil(t, err)
		assert.Equal(t, "[CATALOG_CORRUPT] invalid catalog: read failed", err.Error())
		assert.Equal(t, underlying, stderrors.Unwrap(err))
	})

	t.Run("nil error returns nil", func(t *testing.T) {
		assert.Nil(t, Wrap(nil, ErrCatalogCorrupt, "ignored"))
		assert.Nil(t, Wrapf(nil, ErrCatalogCorrupt, "ignored %d", 1))
	})
}

func TestErrorIs(t *testing.T) {
	err := Wrap(fmt.Errorf("boom"), ErrCatalogCorrupt, "bad catalog")
	assert.True(t, stderrors.Is(err, New(ErrCatalogCorrupt, "anything")))
	assert.False(t, stderrors.Is(err, New(ErrCatalogNotFound, "anything")))
}

func TestIsErrorCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code ErrorCode
		want bool
	}{
		{"matching code", New(ErrStackNotFound, "x"), ErrStackNotFound, true},
		{"different code", New(ErrStackNotFound, "x"), ErrCatalogCorrupt, false},
		{"plain error", fmt.Errorf("plain"), ErrStackNotFound, false},
		{"wrapped in fmt", fmt.Errorf("outer: %w", New(ErrInstallFailed, "x")), ErrInstallFailed, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsErrorCode(tt.err, tt.code))
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	assert.Equal(t, ErrCatalogNotFound, GetErrorCode(New(ErrCatalogNotFound, "x")))
	assert.Equal(t, ErrUnknown, GetErrorCode(fmt.Errorf("plain")))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrCatalogCorrupt, "bad entry").
		WithDetail("path", "/etc/cortex/stacks.json").
		WithDetail("index", 3)
	assert.Equal(t, "/etc/cortex/stacks.json", err.Details["path"])
	assert.Equal(t, 3, err.Details["index"])
}
