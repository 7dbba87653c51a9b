package flatscan_test

import (
	"errors"
	"testing"

	"github.com/avolos/flatscan"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := flatscan.Errorf(flatscan.ENOTFOUND, "listing %q not found", "test")

	assert.Equal(t, flatscan.ENOTFOUND, flatscan.ErrorCode(err))
	assert.Equal(t, "listing \"test\" not found", flatscan.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, flatscan.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, flatscan.ErrorMessage(nil))
}

func TestErrorCode_NonAppError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, flatscan.EINTERNAL, flatscan.ErrorCode(errors.New("boom")))
}
