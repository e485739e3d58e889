package navcodes_test

import (
	"errors"
	"testing"

	"github.com/kairoute/turnguide/pkg/navcodes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorIsMatchesCode(t *testing.T) {
	err := navcodes.New(navcodes.PathMalformed, "dangling predecessor")
	assert.True(t, errors.Is(err, navcodes.PathMalformed))
	assert.False(t, errors.Is(err, navcodes.GraphContractViolation))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("edge 7 not found")
	err := navcodes.Wrap(navcodes.GraphContractViolation, "resolving edge", cause)

	require.True(t, errors.Is(err, navcodes.GraphContractViolation))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "edge 7 not found")
}

func TestNewfFormatsMessage(t *testing.T) {
	err := navcodes.Newf(navcodes.PathMalformed, "edge %d has no successor", 42)
	assert.Contains(t, err.Error(), "edge 42 has no successor")
}
