package builder_test

import (
	"testing"

	"github.com/katalvlaran/lvplane/builder"
	"github.com/stretchr/testify/require"
)

func TestWithMinAreaPanicsOnNonPositive(t *testing.T) {
	require.Panics(t, func() { builder.WithMinArea(0) })
	require.Panics(t, func() { builder.WithMinArea(-1) })
}

func TestWithMinCoeffPanicsOutOfRange(t *testing.T) {
	require.Panics(t, func() { builder.WithMinCoeff(0) })
	require.Panics(t, func() { builder.WithMinCoeff(0.5) })
}
