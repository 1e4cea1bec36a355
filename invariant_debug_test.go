//go:build mandeldebug

package mandel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvariant_PanicsInDebugBuild(t *testing.T) {
	assert.PanicsWithValue(t, "mandel: broken 1", func() { invariant(false, "broken %d", 1) })
	assert.NotPanics(t, func() { invariant(true, "fine") })
}
