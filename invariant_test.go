//go:build !mandeldebug

package mandel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvariant_NoopInRegularBuild(t *testing.T) {
	assert.NotPanics(t, func() { invariant(false, "broken %d", 1) })
}
