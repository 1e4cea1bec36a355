//go:build mandeldebug

package mandel

import "fmt"

func invariant(cond bool, format string, args ...any) {
	if !cond {
		panic("mandel: " + fmt.Sprintf(format, args...))
	}
}
