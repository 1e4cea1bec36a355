//go:build !mandeldebug

package mandel

// invariant is a no-op in regular builds. Build with -tags mandeldebug to make
// caller contract violations panic.
func invariant(bool, string, ...any) {}
