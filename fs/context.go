package fs

import (
	"context"
)

var (
	// NoFollowContextKey is the context key for the no-follow flag.
	NoFollowContextKey = &contextKey{"no-follow"}
)

// FollowSymlinks returns true if symlinks should be followed and is intended
// to be used on contexts passed to StatContext, et al.
func FollowSymlinks(ctx context.Context) bool {
	if ctx == nil {
		return true
	}
	return ctx.Value(NoFollowContextKey) == nil
}

// WithNoFollow returns a new context with the NoFollowContextKey set to true.
func WithNoFollow(ctx context.Context) context.Context {
	if ctx == nil {
		return nil
	}
	return context.WithValue(ctx, NoFollowContextKey, true)
}

// contextKey is a value for use with context.WithValue. It's used as
// a pointer so it fits in an interface{} without allocation.
type contextKey struct {
	name string
}

func (k *contextKey) String() string { return "fs context value " + k.name }
