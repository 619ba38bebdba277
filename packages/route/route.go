// Package route derives request paths from test case names.
//
// A case named "test_sync_del_member" is routed to "/sync/del/member/": the
// name is split on "_", the first token is dropped and the rest become path
// segments, with a trailing slash.
package route

import (
	"context"
	"maps"
	"strings"

	"github.com/abdul-hamid-achik/apismoke/packages/apipath"
)

// PathKey is the argument key the derived path is stored under.
const PathKey = "path"

// Separator splits a case name into tokens.
const Separator = "_"

// Args are the keyword arguments passed to a wrapped function.
type Args map[string]any

// Path returns the injected path, if any.
func (a Args) Path() (string, bool) {
	v, ok := a[PathKey]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Func is a function that receives keyword arguments.
type Func[T any] func(ctx context.Context, args Args) (T, error)

// Tokens returns the path tokens of name: everything after the first
// separator-delimited token.
func Tokens(name string) []string {
	return strings.Split(name, Separator)[1:]
}

// Derive returns the request path for a case name. A name made of only the
// leading token maps to "/".
func Derive(name string) string {
	p := apipath.Path{}
	for _, tok := range Tokens(name) {
		p = p.Param(tok)
	}
	return p.String() + "/"
}

// Wrap returns fn with the path derived from name injected into its
// arguments under PathKey. The path is derived on every call and the
// caller's Args are not modified. fn's results are returned as is.
func Wrap[T any](name string, fn Func[T]) Func[T] {
	return func(ctx context.Context, args Args) (T, error) {
		call := make(Args, len(args)+1)
		maps.Copy(call, args)
		call[PathKey] = Derive(name)
		return fn(ctx, call)
	}
}
