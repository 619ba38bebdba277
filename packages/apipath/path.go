// Package apipath builds URL paths one segment at a time.
//
//	api := apipath.Path{}
//	api.Seg("user")                        // /user
//	api.Seg("user").Seg("get")             // /user/get
//	api.Seg("user").Param(":name").Seg("detail") // /user/:name/detail
package apipath

import "fmt"

// Path is an immutable accumulated URL path. The zero value is the empty
// path. Every method returns a new Path and leaves the receiver untouched.
type Path struct {
	path string
}

// New returns a Path starting at base. base is used verbatim.
func New(base string) Path {
	return Path{path: base}
}

// Seg appends a named segment.
func (p Path) Seg(name string) Path {
	return Path{path: p.path + "/" + name}
}

// Param appends the string form of v as a segment. Seg(x) and Param(x)
// produce the same path for the same text.
func (p Path) Param(v any) Path {
	return Path{path: p.path + "/" + fmt.Sprint(v)}
}

// Segs appends each name in order.
func (p Path) Segs(names ...string) Path {
	for _, n := range names {
		p = p.Seg(n)
	}
	return p
}

func (p Path) String() string {
	return p.path
}
