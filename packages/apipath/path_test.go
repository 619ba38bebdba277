package apipath

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPath_String(t *testing.T) {
	tests := []struct {
		name     string
		path     Path
		expected string
	}{
		{"empty", Path{}, ""},
		{"single segment", Path{}.Seg("user"), "/user"},
		{"chained", Path{}.Seg("user").Seg("get"), "/user/get"},
		{"param in the middle", Path{}.Seg("user").Param("42").Seg("detail"), "/user/42/detail"},
		{"placeholder param", Path{}.Seg("user").Param(":name").Seg("detail"), "/user/:name/detail"},
		{"integer param", Path{}.Seg("order").Param(7), "/order/7"},
		{"from base", New("/api/v1").Seg("ping"), "/api/v1/ping"},
		{"segs", Path{}.Segs("sync", "del", "member"), "/sync/del/member"},
		{"verbatim values", Path{}.Seg("").Param("a b"), "//a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.path.String())
		})
	}
}

func TestPath_SegAndParamAgree(t *testing.T) {
	tokens := [][]string{
		{"user"},
		{"user", "42", "detail"},
		{"sync", "app", "order"},
		{"a", "", "b"},
	}

	for _, toks := range tokens {
		var bySeg, byParam Path
		for _, tok := range toks {
			bySeg = bySeg.Seg(tok)
			byParam = byParam.Param(tok)
		}
		assert.Equal(t, bySeg.String(), byParam.String(), "tokens %v", toks)
	}

	assert.Equal(t, Path{}.Seg("x").Seg("y").String(), Path{}.Seg("x").Param("y").String())
}

func TestPath_Immutable(t *testing.T) {
	base := Path{}.Seg("user")
	a := base.Seg("get")
	b := base.Param("42")

	assert.Equal(t, "/user", base.String())
	assert.Equal(t, "/user/get", a.String())
	assert.Equal(t, "/user/42", b.String())
}

func TestPath_Formatting(t *testing.T) {
	p := Path{}.Seg("user").Param(":name")
	assert.Equal(t, "/user/:name", fmt.Sprintf("%s", p))
	assert.Equal(t, "/user/:name", fmt.Sprint(p))
}
