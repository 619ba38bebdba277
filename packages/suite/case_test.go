package suite

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultCases_Order(t *testing.T) {
	cases := DefaultCases()
	require.Len(t, cases, 4)

	var names, paths []string
	for i := range cases {
		names = append(names, cases[i].Name)
		paths = append(paths, cases[i].RoutePath())
	}

	assert.Equal(t, []string{
		"test_sync_add_class",
		"test_sync_add_member",
		"test_sync_del_member",
		"test_sync_app_order",
	}, names)
	assert.Equal(t, "/sync/del/member/", paths[2])
	assert.Equal(t, http.StatusBadRequest, cases[2].ExpectStatus)
}

func TestCase_RequestMethod(t *testing.T) {
	assert.Equal(t, "GET", (&Case{}).RequestMethod())
	assert.Equal(t, "POST", (&Case{Method: "post"}).RequestMethod())
}

func TestCase_RoutePath(t *testing.T) {
	assert.Equal(t, "/x/", (&Case{Name: "test_x"}).RoutePath())
	assert.Equal(t, "/override", (&Case{Name: "test_x", Path: "/override"}).RoutePath())
}

func TestFilter(t *testing.T) {
	cases := DefaultCases()

	assert.Len(t, Filter(cases, ""), 4)
	assert.Len(t, Filter(cases, "member"), 2)
	assert.Empty(t, Filter(cases, "nothing"))
}

func TestStatusMismatchError(t *testing.T) {
	err := &StatusMismatchError{Case: "test_x", Expected: 400, Actual: 200}
	assert.Equal(t, "test_x: expected status 400, got 200", err.Error())
}
