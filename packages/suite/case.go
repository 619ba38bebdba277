package suite

import (
	"net/http"
	"strings"

	"github.com/abdul-hamid-achik/apismoke/packages/route"
)

// Case is one smoke check. Its request path is derived from Name unless
// Path is set.
type Case struct {
	Name         string            `json:"name" yaml:"name"`
	Method       string            `json:"method,omitempty" yaml:"method,omitempty"`
	Path         string            `json:"path,omitempty" yaml:"path,omitempty"`
	Headers      map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Params       map[string]string `json:"params,omitempty" yaml:"params,omitempty"`
	Form         map[string]string `json:"form,omitempty" yaml:"form,omitempty"`
	JSON         any               `json:"json,omitempty" yaml:"json,omitempty"`
	ExpectStatus int               `json:"expectStatus,omitempty" yaml:"expectStatus,omitempty"`
}

// RequestMethod returns the HTTP method, GET when unset.
func (c *Case) RequestMethod() string {
	if c.Method == "" {
		return http.MethodGet
	}
	return strings.ToUpper(c.Method)
}

// RoutePath returns the path the case is sent to.
func (c *Case) RoutePath() string {
	if c.Path != "" {
		return c.Path
	}
	return route.Derive(c.Name)
}

// DefaultCases returns the built-in sync endpoint checks in run order.
// Only the test_sync_del_member body is known to match the server; the
// add_class, add_member and app_order bodies are placeholders meant to be
// replaced through the cases: list of the config file.
func DefaultCases() []Case {
	return []Case{
		{
			Name:   "test_sync_add_class",
			Method: http.MethodPost,
			JSON: map[string]any{
				"school_name":   "",
				"school_id":     1,
				"class_name":    "",
				"opt_user_id":   1,
				"opt_user_name": "",
			},
			ExpectStatus: http.StatusBadRequest,
		},
		{
			Name:   "test_sync_add_member",
			Method: http.MethodPost,
			JSON: map[string]any{
				"school_name":   "",
				"school_id":     1,
				"member_name":   "",
				"opt_user_id":   1,
				"opt_user_name": "",
			},
			ExpectStatus: http.StatusBadRequest,
		},
		{
			Name:   "test_sync_del_member",
			Method: http.MethodPost,
			JSON: map[string]any{
				"school_name":   "",
				"school_id":     1,
				"opt_user_id":   1,
				"opt_user_name": "",
			},
			ExpectStatus: http.StatusBadRequest,
		},
		{
			Name:   "test_sync_app_order",
			Method: http.MethodPost,
			JSON: map[string]any{
				"school_id":     1,
				"order_id":      "",
				"opt_user_id":   1,
				"opt_user_name": "",
			},
			ExpectStatus: http.StatusBadRequest,
		},
	}
}

// Filter keeps the cases whose name contains substr. An empty substr keeps
// everything.
func Filter(cases []Case, substr string) []Case {
	if substr == "" {
		return cases
	}
	var out []Case
	for _, c := range cases {
		if strings.Contains(c.Name, substr) {
			out = append(out, c)
		}
	}
	return out
}
