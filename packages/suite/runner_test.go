package suite

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	apihttp "github.com/abdul-hamid-achik/apismoke/packages/http"
	"github.com/abdul-hamid-achik/apismoke/packages/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	paths []string
}

func (rec *recorder) add(p string) {
	rec.mu.Lock()
	defer rec.mu.Unlock()
	rec.paths = append(rec.paths, p)
}

func newRunner(t *testing.T, handler http.HandlerFunc, opts ...RunnerOption) (*Runner, *bytes.Buffer) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	var buf bytes.Buffer
	client := apihttp.NewClient(apihttp.WithBaseURL(server.URL + "/"))
	log := logger.New(logger.WithWriter(&buf))
	return NewRunner(client, log, opts...), &buf
}

func TestRunner_DefaultCases(t *testing.T) {
	rec := &recorder{}
	runner, out := newRunner(t, func(w http.ResponseWriter, r *http.Request) {
		rec.add(r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"response": false, "message": "invalid"}`))
	})

	result, err := runner.Run(context.Background(), DefaultCases())

	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Equal(t, 4, result.Passed)
	assert.NotEmpty(t, result.RunID)
	assert.Equal(t, []string{
		"/sync/add/class/",
		"/sync/add/member/",
		"/sync/del/member/",
		"/sync/app/order/",
	}, rec.paths)
	assert.Contains(t, out.String(), "Url: ")
	assert.Contains(t, out.String(), "StatusCode: 400")
	assert.Contains(t, out.String(), "Message: invalid")
	assert.Positive(t, result.Bytes)
	assert.GreaterOrEqual(t, result.Latency.Max, result.Latency.P50)
}

func TestRunner_DelMemberBody(t *testing.T) {
	runner, _ := newRunner(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, map[string]any{
			"school_name":   "",
			"school_id":     float64(1),
			"opt_user_id":   float64(1),
			"opt_user_name": "",
		}, body)
		w.WriteHeader(http.StatusBadRequest)
	})

	result, err := runner.Run(context.Background(), Filter(DefaultCases(), "del_member"))

	require.NoError(t, err)
	require.Len(t, result.Results, 1)
	assert.Equal(t, "/sync/del/member/", result.Results[0].Path)
	assert.True(t, result.Results[0].Passed)
}

func TestRunner_StopsAtFirstMismatch(t *testing.T) {
	rec := &recorder{}
	runner, _ := newRunner(t, func(w http.ResponseWriter, r *http.Request) {
		rec.add(r.URL.Path)
		if r.URL.Path == "/sync/add/member/" {
			w.WriteHeader(http.StatusOK)
			return
		}
		w.WriteHeader(http.StatusBadRequest)
	})

	result, err := runner.Run(context.Background(), DefaultCases())

	var mismatch *StatusMismatchError
	require.ErrorAs(t, err, &mismatch)
	assert.Equal(t, "test_sync_add_member", mismatch.Case)
	assert.Equal(t, 400, mismatch.Expected)
	assert.Equal(t, 200, mismatch.Actual)

	assert.Equal(t, []string{"/sync/add/class/", "/sync/add/member/"}, rec.paths)
	assert.Equal(t, 1, result.Passed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 2, result.NotRun)
	assert.False(t, result.OK())
	assert.True(t, result.Results[2].NotRun)
	assert.True(t, result.Results[3].NotRun)
	assert.Equal(t, "/sync/app/order/", result.Results[3].Path)
}

func TestRunner_TransportErrorStopsRun(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := server.URL
	server.Close()

	var buf bytes.Buffer
	runner := NewRunner(apihttp.NewClient(apihttp.WithBaseURL(base)), logger.New(logger.WithWriter(&buf)))

	result, err := runner.Run(context.Background(), DefaultCases())

	var caseErr *CaseError
	require.ErrorAs(t, err, &caseErr)
	assert.Equal(t, "test_sync_add_class", caseErr.Case)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, 3, result.NotRun)
	assert.Contains(t, buf.String(), "Error:")
}

func TestRunner_ExplicitPathAndNoExpectation(t *testing.T) {
	rec := &recorder{}
	runner, _ := newRunner(t, func(w http.ResponseWriter, r *http.Request) {
		rec.add(r.URL.Path + "?" + r.URL.RawQuery)
		w.WriteHeader(http.StatusTeapot)
	})

	cases := []Case{
		{Name: "health", Path: "/healthz", Params: map[string]string{"v": "1"}},
		{Name: "test_user_42"},
	}
	result, err := runner.Run(context.Background(), cases)

	require.NoError(t, err)
	assert.Equal(t, 2, result.Passed)
	assert.Equal(t, []string{"/healthz?v=1", "/user/42/?"}, rec.paths)
	assert.Equal(t, http.MethodGet, result.Results[0].Method)
	assert.Equal(t, http.StatusTeapot, result.Results[1].StatusCode)
}

func TestRunner_WithRate(t *testing.T) {
	runner, _ := newRunner(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, WithRate(20))

	cases := []Case{{Name: "test_a"}, {Name: "test_b"}, {Name: "test_c"}}
	start := time.Now()
	result, err := runner.Run(context.Background(), cases)

	require.NoError(t, err)
	assert.Equal(t, 3, result.Passed)
	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

func TestRunner_LatencyBeyondCeiling(t *testing.T) {
	runner, _ := newRunner(t, func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(20 * time.Millisecond)
		w.WriteHeader(http.StatusOK)
	}, WithLatencyCeiling(time.Millisecond))

	result, err := runner.Run(context.Background(), []Case{
		{Name: "slow", Method: "GET", Path: "/slow", ExpectStatus: http.StatusOK},
	})

	require.NoError(t, err)
	assert.GreaterOrEqual(t, result.Latency.Max, 20*time.Millisecond)
	assert.Less(t, result.Latency.P95, 2*time.Millisecond)
	assert.Equal(t, result.Results[0].Duration, result.Latency.Max)
}

func TestRunner_CanceledContext(t *testing.T) {
	runner, _ := newRunner(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}, WithRate(1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := runner.Run(ctx, []Case{{Name: "test_a"}, {Name: "test_b"}})

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 2, result.NotRun)
	assert.Equal(t, 0, result.Failed)
}

func TestRunner_EmptyCases(t *testing.T) {
	runner, _ := newRunner(t, func(w http.ResponseWriter, r *http.Request) {})

	result, err := runner.Run(context.Background(), nil)

	require.NoError(t, err)
	assert.True(t, result.OK())
	assert.Empty(t, result.Results)
	assert.Zero(t, result.Latency)
}
