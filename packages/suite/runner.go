package suite

import (
	"context"
	"errors"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
	"github.com/abdul-hamid-achik/apismoke/packages/http"
	"github.com/abdul-hamid-achik/apismoke/packages/logger"
	"github.com/abdul-hamid-achik/apismoke/packages/route"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

// DefaultLatencyCeiling is the largest duration the latency histogram
// resolves unless WithLatencyCeiling sets another.
const DefaultLatencyCeiling = time.Minute

type Runner struct {
	client  *http.Client
	log     *logger.Logger
	limiter *rate.Limiter
	ceiling time.Duration
}

type RunnerOption func(*Runner)

func NewRunner(client *http.Client, log *logger.Logger, opts ...RunnerOption) *Runner {
	r := &Runner{
		client:  client,
		log:     log,
		ceiling: DefaultLatencyCeiling,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// WithRate paces cases to at most rps per second. Zero or less disables
// pacing.
func WithRate(rps float64) RunnerOption {
	return func(r *Runner) {
		if rps > 0 {
			r.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// WithLatencyCeiling sizes the latency histogram to d, normally the client
// timeout. Slower cases count at the ceiling for percentiles but still
// report their own duration as Max.
func WithLatencyCeiling(d time.Duration) RunnerOption {
	return func(r *Runner) {
		if d > 0 {
			r.ceiling = d
		}
	}
}

type RunResult struct {
	RunID    string         `json:"runId"`
	BaseURL  string         `json:"baseUrl"`
	Results  []*CaseResult  `json:"results"`
	Passed   int            `json:"passed"`
	Failed   int            `json:"failed"`
	NotRun   int            `json:"notRun"`
	Bytes    int64          `json:"bytes"`
	Duration time.Duration  `json:"duration"`
	Latency  LatencySummary `json:"latency"`
}

// OK reports whether every case ran and passed.
func (r *RunResult) OK() bool {
	return r.Failed == 0 && r.NotRun == 0
}

type CaseResult struct {
	Name         string        `json:"name"`
	Method       string        `json:"method"`
	Path         string        `json:"path"`
	URL          string        `json:"url,omitempty"`
	RequestID    string        `json:"requestId,omitempty"`
	StatusCode   int           `json:"statusCode,omitempty"`
	ExpectStatus int           `json:"expectStatus,omitempty"`
	Passed       bool          `json:"passed"`
	NotRun       bool          `json:"notRun,omitempty"`
	Duration     time.Duration `json:"duration"`
	Bytes        int           `json:"bytes"`
	Error        error         `json:"-"`
	ErrorMessage string        `json:"error,omitempty"`
}

type LatencySummary struct {
	P50 time.Duration `json:"p50"`
	P95 time.Duration `json:"p95"`
	Max time.Duration `json:"max"`
}

// Run executes cases in order and stops at the first failure. The returned
// error is that failure: a *StatusMismatchError or a *CaseError wrapping
// the transport error. The result is always non-nil.
func (r *Runner) Run(ctx context.Context, cases []Case) (*RunResult, error) {
	start := time.Now()
	result := &RunResult{
		RunID:   uuid.NewString(),
		BaseURL: r.client.BaseURL(),
	}
	highest := max(r.ceiling.Microseconds(), 2)
	histogram := hdrhistogram.New(1, highest, 3)
	var slowest time.Duration

	var runErr error
	for i := range cases {
		c := &cases[i]

		if runErr != nil {
			result.Results = append(result.Results, &CaseResult{
				Name:   c.Name,
				Method: c.RequestMethod(),
				Path:   c.RoutePath(),
				NotRun: true,
			})
			result.NotRun++
			continue
		}

		cr, err := r.runCase(ctx, c)
		result.Results = append(result.Results, cr)
		if cr.StatusCode != 0 {
			_ = histogram.RecordValue(min(cr.Duration.Microseconds(), highest))
			slowest = max(slowest, cr.Duration)
			result.Bytes += int64(cr.Bytes)
		}

		switch {
		case cr.NotRun:
			result.NotRun++
		case cr.Passed:
			result.Passed++
		default:
			result.Failed++
		}
		if err != nil {
			runErr = err
		}
	}

	result.Duration = time.Since(start)
	if histogram.TotalCount() > 0 {
		result.Latency = LatencySummary{
			P50: time.Duration(histogram.ValueAtQuantile(50)) * time.Microsecond,
			P95: time.Duration(histogram.ValueAtQuantile(95)) * time.Microsecond,
			Max: slowest,
		}
	}

	return result, runErr
}

func (r *Runner) runCase(ctx context.Context, c *Case) (*CaseResult, error) {
	cr := &CaseResult{
		Name:         c.Name,
		Method:       c.RequestMethod(),
		Path:         c.RoutePath(),
		ExpectStatus: c.ExpectStatus,
	}

	if r.limiter != nil {
		if err := r.limiter.Wait(ctx); err != nil {
			cr.NotRun = true
			return cr, r.fail(cr, &CaseError{Case: c.Name, Err: err})
		}
	}

	resp, err := r.call(c)(ctx, nil)
	if err != nil {
		return cr, r.fail(cr, &CaseError{Case: c.Name, Err: err})
	}

	cr.URL = resp.URL
	cr.RequestID = resp.RequestID
	cr.StatusCode = resp.StatusCode
	cr.Duration = resp.Duration
	cr.Bytes = len(resp.Body)
	r.log.HTTP(resp)

	if c.ExpectStatus != 0 && resp.StatusCode != c.ExpectStatus {
		return cr, r.fail(cr, &StatusMismatchError{
			Case:     c.Name,
			Expected: c.ExpectStatus,
			Actual:   resp.StatusCode,
		})
	}

	cr.Passed = true
	return cr, nil
}

// call builds the request function for c. Cases without an explicit path
// are routed by name.
func (r *Runner) call(c *Case) route.Func[*http.Response] {
	send := func(ctx context.Context, args route.Args) (*http.Response, error) {
		path, ok := args.Path()
		if !ok {
			return nil, ErrMissingPath
		}
		return r.client.Do(ctx, &http.Request{
			Method:  c.RequestMethod(),
			Path:    path,
			Headers: c.Headers,
			Params:  c.Params,
			Form:    c.Form,
			JSON:    c.JSON,
		})
	}

	if c.Path != "" {
		return func(ctx context.Context, args route.Args) (*http.Response, error) {
			return send(ctx, route.Args{route.PathKey: c.Path})
		}
	}
	return route.Wrap(c.Name, send)
}

func (r *Runner) fail(cr *CaseResult, err error) error {
	cr.Error = err
	cr.ErrorMessage = err.Error()
	var mismatch *StatusMismatchError
	if !errors.As(err, &mismatch) {
		r.log.Log("Error:", err)
	}
	return err
}
