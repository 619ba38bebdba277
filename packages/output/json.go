package output

import (
	"encoding/json"
	"io"
	"os"
	"time"

	"github.com/abdul-hamid-achik/apismoke/packages/suite"
)

// JSONOutput represents the complete JSON output structure
type JSONOutput struct {
	RunID    string      `json:"runId"`
	BaseURL  string      `json:"baseUrl"`
	Version  string      `json:"version,omitempty"`
	Summary  JSONSummary `json:"summary"`
	Cases    []JSONCase  `json:"cases"`
	Duration float64     `json:"duration"`
	Time     string      `json:"time"`
	Error    string      `json:"error,omitempty"`
}

// JSONSummary represents the run summary
type JSONSummary struct {
	Total  int     `json:"total"`
	Passed int     `json:"passed"`
	Failed int     `json:"failed"`
	NotRun int     `json:"notRun"`
	Bytes  int64   `json:"bytes"`
	P50    float64 `json:"p50"`
	P95    float64 `json:"p95"`
	Max    float64 `json:"max"`
}

// JSONCase represents a single case result
type JSONCase struct {
	Name         string  `json:"name"`
	Method       string  `json:"method"`
	Path         string  `json:"path"`
	URL          string  `json:"url,omitempty"`
	RequestID    string  `json:"requestId,omitempty"`
	StatusCode   int     `json:"statusCode,omitempty"`
	ExpectStatus int     `json:"expectStatus,omitempty"`
	Passed       bool    `json:"passed"`
	NotRun       bool    `json:"notRun,omitempty"`
	Duration     float64 `json:"duration"`
	Error        string  `json:"error,omitempty"`
}

// JSONFormatter formats run results as JSON
type JSONFormatter struct {
	writer  io.Writer
	version string
	baseURL string
	err     error
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func ms(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000
}

func (f *JSONFormatter) FormatResult(result *suite.RunResult) error {
	out := JSONOutput{
		RunID:   result.RunID,
		BaseURL: result.BaseURL,
		Version: f.version,
		Summary: JSONSummary{
			Total:  len(result.Results),
			Passed: result.Passed,
			Failed: result.Failed,
			NotRun: result.NotRun,
			Bytes:  result.Bytes,
			P50:    ms(result.Latency.P50),
			P95:    ms(result.Latency.P95),
			Max:    ms(result.Latency.Max),
		},
		Cases:    make([]JSONCase, 0, len(result.Results)),
		Duration: ms(result.Duration),
		Time:     time.Now().Format(time.RFC3339),
	}
	if f.err != nil {
		out.Error = f.err.Error()
	}
	if out.BaseURL == "" {
		out.BaseURL = f.baseURL
	}

	for _, r := range result.Results {
		out.Cases = append(out.Cases, JSONCase{
			Name:         r.Name,
			Method:       r.Method,
			Path:         r.Path,
			URL:          r.URL,
			RequestID:    r.RequestID,
			StatusCode:   r.StatusCode,
			ExpectStatus: r.ExpectStatus,
			Passed:       r.Passed,
			NotRun:       r.NotRun,
			Duration:     ms(r.Duration),
			Error:        r.ErrorMessage,
		})
	}

	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// FormatError records err; it is written with the result.
func (f *JSONFormatter) FormatError(err error) {
	f.err = err
}

func (f *JSONFormatter) FormatHeader(version, baseURL string) {
	f.version = version
	f.baseURL = baseURL
}
