package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/abdul-hamid-achik/apismoke/packages/suite"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
)

type ConsoleFormatter struct {
	writer  io.Writer
	verbose bool
	noColor bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.noColor {
		color.NoColor = true
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

func WithVerbose(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.verbose = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) FormatResult(result *suite.RunResult) error {
	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()

	fmt.Fprintf(f.writer, "\n")

	for _, r := range result.Results {
		label := fmt.Sprintf("%s %s %s", r.Name, r.Method, r.Path)

		if r.NotRun {
			fmt.Fprintf(f.writer, "  %s %s %s\n", yellow("-"), label, yellow("(not run)"))
			continue
		}

		if !r.Passed {
			fmt.Fprintf(f.writer, "  %s %s %s\n", red("✗"), label, cyan(fmt.Sprintf("(%dms)", r.Duration.Milliseconds())))
			if r.ErrorMessage != "" {
				fmt.Fprintf(f.writer, "    %s %s\n", red("→"), r.ErrorMessage)
			}
			continue
		}

		fmt.Fprintf(f.writer, "  %s %s %s\n", green("✓"), label, cyan(fmt.Sprintf("(%dms)", r.Duration.Milliseconds())))

		if f.verbose {
			fmt.Fprintf(f.writer, "    Status: %d\n", r.StatusCode)
			fmt.Fprintf(f.writer, "    Request-Id: %s\n", r.RequestID)
		}
	}

	fmt.Fprintf(f.writer, "\n")
	var parts []string
	if result.Passed > 0 {
		parts = append(parts, green(fmt.Sprintf("%d passed", result.Passed)))
	}
	if result.Failed > 0 {
		parts = append(parts, red(fmt.Sprintf("%d failed", result.Failed)))
	}
	if result.NotRun > 0 {
		parts = append(parts, yellow(fmt.Sprintf("%d not run", result.NotRun)))
	}
	total := result.Passed + result.Failed + result.NotRun
	parts = append(parts, fmt.Sprintf("%d total", total))
	fmt.Fprintf(f.writer, "Cases:    %s\n", strings.Join(parts, ", "))
	fmt.Fprintf(f.writer, "Time:     %dms\n", result.Duration.Milliseconds())
	if result.Latency.Max > 0 {
		fmt.Fprintf(f.writer, "Latency:  p50 %s, p95 %s, max %s\n", result.Latency.P50, result.Latency.P95, result.Latency.Max)
	}
	fmt.Fprintf(f.writer, "Received: %s\n", humanize.Bytes(uint64(result.Bytes)))
	if f.verbose {
		fmt.Fprintf(f.writer, "Run:      %s\n", result.RunID)
	}
	fmt.Fprintf(f.writer, "\n")
	return nil
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}

func (f *ConsoleFormatter) FormatHeader(version, baseURL string) {
	bold := color.New(color.Bold).SprintFunc()
	fmt.Fprintf(f.writer, "%s %s -> %s\n\n", bold("apismoke"), version, baseURL)
}
