package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/abdul-hamid-achik/apismoke/packages/suite"
)

// Formatter renders a finished run.
type Formatter interface {
	FormatHeader(version, baseURL string)
	FormatResult(result *suite.RunResult) error
	FormatError(err error)
}

// Formats lists the names accepted by New.
var Formats = []string{"console", "json", "junit"}

// New returns the formatter for name writing to w.
func New(name string, w io.Writer, verbose, noColor bool) (Formatter, error) {
	switch strings.ToLower(name) {
	case "", "console":
		return NewConsoleFormatter(WithWriter(w), WithVerbose(verbose), WithNoColor(noColor)), nil
	case "json":
		return NewJSONFormatter(JSONWithWriter(w)), nil
	case "junit":
		return NewJUnitFormatter(JUnitWithWriter(w)), nil
	}
	return nil, fmt.Errorf("unknown output format %q (want one of %s)", name, strings.Join(Formats, ", "))
}
