package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/vertti/make-ffx-env/pkg/result"
)

var (
	green = "\033[32m"
	red   = "\033[31m"
	dim   = "\033[2m"
	reset = "\033[0m"
)

// Results are written to stderr; stdout may carry the environment itself.
func init() {
	if !supportscolor.Stderr().SupportsColor {
		green, red, dim, reset = "", "", "", ""
	}
}

// PrintResult writes a result with colored status to w.
func PrintResult(w io.Writer, r result.Result) {
	indent := "     "
	if r.OK() {
		_, _ = fmt.Fprintf(w, "%s[OK]%s %s\n", green, reset, r.Name)
	} else {
		_, _ = fmt.Fprintf(w, "%s[FAIL]%s %s\n", red, reset, r.Name)
		indent = "       "
	}
	for _, d := range r.Details {
		_, _ = fmt.Fprintf(w, "%s%s\n", indent, formatLabel(d))
	}
}

// formatLabel dims the "label:" prefix of a detail line.
func formatLabel(detail string) string {
	label, rest, ok := strings.Cut(detail, ":")
	if !ok || dim == "" {
		return detail
	}
	return dim + label + ":" + reset + rest
}
