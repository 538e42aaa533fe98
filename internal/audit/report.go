// Package audit checks a generated site against an SEO and accessibility
// checklist and reports pass, fail and warning results.
package audit

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/samber/lo"
)

// Status is the outcome of a single check.
type Status int

const (
	// StatusPass means the check was satisfied.
	StatusPass Status = iota
	// StatusFail means the generated output diverges from what the site
	// requires. Any fail makes the audit exit non-zero.
	StatusFail
	// StatusWarn is a best-practice miss. Warnings never change the exit
	// status.
	StatusWarn
)

// String returns the status label.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	case StatusWarn:
		return "WARN"
	default:
		return "UNKNOWN"
	}
}

// Result is one recorded check outcome.
type Result struct {
	Status  Status
	Page    string // empty for site-level checks
	Message string
}

var (
	passLabel = color.New(color.FgGreen, color.Bold)
	failLabel = color.New(color.FgRed, color.Bold)
	warnLabel = color.New(color.FgYellow, color.Bold)
	heading   = color.New(color.FgCyan, color.Bold)
)

const ruleWidth = 60

// Report accumulates check results in the order they are recorded and
// streams each one as a line to its writer.
type Report struct {
	out     io.Writer
	page    string
	results []Result
}

// NewReport creates a report that writes lines to out. A nil writer
// discards output.
func NewReport(out io.Writer) *Report {
	if out == nil {
		out = io.Discard
	}
	return &Report{out: out}
}

// Section writes a section header.
func (r *Report) Section(title string) {
	rule := strings.Repeat("=", ruleWidth)
	fmt.Fprintf(r.out, "\n%s\n  %s\n%s\n", rule, heading.Sprint(title), rule)
}

// Page marks the start of a page's checks. Results recorded afterwards are
// attributed to name.
func (r *Report) Page(name string) {
	r.page = name
	fmt.Fprintf(r.out, "\nTesting: %s\n", name)
}

// Infof writes an informational line that is not a check result.
func (r *Report) Infof(format string, args ...any) {
	fmt.Fprintf(r.out, format+"\n", args...)
}

// Pass records a satisfied check.
func (r *Report) Pass(format string, args ...any) {
	r.record(StatusPass, fmt.Sprintf(format, args...))
}

// Fail records a failed check.
func (r *Report) Fail(format string, args ...any) {
	r.record(StatusFail, fmt.Sprintf(format, args...))
}

// Warn records an advisory deviation.
func (r *Report) Warn(format string, args ...any) {
	r.record(StatusWarn, fmt.Sprintf(format, args...))
}

func (r *Report) record(status Status, msg string) {
	r.results = append(r.results, Result{Status: status, Page: r.page, Message: msg})

	var label string
	switch status {
	case StatusPass:
		label = passLabel.Sprint(status)
	case StatusFail:
		label = failLabel.Sprint(status)
	default:
		label = warnLabel.Sprint(status)
	}
	fmt.Fprintf(r.out, "%s  %s\n", label, msg)
}

// Results returns the recorded results in order.
func (r *Report) Results() []Result {
	return append([]Result(nil), r.results...)
}

// Count returns the number of results with the given status.
func (r *Report) Count(status Status) int {
	return lo.CountBy(r.results, func(res Result) bool { return res.Status == status })
}

// Failures returns the number of failed checks.
func (r *Report) Failures() int {
	return r.Count(StatusFail)
}

// Warnings returns the warning results in order.
func (r *Report) Warnings() []Result {
	return lo.Filter(r.results, func(res Result, _ int) bool { return res.Status == StatusWarn })
}

// Passed reports whether no check failed.
func (r *Report) Passed() bool {
	return r.Failures() == 0
}

// ExitCode returns 0 if no check failed and 1 otherwise. Warnings do not
// affect it.
func (r *Report) ExitCode() int {
	if r.Passed() {
		return 0
	}
	return 1
}

// WriteSummary writes the overall outcome and a numbered list of warnings.
func (r *Report) WriteSummary() {
	r.Section("Test Summary")
	if r.Passed() {
		fmt.Fprintf(r.out, "%s  All SEO checks passed (%d passed)\n", passLabel.Sprint(StatusPass), r.Count(StatusPass))
	} else {
		fmt.Fprintf(r.out, "%s  %d check(s) failed. Review the output above.\n", failLabel.Sprint(StatusFail), r.Failures())
	}

	warnings := r.Warnings()
	if len(warnings) == 0 {
		fmt.Fprintln(r.out, "No warnings found.")
		return
	}

	fmt.Fprintf(r.out, "\n%s  %d warning(s):\n", warnLabel.Sprint(StatusWarn), len(warnings))
	for i, w := range warnings {
		if w.Page != "" {
			fmt.Fprintf(r.out, "  %d. %s: %s\n", i+1, w.Page, w.Message)
		} else {
			fmt.Fprintf(r.out, "  %d. %s\n", i+1, w.Message)
		}
	}
	fmt.Fprintln(r.out, "\nWarnings do not fail the build but should be reviewed.")
}
