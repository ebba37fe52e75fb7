package result

import "fmt"

// Status represents the outcome of an operation.
type Status string

const (
	StatusOK   Status = "OK"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single write or verification.
type Result struct {
	Name    string   // e.g., "ffx-env: out/env.json", "verify: out/env.json"
	Status  Status   // OK or FAIL
	Details []string // human-readable details
	Err     error    // underlying error for failures
}

// OK returns true if the operation succeeded.
func (r Result) OK() bool {
	return r.Status == StatusOK
}

// Fail marks the result failed with a detail message and the causing error.
func (r *Result) Fail(detail string, err error) Result {
	r.Status = StatusFail
	r.Details = append(r.Details, detail)
	r.Err = err
	return *r
}

// Wrapf marks the result failed, wrapping err with a formatted message.
// The wrapped error stays reachable through errors.Is and errors.As.
func (r *Result) Wrapf(err error, format string, args ...any) Result {
	msg := fmt.Sprintf(format, args...)
	return r.Fail(fmt.Sprintf("%s: %v", msg, err), fmt.Errorf("%s: %w", msg, err))
}

// Failf marks the result failed with a formatted detail message.
func (r *Result) Failf(format string, args ...any) Result {
	return r.Fail(fmt.Sprintf(format, args...), fmt.Errorf(format, args...))
}

// AddDetail appends a detail line to the result.
func (r *Result) AddDetail(detail string) *Result {
	r.Details = append(r.Details, detail)
	return r
}

// AddDetailf appends a formatted detail line to the result.
func (r *Result) AddDetailf(format string, args ...any) *Result {
	return r.AddDetail(fmt.Sprintf(format, args...))
}
