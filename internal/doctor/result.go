// Package doctor runs health checks against a swinstall_stack manifest.
package doctor

// Status is the outcome of a single check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusWarn Status = "WARN"
	StatusFail Status = "FAIL"
)

// Result is one line of check output.
type Result struct {
	Status         Status `json:"status"`
	CheckName      string `json:"check"`
	Message        string `json:"message"`
	Recommendation string `json:"recommendation,omitempty"`
}

// HasFailure reports whether any result is a warning or failure.
func HasFailure(results []Result) bool {
	for _, r := range results {
		if r.Status != StatusOK {
			return true
		}
	}
	return false
}
