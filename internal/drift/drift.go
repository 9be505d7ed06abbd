// Package drift compares an installed file against the artifact its
// swinstall_stack says is current.
package drift

import (
	"fmt"
	"os"
	"strings"

	"github.com/aymanbagabas/go-udiff"

	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/messages"
)

// DefaultMaxLines caps the rendered diff when callers pass zero.
const DefaultMaxLines = 200

var readFileFunc = os.ReadFile

// Report is the outcome of one comparison.
type Report struct {
	WorkingPath  string              `json:"working_path"`
	ArtifactPath string              `json:"artifact_path"`
	Entry        manifest.StackEntry `json:"entry"`
	Identical    bool                `json:"identical"`
	UnifiedDiff  string              `json:"diff,omitempty"`
	Truncated    bool                `json:"truncated,omitempty"`
}

// Compare resolves stackPath with q and diffs the current artifact (old side)
// against the versionless working file (new side).
func Compare(q manifest.Query, stackPath string, maxLines int) (Report, error) {
	working, err := manifest.VersionlessFromStack(stackPath)
	if err != nil {
		return Report{}, err
	}
	entry, err := q.Current(stackPath)
	if err != nil {
		return Report{}, err
	}
	report := Report{WorkingPath: working, ArtifactPath: entry.Path, Entry: entry}

	artifact, err := readFileFunc(entry.Path)
	if err != nil {
		return report, fmt.Errorf(messages.DriftReadFailedFmt, entry.Path, err)
	}
	current, err := readFileFunc(working)
	if err != nil {
		return report, fmt.Errorf(messages.DriftReadFailedFmt, working, err)
	}
	if string(artifact) == string(current) {
		report.Identical = true
		return report, nil
	}
	report.UnifiedDiff, report.Truncated = renderTruncated(entry.Path, working, string(artifact), string(current), maxLines)
	return report, nil
}

func renderTruncated(fromName string, toName string, fromContent string, toContent string, maxLines int) (string, bool) {
	limit := maxLines
	if limit <= 0 {
		limit = DefaultMaxLines
	}
	diff := udiff.Unified(fromName, toName, fromContent, toContent)
	lines := splitLines(diff)
	if len(lines) <= limit {
		return ensureTrailingNewline(strings.Join(lines, "\n")), false
	}
	truncated := append(lines[:limit:limit], fmt.Sprintf(messages.DriftTruncatedFmt, limit))
	return ensureTrailingNewline(strings.Join(truncated, "\n")), true
}

func splitLines(content string) []string {
	trimmed := strings.TrimRight(content, "\n")
	if trimmed == "" {
		return []string{}
	}
	return strings.Split(trimmed, "\n")
}

func ensureTrailingNewline(content string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
