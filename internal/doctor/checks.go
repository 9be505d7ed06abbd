package doctor

import (
	"errors"
	"fmt"
	"os"
	"reflect"

	"github.com/conn-castle/swinst/internal/config"
	"github.com/conn-castle/swinst/internal/manifest"
	"github.com/conn-castle/swinst/internal/messages"
)

var (
	loadConfigFunc    = config.Load
	readFileFunc      = os.ReadFile
	statFunc          = os.Stat
	newDispatcherFunc = manifest.NewDispatcher
	backendNames      = []string{manifest.BackendDynamic, manifest.BackendStatic}
)

// CheckConfig loads the configuration at path. optional allows a missing file.
func CheckConfig(path string, optional bool) ([]Result, *config.Config) {
	cfg, err := loadConfigFunc(path, optional)
	if err != nil {
		return []Result{{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameConfig,
			Message:        fmt.Sprintf(messages.DoctorConfigLoadFailedFmt, err),
			Recommendation: messages.DoctorConfigLoadRecommend,
		}}, nil
	}
	return []Result{{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameConfig,
		Message:   fmt.Sprintf(messages.DoctorConfigLoadedFmt, path),
	}}, cfg
}

// backendOutcome is what one dispatcher made of the manifest.
type backendOutcome struct {
	name  string
	stack *manifest.InstallStack
	err   error
}

// CheckManifest runs the manifest checks in pipeline order. A failing stage
// stops the checks that depend on it.
func CheckManifest(path string, defaultSchema string) []Result {
	var results []Result

	data, err := readFileFunc(path)
	if err != nil {
		return append(results, Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameReadable,
			Message:        fmt.Sprintf(messages.DoctorReadFailedFmt, err),
			Recommendation: messages.DoctorReadRecommend,
		})
	}
	results = append(results, Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameReadable,
		Message:   fmt.Sprintf(messages.DoctorReadOKFmt, len(data)),
	})

	root, err := manifest.ReadTree(data)
	if err != nil {
		return append(results, Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSyntax,
			Message:        fmt.Sprintf(messages.DoctorSyntaxFailedFmt, err),
			Recommendation: messages.DoctorSyntaxRecommend,
		})
	}
	results = append(results, Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameSyntax,
		Message:   messages.DoctorSyntaxOK,
	})

	version, err := manifest.SniffWithDefault(root, defaultSchema)
	if err != nil {
		return append(results, Result{
			Status:         StatusFail,
			CheckName:      messages.DoctorCheckNameSchema,
			Message:        fmt.Sprintf(messages.DoctorSchemaFailedFmt, err),
			Recommendation: messages.DoctorSchemaRecommend,
		})
	}
	if _, err := manifest.Sniff(root); errors.Is(err, manifest.ErrMissingVersionAttribute) {
		results = append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameSchema,
			Message:        fmt.Sprintf(messages.DoctorSchemaDefaultedFmt, version),
			Recommendation: messages.DoctorSchemaDefaultedRec,
		})
	} else {
		results = append(results, Result{
			Status:    StatusOK,
			CheckName: messages.DoctorCheckNameSchema,
			Message:   fmt.Sprintf(messages.DoctorSchemaOKFmt, version),
		})
	}

	outcomes := make([]backendOutcome, 0, len(backendNames))
	for _, name := range backendNames {
		outcome := backendOutcome{name: name}
		d, err := newDispatcherFunc(name)
		if err == nil {
			outcome.stack, outcome.err = d.Parse(version, root)
		} else {
			outcome.err = err
		}
		outcomes = append(outcomes, outcome)
		results = append(results, decodeResult(outcome))
	}
	results = append(results, agreementResult(outcomes))

	var stack *manifest.InstallStack
	for _, o := range outcomes {
		if o.err == nil {
			stack = o.stack
			break
		}
	}
	if stack == nil {
		return results
	}

	current, err := manifest.Resolve(stack)
	if err != nil {
		status := StatusFail
		if errors.Is(err, manifest.ErrNoCurrentEntry) {
			status = StatusWarn
		}
		return append(results, Result{
			Status:         status,
			CheckName:      messages.DoctorCheckNameCurrent,
			Message:        fmt.Sprintf(messages.DoctorCurrentFailedFmt, err),
			Recommendation: messages.DoctorCurrentRecommend,
		})
	}
	results = append(results, Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameCurrent,
		Message:   fmt.Sprintf(messages.DoctorCurrentOKFmt, current.Sequence, current.Path),
	})

	if _, err := statFunc(current.Path); err != nil {
		return append(results, Result{
			Status:         StatusWarn,
			CheckName:      messages.DoctorCheckNameArtifact,
			Message:        fmt.Sprintf(messages.DoctorArtifactMissingFmt, current.Path),
			Recommendation: messages.DoctorArtifactRecommend,
		})
	}
	return append(results, Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameArtifact,
		Message:   fmt.Sprintf(messages.DoctorArtifactOKFmt, current.Path),
	})
}

func decodeResult(o backendOutcome) Result {
	name := fmt.Sprintf(messages.DoctorCheckNameDecodeFmt, o.name)
	if o.err != nil {
		return Result{
			Status:         StatusFail,
			CheckName:      name,
			Message:        fmt.Sprintf(messages.DoctorDecodeFailedFmt, manifest.KindOf(o.err), o.err),
			Recommendation: messages.DoctorDecodeRecommend,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: name,
		Message:   fmt.Sprintf(messages.DoctorDecodeOKFmt, o.stack.Len()),
	}
}

// agreementResult compares every backend against the first. Backends must
// produce the same stack, or fail with the same error kind.
func agreementResult(outcomes []backendOutcome) Result {
	allFailed := true
	for _, o := range outcomes {
		if o.err == nil {
			allFailed = false
		}
	}
	first := outcomes[0]
	for _, o := range outcomes[1:] {
		if reason := disagreement(first, o); reason != "" {
			return Result{
				Status:         StatusFail,
				CheckName:      messages.DoctorCheckNameAgreement,
				Message:        fmt.Sprintf(messages.DoctorAgreementFailedFmt, reason),
				Recommendation: messages.DoctorAgreementRecommend,
			}
		}
	}
	if allFailed {
		return Result{
			Status:    StatusWarn,
			CheckName: messages.DoctorCheckNameAgreement,
			Message:   messages.DoctorAgreementSkipped,
		}
	}
	return Result{
		Status:    StatusOK,
		CheckName: messages.DoctorCheckNameAgreement,
		Message:   messages.DoctorAgreementOK,
	}
}

func disagreement(a backendOutcome, b backendOutcome) string {
	kindA, kindB := manifest.KindOf(a.err), manifest.KindOf(b.err)
	if kindA != kindB {
		return fmt.Sprintf(messages.DoctorDisagreeResultFmt, a.name, kindA, b.name, kindB)
	}
	if a.err == nil && !reflect.DeepEqual(a.stack, b.stack) {
		return messages.DoctorDisagreeStacks
	}
	return ""
}
