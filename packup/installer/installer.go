// Package installer performs idempotent, fallback-ordered package
// installation: it walks the catalog's candidate backends in priority order,
// skips the unavailable ones, never installs what is already present, and
// only reports failure once every candidate has been tried.
package installer

import (
	"context"
	"fmt"

	multierror "github.com/hashicorp/go-multierror"

	"github.com/m-217/packup/logger"
	pm "github.com/m-217/packup/packup/packagemanager"
	"github.com/m-217/packup/packup/probe"
)

// State is the terminal result of one orchestration call.
type State string

const (
	StateAlreadyPresent State = "already-present"
	StateInstalled      State = "installed"
	StateFailed         State = "failed"
)

// AttemptStatus records what happened at a single backend during the walk.
type AttemptStatus string

const (
	AttemptUnavailable    AttemptStatus = "backend-unavailable"
	AttemptAlreadyPresent AttemptStatus = "already-present"
	AttemptInstalled      AttemptStatus = "installed"
	AttemptInstallFailed  AttemptStatus = "install-failed"
)

// Attempt is one step of the fallback walk. Err is set for install failures
// and inconclusive existence checks.
type Attempt struct {
	Backend string
	Status  AttemptStatus
	Err     error
}

// Outcome is the immutable result of ensuring one package. Backend names the
// backend that settled the request and is empty when State is StateFailed;
// Attempts preserves the walk order for diagnostics.
type Outcome struct {
	Package  string
	Backend  string
	State    State
	Attempts []Attempt
	Err      error
}

// PackageRef is a package request. The same logical package can carry
// different names per manager (ripgrep vs rg); Overrides maps a manager name
// to the name that manager knows.
type PackageRef struct {
	Name      string
	Overrides map[string]string
}

// Ref is a convenience constructor for an un-aliased request.
func Ref(name string) PackageRef {
	return PackageRef{Name: name}
}

// NameFor resolves the manager-scoped package name.
func (r PackageRef) NameFor(manager string) string {
	if alias, ok := r.Overrides[manager]; ok && alias != "" {
		return alias
	}
	return r.Name
}

// Orchestrator walks candidate backends for each requested package. The walk
// is strictly sequential: an install attempt may mutate host state, and an
// early success must pre-empt every later candidate.
type Orchestrator struct {
	backends []pm.Backend
	prober   probe.Prober
	log      logger.Logger
}

// New builds an orchestrator. Candidate backends are tried in slice order.
func New(backends []pm.Backend, prober probe.Prober, log logger.Logger) *Orchestrator {
	if log == nil {
		log = logger.Nop{}
	}
	return &Orchestrator{backends: backends, prober: prober, log: log}
}

// Ensure makes sure ref is installed under the first candidate backend that
// can satisfy it. Exactly one mutating install command runs per backend
// tried, and none at all when the package is already present.
func (o *Orchestrator) Ensure(ctx context.Context, ref PackageRef) Outcome {
	outcome := Outcome{Package: ref.Name, State: StateFailed}
	var failures *multierror.Error

	for _, backend := range o.backends {
		name := backend.Name()
		pkg := ref.NameFor(name)

		if !o.prober.Available(backend.Executable()) {
			o.log.Debug("backend unavailable", "backend", name, "package", pkg)
			outcome.Attempts = append(outcome.Attempts, Attempt{Backend: name, Status: AttemptUnavailable})
			continue
		}

		present, err := backend.Exists(ctx, pkg)
		if err != nil {
			// An inconclusive index query is treated as "not found":
			// the install attempt below settles it either way.
			o.log.Warn("existence check inconclusive", "backend", name, "package", pkg, "error", err)
		}
		if present {
			o.log.Info("package already present", "backend", name, "package", pkg)
			outcome.Attempts = append(outcome.Attempts, Attempt{Backend: name, Status: AttemptAlreadyPresent})
			outcome.Backend = name
			outcome.State = StateAlreadyPresent
			return outcome
		}

		if installErr := backend.Install(ctx, pkg); installErr != nil {
			o.log.Warn("install failed, trying next backend", "backend", name, "package", pkg, "error", installErr)
			outcome.Attempts = append(outcome.Attempts, Attempt{Backend: name, Status: AttemptInstallFailed, Err: installErr})
			failures = multierror.Append(failures, fmt.Errorf("%s: %w", name, installErr))
			continue
		}

		o.log.Info("package installed", "backend", name, "package", pkg)
		outcome.Attempts = append(outcome.Attempts, Attempt{Backend: name, Status: AttemptInstalled})
		outcome.Backend = name
		outcome.State = StateInstalled
		return outcome
	}

	if failures == nil {
		failures = multierror.Append(failures, fmt.Errorf("no available backend recognizes %q", ref.Name))
	}
	outcome.Err = fmt.Errorf("all backends exhausted for %q: %w", ref.Name, failures.ErrorOrNil())
	o.log.Error("all backends exhausted", "package", ref.Name, "error", outcome.Err)
	return outcome
}

// EnsureAll ensures each ref in turn and returns one outcome per request.
func (o *Orchestrator) EnsureAll(ctx context.Context, refs []PackageRef) []Outcome {
	outcomes := make([]Outcome, 0, len(refs))
	for _, ref := range refs {
		outcomes = append(outcomes, o.Ensure(ctx, ref))
	}
	return outcomes
}
