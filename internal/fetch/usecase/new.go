package usecase

import (
	"time"

	"pronote-gateway/internal/telemetry"
	pkgLog "pronote-gateway/pkg/log"
	"pronote-gateway/pkg/pronote"
	"pronote-gateway/pkg/timebox"
)

// Budgets carries the per-operation deadlines, threaded in explicitly at
// construction time.
type Budgets struct {
	Login    time.Duration
	Notes    time.Duration
	Lessons  time.Duration
	Next7    time.Duration
	Homework time.Duration
}

type implUseCase struct {
	l       pkgLog.Logger
	portal  pronote.Authenticator
	runner  *timebox.Runner
	metrics *telemetry.Metrics

	budgets        Budgets
	mock           bool
	includeContent bool

	now func() time.Time
}

// New creates a new fetch UseCase instance. portal may be nil when mock
// is set; metrics may be nil when telemetry is disabled. runner is
// shared across requests so worker capacity stays bounded.
func New(
	l pkgLog.Logger,
	portal pronote.Authenticator,
	runner *timebox.Runner,
	metrics *telemetry.Metrics,
	budgets Budgets,
	mock bool,
	includeContent bool,
) *implUseCase {
	return &implUseCase{
		l:              l,
		portal:         portal,
		runner:         runner,
		metrics:        metrics,
		budgets:        budgets,
		mock:           mock,
		includeContent: includeContent,
		now:            time.Now,
	}
}

// Mock reports whether the upstream bypass mode is active.
func (uc *implUseCase) Mock() bool { return uc.mock }

// IncludeContent reports whether detailed lesson content is fetched.
func (uc *implUseCase) IncludeContent() bool { return uc.includeContent }
