package usecase

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"

	"pronote-gateway/internal/fetch"
	"pronote-gateway/pkg/pronote"
	"pronote-gateway/pkg/timebox"
)

// Fetch authenticates against the portal and aggregates the four fetch
// tasks into one envelope.
//
// A login *timeout* degrades softly: the caller gets a best-effort
// envelope with empty payloads and a "login" entry in meta.status and
// meta.errors, because a slow portal should not turn into a hard
// failure for data the frontend can retry. Rejected credentials and
// other handshake faults stay request-fatal typed errors.
func (uc *implUseCase) Fetch(ctx context.Context, input fetch.Input) (fetch.Envelope, error) {
	t0 := uc.now()

	if uc.metrics != nil {
		var span trace.Span
		ctx, span = uc.metrics.Tracer.Start(ctx, "pronote.fetch")
		defer span.End()
	}

	past, next7, err := computeRanges(t0, input)
	if err != nil {
		return fetch.Envelope{}, err
	}

	if uc.mock {
		return uc.mockEnvelope(past, next7, t0), nil
	}

	// Session acquisition under its own budget. The session is owned by
	// this request alone and released at return no matter the outcome.
	out := uc.runner.Run(ctx, uc.budgets.Login, func(ctx context.Context) (any, error) {
		return uc.portal.Login(ctx, input.Username, input.Password)
	})

	switch out.Status {
	case timebox.StatusTimeout:
		uc.l.Warnf(ctx, "portal login exceeded %s budget", uc.budgets.Login)
		return uc.loginTimeoutEnvelope(past, next7, t0), nil
	case timebox.StatusError:
		uc.l.Errorf(ctx, "portal login failed: %v", out.Err)
		return fetch.Envelope{}, mapLoginErr(out.Err)
	}

	session := out.Value.(pronote.Session)
	defer session.Close()

	env := uc.aggregate(ctx, session, past, next7)

	total := time.Since(t0)
	env.Meta.Timing[fetch.TimingKeyTotal] = roundSeconds(total)

	if uc.metrics != nil {
		uc.metrics.FetchDuration.Record(ctx, total.Seconds())
	}
	uc.l.Infof(ctx, "fetch aggregated in %.3fs (login %.3fs)", total.Seconds(), out.Elapsed.Seconds())

	return env, nil
}

// mockEnvelope is the canned all-ok response served when the upstream
// bypass flag is set.
func (uc *implUseCase) mockEnvelope(past, next7 fetch.DateRange, t0 time.Time) fetch.Envelope {
	env := fetch.NewEnvelope(uc.schoolURL(), past, next7, uc.includeContent)
	for _, name := range []string{fetch.TaskNotes, fetch.TaskLessons, fetch.TaskLessonsNext7, fetch.TaskHomeworkNext7} {
		env.Meta.Status[name] = string(timebox.StatusOK)
	}
	env.Meta.Timing[fetch.TimingKeyTotal] = roundSeconds(time.Since(t0))
	return env
}

// loginTimeoutEnvelope is the best-effort response when the handshake
// itself overran: empty payloads, no task attempted.
func (uc *implUseCase) loginTimeoutEnvelope(past, next7 fetch.DateRange, t0 time.Time) fetch.Envelope {
	env := fetch.NewEnvelope(uc.schoolURL(), past, next7, uc.includeContent)
	env.Meta.Status[fetch.StatusKeyLogin] = timeoutText(uc.budgets.Login)
	env.Meta.Errors[fetch.StatusKeyLogin] = timeoutText(uc.budgets.Login)
	env.Meta.Timing[fetch.TimingKeyTotal] = roundSeconds(time.Since(t0))
	return env
}

func (uc *implUseCase) recordTask(ctx context.Context, name string, status timebox.Status) {
	if uc.metrics == nil {
		return
	}
	uc.metrics.TasksTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("task", name),
		attribute.String("status", string(status)),
	))
}
