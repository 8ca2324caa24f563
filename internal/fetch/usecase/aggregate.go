package usecase

import (
	"context"
	"sync"
	"time"

	"pronote-gateway/internal/fetch"
	"pronote-gateway/pkg/pronote"
	"pronote-gateway/pkg/timebox"
)

// taskSpec is one named, deadline-bound unit of work bound to the
// request's session and ranges.
type taskSpec struct {
	name   string
	budget time.Duration
	run    func(ctx context.Context) (any, error)
}

// taskSpecs is the fixed set for one request. Names are the envelope
// keys; order only determines iteration, not completion.
func (uc *implUseCase) taskSpecs(session pronote.Session, past, next7 fetch.DateRange) []taskSpec {
	return []taskSpec{
		{
			name:   fetch.TaskNotes,
			budget: uc.budgets.Notes,
			run: func(ctx context.Context) (any, error) {
				return uc.buildNotes(ctx, session)
			},
		},
		{
			name:   fetch.TaskLessons,
			budget: uc.budgets.Lessons,
			run: func(ctx context.Context) (any, error) {
				return uc.buildLessons(ctx, session, past)
			},
		},
		{
			name:   fetch.TaskLessonsNext7,
			budget: uc.budgets.Next7,
			run: func(ctx context.Context) (any, error) {
				return uc.buildLessons(ctx, session, next7)
			},
		},
		{
			name:   fetch.TaskHomeworkNext7,
			budget: uc.budgets.Homework,
			run: func(ctx context.Context) (any, error) {
				return uc.buildHomework(ctx, session, next7)
			},
		},
	}
}

// aggregate dispatches all tasks concurrently against the shared
// session and merges the outcomes into one envelope. No individual
// outcome can fail the aggregation: non-success tasks contribute their
// empty default plus a status/error entry.
func (uc *implUseCase) aggregate(ctx context.Context, session pronote.Session, past, next7 fetch.DateRange) fetch.Envelope {
	specs := uc.taskSpecs(session, past, next7)

	var (
		mu       sync.Mutex
		outcomes = make(map[string]timebox.Outcome, len(specs))
		wg       sync.WaitGroup
	)
	for _, spec := range specs {
		wg.Add(1)
		go func(spec taskSpec) {
			defer wg.Done()
			out := uc.runner.Run(ctx, spec.budget, spec.run)
			mu.Lock()
			outcomes[spec.name] = out
			mu.Unlock()
		}(spec)
	}
	wg.Wait()

	env := fetch.NewEnvelope(uc.schoolURL(), past, next7, uc.includeContent)
	for _, spec := range specs {
		out := outcomes[spec.name]
		env.Meta.Status[spec.name] = string(out.Status)
		env.Meta.Timing[spec.name] = roundSeconds(out.Elapsed)
		uc.recordTask(ctx, spec.name, out.Status)

		switch out.Status {
		case timebox.StatusOK:
			assignPayload(&env, spec.name, out.Value)
		case timebox.StatusTimeout:
			env.Meta.Errors[spec.name] = timeoutText(spec.budget)
			uc.l.Warnf(ctx, "task %s exceeded %s budget", spec.name, spec.budget)
		case timebox.StatusError:
			env.Meta.Errors[spec.name] = out.Err.Error()
			uc.l.Warnf(ctx, "task %s failed: %v", spec.name, out.Err)
		}
	}
	return env
}

func assignPayload(env *fetch.Envelope, name string, value any) {
	switch name {
	case fetch.TaskNotes:
		env.Notes = value.(fetch.NotesPayload)
	case fetch.TaskLessons:
		env.Lessons = value.(fetch.LessonsPayload)
	case fetch.TaskLessonsNext7:
		env.LessonsNext7 = value.(fetch.LessonsPayload)
	case fetch.TaskHomeworkNext7:
		env.HomeworkNext7 = value.(fetch.HomeworkPayload)
	}
}
