package usecase_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"pronote-gateway/internal/fetch"
	"pronote-gateway/internal/fetch/usecase"
	"pronote-gateway/pkg/pronote"
	"pronote-gateway/pkg/timebox"
)

func newTestUseCase(portal *mockPortal) fetch.UseCase {
	return usecase.New(mockLogger{}, portal, timebox.NewRunner(8), nil, testBudgets(), false, false)
}

func sampleSession() *mockSession {
	return &mockSession{
		periods: []pronote.Period{{
			Name: "Trimestre 1",
			Grades: []pronote.Grade{
				{Date: datePtr(2025, 9, 12), Subject: pronote.Subject{Name: "Maths", Code: "MATH"}, Value: "15,5", OutOf: "20", Coefficient: "1"},
				{Date: datePtr(2025, 9, 10), Subject: pronote.Subject{Name: "Histoire"}, Value: "abs", OutOf: "20"},
			},
		}},
		lessons: []pronote.Lesson{{
			Start:     time.Date(2025, 9, 10, 8, 0, 0, 0, time.UTC),
			End:       time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC),
			Subject:   pronote.Subject{Name: "Maths", Code: "MATH"},
			Classroom: "B204",
		}},
		homework: nil,
	}
}

func TestFetch(t *testing.T) {
	t.Run("End To End OK", func(t *testing.T) {
		portal := &mockPortal{session: sampleSession()}
		uc := newTestUseCase(portal)

		env, err := uc.Fetch(context.Background(), testInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(env.Notes.Periods) != 1 || len(env.Notes.Periods[0].Grades) != 2 {
			t.Fatalf("unexpected notes shape: %+v", env.Notes)
		}
		grades := env.Notes.Periods[0].Grades
		if grades[0].Date == nil || *grades[0].Date != "2025-09-10" {
			t.Errorf("grades not sorted by date ascending: %+v", grades)
		}
		if grades[1].Value == nil || *grades[1].Value != 15.5 {
			t.Errorf("comma decimal not parsed: %+v", grades[1].Value)
		}
		if grades[0].Value != nil {
			t.Errorf("absence marker should normalize to null, got %v", *grades[0].Value)
		}

		if len(env.Lessons.Lessons) != 1 {
			t.Fatalf("expected 1 past lesson, got %d", len(env.Lessons.Lessons))
		}
		if env.Lessons.Lessons[0].Start != "08:00" || env.Lessons.Lessons[0].End != "09:00" {
			t.Errorf("unexpected lesson clock: %+v", env.Lessons.Lessons[0])
		}
		if env.HomeworkNext7.Homework == nil || len(env.HomeworkNext7.Homework) != 0 {
			t.Errorf("empty homework must stay an empty collection: %+v", env.HomeworkNext7)
		}

		for _, name := range []string{fetch.TaskNotes, fetch.TaskLessons, fetch.TaskLessonsNext7, fetch.TaskHomeworkNext7} {
			if env.Meta.Status[name] != "ok" {
				t.Errorf("status[%s] = %q, want ok", name, env.Meta.Status[name])
			}
			if _, present := env.Meta.Errors[name]; present {
				t.Errorf("errors[%s] must be absent on success", name)
			}
			if _, present := env.Meta.Timing[name]; !present {
				t.Errorf("timing[%s] missing", name)
			}
		}
		if _, present := env.Meta.Timing[fetch.TimingKeyTotal]; !present {
			t.Error("timing total missing")
		}
		if !portal.session.closed.Load() {
			t.Error("session must be released at request end")
		}
	})

	t.Run("Default Ranges", func(t *testing.T) {
		portal := &mockPortal{session: sampleSession()}
		uc := newTestUseCase(portal)

		env, err := uc.Fetch(context.Background(), testInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		now := time.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		if env.Meta.RangePast.End != today.Format("2006-01-02") {
			t.Errorf("past range should end today, got %s", env.Meta.RangePast.End)
		}
		if env.Meta.RangePast.Start != today.AddDate(0, 0, -7).Format("2006-01-02") {
			t.Errorf("past range should start 7 days back, got %s", env.Meta.RangePast.Start)
		}
		if env.Meta.RangeNext7.Start != today.Format("2006-01-02") ||
			env.Meta.RangeNext7.End != today.AddDate(0, 0, 7).Format("2006-01-02") {
			t.Errorf("unexpected next7 range: %+v", env.Meta.RangeNext7)
		}
	})

	t.Run("Explicit Range Verbatim", func(t *testing.T) {
		portal := &mockPortal{session: sampleSession()}
		uc := newTestUseCase(portal)

		input := testInput()
		input.Start, input.End = "2025-09-01", "2025-09-15"
		env, err := uc.Fetch(context.Background(), input)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if env.Meta.RangePast.Start != "2025-09-01" || env.Meta.RangePast.End != "2025-09-15" {
			t.Errorf("explicit range not echoed verbatim: %+v", env.Meta.RangePast)
		}
	})

	t.Run("Bad Range Input", func(t *testing.T) {
		uc := newTestUseCase(&mockPortal{session: sampleSession()})

		input := testInput()
		input.Start, input.End = "not-a-date", "2025-09-15"
		_, err := uc.Fetch(context.Background(), input)
		if !errors.Is(err, fetch.ErrBadDateRange) {
			t.Fatalf("expected ErrBadDateRange, got %v", err)
		}
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		session := sampleSession()
		portal := &mockPortal{session: session, loginErr: pronote.ErrInvalidCredentials}
		uc := newTestUseCase(portal)

		_, err := uc.Fetch(context.Background(), testInput())
		if !errors.Is(err, fetch.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
		if session.periodsCalls.Load() != 0 || session.lessonsCalls.Load() != 0 || session.homeworkCalls.Load() != 0 {
			t.Error("no task may run when the session was never acquired")
		}
	})

	t.Run("Version Mismatch", func(t *testing.T) {
		portal := &mockPortal{session: sampleSession(), loginErr: pronote.ErrVersionMismatch}
		uc := newTestUseCase(portal)

		_, err := uc.Fetch(context.Background(), testInput())
		if !errors.Is(err, fetch.ErrVersionMismatch) {
			t.Fatalf("expected ErrVersionMismatch, got %v", err)
		}
	})

	t.Run("Upstream Fault", func(t *testing.T) {
		portal := &mockPortal{session: sampleSession(), loginErr: errors.New("tls handshake broke")}
		uc := newTestUseCase(portal)

		_, err := uc.Fetch(context.Background(), testInput())
		if !errors.Is(err, fetch.ErrUpstream) {
			t.Fatalf("expected ErrUpstream, got %v", err)
		}
	})

	t.Run("Login Timeout Best Effort Envelope", func(t *testing.T) {
		portal := &mockPortal{session: sampleSession(), loginDelay: 300 * time.Millisecond}
		budgets := testBudgets()
		budgets.Login = 30 * time.Millisecond
		uc := usecase.New(mockLogger{}, portal, timebox.NewRunner(8), nil, budgets, false, false)

		env, err := uc.Fetch(context.Background(), testInput())
		if err != nil {
			t.Fatalf("login timeout must degrade softly, got error %v", err)
		}
		if _, present := env.Meta.Errors[fetch.StatusKeyLogin]; !present {
			t.Error("expected login entry in meta.errors")
		}
		if !strings.Contains(env.Meta.Errors[fetch.StatusKeyLogin], "timeout>") {
			t.Errorf("login error should mention the budget: %q", env.Meta.Errors[fetch.StatusKeyLogin])
		}
		if len(env.Notes.Periods) != 0 || len(env.Lessons.Lessons) != 0 {
			t.Error("best-effort envelope must carry empty payloads")
		}
	})

	t.Run("Mock Mode Bypasses Portal", func(t *testing.T) {
		uc := usecase.New(mockLogger{}, nil, timebox.NewRunner(8), nil, testBudgets(), true, false)

		env, err := uc.Fetch(context.Background(), testInput())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if env.Meta.SchoolURL != "MOCK" {
			t.Errorf("mock envelope school_url = %q", env.Meta.SchoolURL)
		}
		for _, name := range []string{fetch.TaskNotes, fetch.TaskLessons, fetch.TaskLessonsNext7, fetch.TaskHomeworkNext7} {
			if env.Meta.Status[name] != "ok" {
				t.Errorf("mock status[%s] = %q", name, env.Meta.Status[name])
			}
		}
	})

	t.Run("Idempotent Data Fields", func(t *testing.T) {
		run := func() fetch.Envelope {
			uc := newTestUseCase(&mockPortal{session: sampleSession()})
			env, err := uc.Fetch(context.Background(), fetch.Input{
				Username: "u", Password: "p", Start: "2025-09-01", End: "2025-09-15",
			})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			env.Meta.Timing = nil // timing naturally varies
			return env
		}

		a, _ := json.Marshal(run())
		b, _ := json.Marshal(run())
		if string(a) != string(b) {
			t.Errorf("data fields differ across identical runs:\n%s\n%s", a, b)
		}
	})
}

func TestProbeLogin(t *testing.T) {
	t.Run("OK", func(t *testing.T) {
		session := sampleSession()
		uc := newTestUseCase(&mockPortal{session: session})

		out, err := uc.ProbeLogin(context.Background(), "u", "p")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.OK || !out.LoggedIn {
			t.Errorf("unexpected probe output: %+v", out)
		}
		if !session.closed.Load() {
			t.Error("probe must release the session")
		}
	})

	t.Run("Mock", func(t *testing.T) {
		uc := usecase.New(mockLogger{}, nil, timebox.NewRunner(8), nil, testBudgets(), true, false)
		out, err := uc.ProbeLogin(context.Background(), "u", "p")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.OK || !out.Mock {
			t.Errorf("unexpected probe output: %+v", out)
		}
	})

	t.Run("Timeout", func(t *testing.T) {
		budgets := testBudgets()
		budgets.Login = 20 * time.Millisecond
		portal := &mockPortal{session: sampleSession(), loginDelay: 200 * time.Millisecond}
		uc := usecase.New(mockLogger{}, portal, timebox.NewRunner(8), nil, budgets, false, false)

		_, err := uc.ProbeLogin(context.Background(), "u", "p")
		if !errors.Is(err, fetch.ErrLoginTimeout) {
			t.Fatalf("expected ErrLoginTimeout, got %v", err)
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		uc := newTestUseCase(&mockPortal{session: sampleSession(), loginErr: pronote.ErrInvalidCredentials})
		_, err := uc.ProbeLogin(context.Background(), "u", "p")
		if !errors.Is(err, fetch.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}
