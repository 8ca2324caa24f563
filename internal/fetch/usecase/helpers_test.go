package usecase_test

import (
	"context"
	"sync/atomic"
	"time"

	"pronote-gateway/internal/fetch"
	"pronote-gateway/internal/fetch/usecase"
	"pronote-gateway/pkg/pronote"
)

// mockLogger discards everything.
type mockLogger struct{}

func (mockLogger) Debug(context.Context, ...any)          {}
func (mockLogger) Debugf(context.Context, string, ...any) {}
func (mockLogger) Info(context.Context, ...any)           {}
func (mockLogger) Infof(context.Context, string, ...any)  {}
func (mockLogger) Warn(context.Context, ...any)           {}
func (mockLogger) Warnf(context.Context, string, ...any)  {}
func (mockLogger) Error(context.Context, ...any)          {}
func (mockLogger) Errorf(context.Context, string, ...any) {}

// mockSession serves canned records with optional injected delays and
// faults, honoring context cancellation like the real client.
type mockSession struct {
	periods  []pronote.Period
	lessons  []pronote.Lesson
	homework []pronote.Homework

	periodsDelay  time.Duration
	lessonsDelay  time.Duration
	homeworkDelay time.Duration

	periodsErr  error
	lessonsErr  error
	homeworkErr error

	periodsCalls  atomic.Int32
	lessonsCalls  atomic.Int32
	homeworkCalls atomic.Int32
	closed        atomic.Bool
}

func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	select {
	case <-time.After(d):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *mockSession) Periods(ctx context.Context) ([]pronote.Period, error) {
	m.periodsCalls.Add(1)
	if err := wait(ctx, m.periodsDelay); err != nil {
		return nil, err
	}
	return m.periods, m.periodsErr
}

func (m *mockSession) Lessons(ctx context.Context, start, end time.Time, includeContent bool) ([]pronote.Lesson, error) {
	m.lessonsCalls.Add(1)
	if err := wait(ctx, m.lessonsDelay); err != nil {
		return nil, err
	}
	return m.lessons, m.lessonsErr
}

func (m *mockSession) Homework(ctx context.Context, start, end time.Time) ([]pronote.Homework, error) {
	m.homeworkCalls.Add(1)
	if err := wait(ctx, m.homeworkDelay); err != nil {
		return nil, err
	}
	return m.homework, m.homeworkErr
}

func (m *mockSession) Close() { m.closed.Store(true) }

// mockPortal hands out its session after an optional delay or fault.
type mockPortal struct {
	session    *mockSession
	loginDelay time.Duration
	loginErr   error
	loginCalls atomic.Int32
	url        string
}

func (m *mockPortal) Login(ctx context.Context, username, password string) (pronote.Session, error) {
	m.loginCalls.Add(1)
	if err := wait(ctx, m.loginDelay); err != nil {
		return nil, err
	}
	if m.loginErr != nil {
		return nil, m.loginErr
	}
	return m.session, nil
}

func (m *mockPortal) SchoolURL() string {
	if m.url != "" {
		return m.url
	}
	return "https://school.example/pronote"
}

func testBudgets() usecase.Budgets {
	return usecase.Budgets{
		Login:    500 * time.Millisecond,
		Notes:    500 * time.Millisecond,
		Lessons:  500 * time.Millisecond,
		Next7:    500 * time.Millisecond,
		Homework: 500 * time.Millisecond,
	}
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func testInput() fetch.Input {
	return fetch.Input{Username: "u", Password: "p", Days: 7}
}
