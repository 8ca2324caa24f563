package usecase_test

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"pronote-gateway/internal/fetch"
	"pronote-gateway/internal/fetch/usecase"
	"pronote-gateway/pkg/pronote"
	"pronote-gateway/pkg/timebox"
)

func fetchWith(t *testing.T, session *mockSession, includeContent bool) fetch.Envelope {
	t.Helper()
	uc := usecase.New(mockLogger{}, &mockPortal{session: session}, timebox.NewRunner(8), nil, testBudgets(), false, includeContent)
	env, err := uc.Fetch(context.Background(), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return env
}

func TestBuildNotes(t *testing.T) {
	t.Run("Undated Grades Sort First", func(t *testing.T) {
		session := &mockSession{periods: []pronote.Period{{
			Name: "Trimestre 1",
			Grades: []pronote.Grade{
				{Date: datePtr(2025, 9, 12), Subject: pronote.Subject{Name: "Maths", Code: "MATH"}, Value: "12"},
				{Date: nil, Subject: pronote.Subject{Name: "SVT"}, Value: "10"},
				{Date: datePtr(2025, 9, 10), Subject: pronote.Subject{Name: "Anglais"}, Value: "14"},
			},
		}}}

		env := fetchWith(t, session, false)
		grades := env.Notes.Periods[0].Grades
		if len(grades) != 3 {
			t.Fatalf("expected 3 grades, got %d", len(grades))
		}
		if grades[0].Date != nil {
			t.Errorf("undated grade must sort first, got %v", *grades[0].Date)
		}
		if grades[1].Date == nil || *grades[1].Date != "2025-09-10" {
			t.Errorf("grades[1] = %+v, want 2025-09-10", grades[1])
		}
		if grades[2].Date == nil || *grades[2].Date != "2025-09-12" {
			t.Errorf("grades[2] = %+v, want 2025-09-12", grades[2])
		}
	})

	t.Run("Subject Code Falls Back To Name", func(t *testing.T) {
		session := &mockSession{periods: []pronote.Period{{
			Name:   "T1",
			Grades: []pronote.Grade{{Subject: pronote.Subject{Name: "Philo"}, Value: "11"}},
		}}}

		env := fetchWith(t, session, false)
		g := env.Notes.Periods[0].Grades[0]
		if g.SubjectID != "Philo" {
			t.Errorf("subjectId = %q, want the subject name when no code exists", g.SubjectID)
		}
	})
}

func TestBuildLessons(t *testing.T) {
	lessonAt := func(h int, content *pronote.LessonContent) pronote.Lesson {
		return pronote.Lesson{
			Start:   time.Date(2025, 9, 10, h, 0, 0, 0, time.UTC),
			End:     time.Date(2025, 9, 10, h+1, 0, 0, 0, time.UTC),
			Subject: pronote.Subject{Name: "Maths", Code: "MATH"},
			Content: content,
		}
	}

	t.Run("Content Omitted By Default", func(t *testing.T) {
		session := &mockSession{lessons: []pronote.Lesson{
			lessonAt(8, &pronote.LessonContent{Title: "Fractions"}),
		}}

		env := fetchWith(t, session, false)
		raw, _ := json.Marshal(env.Lessons.Lessons[0])
		if strings.Contains(string(raw), `"content"`) {
			t.Errorf("content must not appear without detailed mode: %s", raw)
		}
	})

	t.Run("Content Attached In Detailed Mode", func(t *testing.T) {
		session := &mockSession{lessons: []pronote.Lesson{
			lessonAt(8, &pronote.LessonContent{Title: "Fractions", Description: "ex. 4 p.52"}),
			lessonAt(9, nil),
		}}

		env := fetchWith(t, session, true)
		lessons := env.Lessons.Lessons

		if lessons[0].Content == nil || lessons[0].Content.Title == nil || *lessons[0].Content.Title != "Fractions" {
			t.Errorf("detailed lesson lost its content: %+v", lessons[0].Content)
		}
		// Even without portal content the block is present, fields null.
		if lessons[1].Content == nil {
			t.Fatal("detailed mode must attach a content block to every lesson")
		}
		if lessons[1].Content.Title != nil || lessons[1].Content.Description != nil {
			t.Errorf("empty content fields must be null: %+v", lessons[1].Content)
		}
	})

	t.Run("Ordered By Start Time", func(t *testing.T) {
		session := &mockSession{lessons: []pronote.Lesson{
			lessonAt(10, nil), lessonAt(8, nil), lessonAt(9, nil),
		}}

		env := fetchWith(t, session, false)
		starts := make([]string, 0, 3)
		for _, l := range env.Lessons.Lessons {
			starts = append(starts, l.Start)
		}
		want := []string{"08:00", "09:00", "10:00"}
		for i := range want {
			if starts[i] != want[i] {
				t.Fatalf("lesson order = %v, want %v", starts, want)
			}
		}
	})

	t.Run("Unlabeled Subject Gets Placeholder", func(t *testing.T) {
		session := &mockSession{lessons: []pronote.Lesson{{
			Start: time.Date(2025, 9, 10, 8, 0, 0, 0, time.UTC),
			End:   time.Date(2025, 9, 10, 9, 0, 0, 0, time.UTC),
		}}}

		env := fetchWith(t, session, false)
		if env.Lessons.Lessons[0].SubjectLabel != "?" {
			t.Errorf("subjectLabel = %q, want ?", env.Lessons.Lessons[0].SubjectLabel)
		}
	})
}

func TestBuildHomework(t *testing.T) {
	t.Run("Identifier And Title Fallbacks", func(t *testing.T) {
		session := &mockSession{homework: []pronote.Homework{{
			Given:       datePtr(2025, 9, 10),
			Due:         datePtr(2025, 9, 15),
			Subject:     pronote.Subject{Name: "Maths", Code: "MATH"},
			Description: "exercices 1 à 4",
		}}}

		env := fetchWith(t, session, false)
		hw := env.HomeworkNext7.Homework[0]
		if hw.ID != "hw_2025-09-10_MATH" {
			t.Errorf("id = %q, want synthesized from given date and subject", hw.ID)
		}
		if hw.Title == nil || *hw.Title != "exercices 1 à 4" {
			t.Errorf("missing title must fall back to the description: %+v", hw.Title)
		}
	})

	t.Run("Undateable Items Sort Last", func(t *testing.T) {
		session := &mockSession{homework: []pronote.Homework{
			{ID: "c", Subject: pronote.Subject{Name: "SVT"}, Title: "c"},
			{ID: "b", Due: datePtr(2025, 9, 16), Subject: pronote.Subject{Name: "Maths"}, Title: "b"},
			{ID: "a", Due: datePtr(2025, 9, 14), Subject: pronote.Subject{Name: "Anglais"}, Title: "a"},
			{ID: "d", Given: datePtr(2025, 9, 15), Subject: pronote.Subject{Name: "Histoire"}, Title: "d"},
		}}

		env := fetchWith(t, session, false)
		ids := make([]string, 0, 4)
		for _, h := range env.HomeworkNext7.Homework {
			ids = append(ids, h.ID)
		}
		want := []string{"a", "d", "b", "c"}
		for i := range want {
			if ids[i] != want[i] {
				t.Fatalf("homework order = %v, want %v", ids, want)
			}
		}
	})
}
