package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"pronote-gateway/internal/fetch"
	"pronote-gateway/internal/model"
	"pronote-gateway/internal/normalize"
	"pronote-gateway/pkg/pronote"
)

// buildNotes normalizes all grading periods. Grades within a period are
// ordered by date ascending with undated grades first.
func (uc *implUseCase) buildNotes(ctx context.Context, session pronote.Session) (fetch.NotesPayload, error) {
	periods, err := session.Periods(ctx)
	if err != nil {
		return fetch.NotesPayload{}, err
	}

	out := fetch.NotesPayload{Periods: make([]model.Period, 0, len(periods))}
	for _, p := range periods {
		grades := make([]pronote.Grade, len(p.Grades))
		copy(grades, p.Grades)
		sort.SliceStable(grades, func(i, j int) bool {
			di, dj := grades[i].Date, grades[j].Date
			if di == nil {
				return dj != nil
			}
			if dj == nil {
				return false
			}
			return di.Before(*dj)
		})

		normalized := make([]model.Grade, 0, len(grades))
		for _, g := range grades {
			normalized = append(normalized, model.Grade{
				Date:         normalize.FormatDate(g.Date),
				SubjectID:    subjectID(g.Subject),
				SubjectLabel: g.Subject.Name,
				Value:        normalize.SafeFloat(g.Value.String()),
				OutOf:        normalize.SafeFloat(g.OutOf.String()),
				Coefficient:  normalize.SafeFloat(g.Coefficient.String()),
				Comment:      normalize.StringOrNil(g.Comment),
			})
		}
		out.Periods = append(out.Periods, model.Period{Name: p.Name, Grades: normalized})
	}
	return out, nil
}

// buildLessons normalizes timetable entries for the range, ordered by
// (start, end) ascending. The content block is attached only in
// detailed-content mode, with null fields when the portal sent none.
func (uc *implUseCase) buildLessons(ctx context.Context, session pronote.Session, r fetch.DateRange) (fetch.LessonsPayload, error) {
	lessons, err := session.Lessons(ctx, r.Start, r.End, uc.includeContent)
	if err != nil {
		return fetch.LessonsPayload{}, err
	}

	sort.SliceStable(lessons, func(i, j int) bool {
		if !lessons[i].Start.Equal(lessons[j].Start) {
			return lessons[i].Start.Before(lessons[j].Start)
		}
		return lessons[i].End.Before(lessons[j].End)
	})

	out := fetch.LessonsPayload{Lessons: make([]model.Lesson, 0, len(lessons))}
	for _, l := range lessons {
		item := model.Lesson{
			Date:         l.Start.Format(dateFormat),
			Start:        normalize.FormatClock(l.Start),
			End:          normalize.FormatClock(l.End),
			SubjectID:    subjectID(l.Subject),
			SubjectLabel: subjectLabel(l.Subject),
			Room:         normalize.StringOrNil(l.Classroom),
			Canceled:     l.Canceled,
		}
		if uc.includeContent {
			content := &model.LessonContent{}
			if l.Content != nil {
				content.Title = normalize.StringOrNil(l.Content.Title)
				content.Description = normalize.StringOrNil(l.Content.Description)
			}
			item.Content = content
		}
		out.Lessons = append(out.Lessons, item)
	}
	return out, nil
}

// buildHomework normalizes homework for the range, ordered by due date
// ascending (falling back to the given date); items with neither sort
// last.
func (uc *implUseCase) buildHomework(ctx context.Context, session pronote.Session, r fetch.DateRange) (fetch.HomeworkPayload, error) {
	items, err := session.Homework(ctx, r.Start, r.End)
	if err != nil {
		return fetch.HomeworkPayload{}, err
	}

	sorted := make([]pronote.Homework, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return homeworkSortKey(sorted[i]).Before(homeworkSortKey(sorted[j]))
	})

	out := fetch.HomeworkPayload{Homework: make([]model.Homework, 0, len(sorted))}
	for _, h := range sorted {
		given := normalize.FormatDate(h.Given)

		id := h.ID
		if id == "" {
			givenKey := ""
			if given != nil {
				givenKey = *given
			}
			id = fmt.Sprintf("hw_%s_%s", givenKey, subjectID(h.Subject))
		}

		title := h.Title
		if title == "" {
			title = h.Description
		}

		out.Homework = append(out.Homework, model.Homework{
			ID:           id,
			Given:        given,
			Due:          normalize.FormatDate(h.Due),
			SubjectID:    subjectID(h.Subject),
			SubjectLabel: subjectLabel(h.Subject),
			Title:        normalize.StringOrNil(title),
			Description:  normalize.StringOrNil(h.Description),
			Done:         h.Done,
		})
	}
	return out, nil
}

// farFuture pushes undateable homework to the end of the ordering.
var farFuture = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)

func homeworkSortKey(h pronote.Homework) time.Time {
	if h.Due != nil {
		return *h.Due
	}
	if h.Given != nil {
		return *h.Given
	}
	return farFuture
}
