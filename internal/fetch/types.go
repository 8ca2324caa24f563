package fetch

import (
	"time"

	"pronote-gateway/internal/model"
)

// Task names, used as keys in every envelope map.
const (
	TaskNotes         = "notes"
	TaskLessons       = "lessons"
	TaskLessonsNext7  = "lessons_next7"
	TaskHomeworkNext7 = "homework_next7"

	// StatusKeyLogin is the meta key used when session acquisition itself
	// timed out and no task was attempted.
	StatusKeyLogin = "login"

	// TimingKeyTotal is the meta timing key for whole-request wall time.
	TimingKeyTotal = "total_s"
)

// Input is one fetch request. Start/End, when both set, define the past
// range verbatim; otherwise the past range is the last max(1, Days) days.
type Input struct {
	Username string
	Password string
	Days     int
	Start    string // optional ISO date
	End      string // optional ISO date
}

// DateRange is an inclusive pair of calendar dates, Start <= End.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// NotesPayload is the grades section of the envelope.
type NotesPayload struct {
	Periods []model.Period `json:"periods"`
}

// LessonsPayload is a timetable section of the envelope.
type LessonsPayload struct {
	Lessons []model.Lesson `json:"lessons"`
}

// HomeworkPayload is the homework section of the envelope.
type HomeworkPayload struct {
	Homework []model.Homework `json:"homework"`
}

// Empty-collection defaults used when a task did not succeed. They keep
// the response shape identical no matter how many tasks degraded.
func emptyNotes() NotesPayload       { return NotesPayload{Periods: []model.Period{}} }
func emptyLessons() LessonsPayload   { return LessonsPayload{Lessons: []model.Lesson{}} }
func emptyHomework() HomeworkPayload { return HomeworkPayload{Homework: []model.Homework{}} }

// RangeMeta echoes one date range in the metadata block.
type RangeMeta struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Meta is the diagnostics block of the envelope.
type Meta struct {
	SchoolURL      string             `json:"school_url"`
	RangePast      RangeMeta          `json:"range_past"`
	RangeNext7     RangeMeta          `json:"range_next7"`
	Status         map[string]string  `json:"status"`
	Errors         map[string]string  `json:"errors"`
	Timing         map[string]float64 `json:"timing"`
	IncludeContent bool               `json:"include_content"`
}

// Envelope is the aggregated result of one fetch request: data for every
// task plus per-task status, error text and timing. Its shape is
// identical regardless of how many sub-tasks degraded.
type Envelope struct {
	Notes         NotesPayload    `json:"notes"`
	Lessons       LessonsPayload  `json:"lessons"`
	LessonsNext7  LessonsPayload  `json:"lessons_next7"`
	HomeworkNext7 HomeworkPayload `json:"homework_next7"`
	Meta          Meta            `json:"meta"`
}

// NewEnvelope returns an envelope pre-filled with empty defaults and
// echoed ranges; the aggregator overwrites sections that succeeded.
func NewEnvelope(schoolURL string, past, next7 DateRange, includeContent bool) Envelope {
	return Envelope{
		Notes:         emptyNotes(),
		Lessons:       emptyLessons(),
		LessonsNext7:  emptyLessons(),
		HomeworkNext7: emptyHomework(),
		Meta: Meta{
			SchoolURL:      schoolURL,
			RangePast:      newRangeMeta(past),
			RangeNext7:     newRangeMeta(next7),
			Status:         map[string]string{},
			Errors:         map[string]string{},
			Timing:         map[string]float64{},
			IncludeContent: includeContent,
		},
	}
}

func newRangeMeta(r DateRange) RangeMeta {
	return RangeMeta{
		Start: r.Start.Format("2006-01-02"),
		End:   r.End.Format("2006-01-02"),
	}
}

// ProbeOutput is the result of the login-only diagnostic.
type ProbeOutput struct {
	OK       bool
	LoggedIn bool
	Mock     bool
}
