package model

// Normalized record shapes republished by the gateway. Pointer fields
// render as JSON null when the upstream value was absent or unparsable.

// Grade is one normalized grade entry.
type Grade struct {
	Date         *string  `json:"date"`
	SubjectID    string   `json:"subjectId"`
	SubjectLabel string   `json:"subjectLabel"`
	Value        *float64 `json:"value"`
	OutOf        *float64 `json:"outOf"`
	Coefficient  *float64 `json:"coefficient"`
	Comment      *string  `json:"comment"`
}

// Period groups the grades of one grading period.
type Period struct {
	Name   string  `json:"name"`
	Grades []Grade `json:"grades"`
}

// LessonContent carries the optional detailed lesson fields, present
// only when detailed content was requested.
type LessonContent struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

// Lesson is one normalized timetable entry.
type Lesson struct {
	Date         string         `json:"date"`
	Start        string         `json:"start"`
	End          string         `json:"end"`
	SubjectID    string         `json:"subjectId"`
	SubjectLabel string         `json:"subjectLabel"`
	Room         *string        `json:"room"`
	Canceled     bool           `json:"canceled"`
	Content      *LessonContent `json:"content,omitempty"`
}

// Homework is one normalized homework entry.
type Homework struct {
	ID           string  `json:"id"`
	Given        *string `json:"given"`
	Due          *string `json:"due"`
	SubjectID    string  `json:"subjectId"`
	SubjectLabel string  `json:"subjectLabel"`
	Title        *string `json:"title"`
	Description  *string `json:"description"`
	Done         bool    `json:"done"`
}
