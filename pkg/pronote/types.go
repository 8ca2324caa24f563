package pronote

import (
	"encoding/json"
	"fmt"
	"time"
)

// Scalar is a portal value that may arrive as a JSON number or string
// ("15,5", "abs", 12). It is resolved to its raw string form once, here
// at the adapter boundary, so nothing downstream probes value types.
type Scalar string

// UnmarshalJSON implements json.Unmarshaler for Scalar.
func (s *Scalar) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		*s = ""
		return nil
	}
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = Scalar(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(b, &num); err == nil {
		*s = Scalar(num.String())
		return nil
	}
	return fmt.Errorf("scalar: unsupported JSON value %s", string(b))
}

func (s Scalar) String() string { return string(s) }

// Subject identifies a school subject. Code may be empty; Name is the
// display label.
type Subject struct {
	Name string
	Code string
}

// Grade is one raw grade record. Date is nil when the portal did not
// attach one. Value, OutOf and Coefficient stay raw; parsing them is the
// normalizer's job.
type Grade struct {
	Date        *time.Time
	Subject     Subject
	Value       Scalar
	OutOf       Scalar
	Coefficient Scalar
	Comment     string
}

// Period is a grading period with its raw grades.
type Period struct {
	Name   string
	Grades []Grade
}

// LessonContent carries the optional detailed lesson fields.
type LessonContent struct {
	Title       string
	Description string
}

// Lesson is one raw timetable entry. Content is nil unless detailed
// content was requested and the portal supplied it.
type Lesson struct {
	Start     time.Time
	End       time.Time
	Subject   Subject
	Classroom string
	Canceled  bool
	Content   *LessonContent
}

// Homework is one raw homework record. ID may be empty; Given and Due
// are nil when absent upstream.
type Homework struct {
	ID          string
	Given       *time.Time
	Due         *time.Time
	Subject     Subject
	Title       string
	Description string
	Done        bool
}
