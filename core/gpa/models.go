package gpa

import (
	"time"

	"github.com/google/uuid"
)

// Grades
const (
	GradeA = "A"
	GradeB = "B"
	GradeC = "C"
	GradeD = "D"
	GradeE = "E"
	GradeF = "F"
)

var (
	AllGrades = []string{GradeA, GradeB, GradeC, GradeD, GradeE, GradeF}

	gradePoints = map[string]int{
		GradeA: 5,
		GradeB: 4,
		GradeC: 3,
		GradeD: 2,
		GradeE: 1,
		GradeF: 0,
	}
)

// Field names a Course attribute that can be edited.
type Field string

const (
	FieldUnits Field = "units"
	FieldGrade Field = "grade"
)

// Course is one course's contribution to the GPA.
// Units stays free text until the GPA is computed.
type Course struct {
	Units string `json:"units" validate:"units"`
	Grade string `json:"grade" validate:"grade"`
}

func (c Course) IsComplete() bool {
	return c.Units != "" && c.Grade != ""
}

type Tier string

const (
	TierFirstClass       Tier = "first_class"
	TierSecondClassUpper Tier = "second_class_upper"
	TierSecondClassLower Tier = "second_class_lower"
	TierThirdClass       Tier = "third_class"
	TierPass             Tier = "pass"
)

type Result struct {
	GPA         float64 `json:"gpa"`
	Display     string  `json:"display"`
	Tier        Tier    `json:"tier"`
	Message     string  `json:"message"`
	Celebrate   bool    `json:"celebrate"`
	TotalUnits  float64 `json:"total_units"`
	TotalPoints float64 `json:"total_points"`
}

// Phase of a calculation request.
type Phase string

const (
	PhaseIdle        Phase = "idle"
	PhaseValidating  Phase = "validating"
	PhaseComputing   Phase = "computing"
	PhaseResultReady Phase = "result_ready"
)

// Form is the state of one calculator session.
type Form struct {
	ID                 string
	Sheet              Sheet
	CountPromptVisible bool
	Phase              Phase
	Loading            bool
	Result             *Result
	CreatedAt          time.Time // UTC
	UpdatedAt          time.Time // UTC
}

// NewForm starts a session with a single blank course and the count prompt showing.
func NewForm() Form {
	now := time.Now().UTC()
	return Form{
		ID:                 uuid.New().String(),
		Sheet:              NewSheet(),
		CountPromptVisible: true,
		Phase:              PhaseIdle,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
}

// Clone returns a copy of the Form that shares no memory with it.
func (f Form) Clone() Form {
	clone := f
	clone.Sheet = f.Sheet.Clone()
	if f.Result != nil {
		res := *f.Result
		clone.Result = &res
	}
	return clone
}

// reopen discards the displayed result so the form can be edited again.
func (f *Form) reopen() {
	f.Result = nil
	f.Phase = PhaseIdle
	f.Loading = false
	f.UpdatedAt = time.Now().UTC()
}

// View is what a front end renders after every operation.
type View struct {
	SessionID          string   `json:"session_id"`
	Courses            []Course `json:"courses"`
	CountPromptVisible bool     `json:"count_prompt_visible"`
	CanCalculate       bool     `json:"can_calculate"`
	Phase              Phase    `json:"phase"`
	Loading            bool     `json:"loading"`
	Result             *Result  `json:"result,omitempty"`
}

func (f Form) View() View {
	f = f.Clone()
	return View{
		SessionID:          f.ID,
		Courses:            f.Sheet.Courses(),
		CountPromptVisible: f.CountPromptVisible,
		CanCalculate:       f.Sheet.IsComplete(),
		Phase:              f.Phase,
		Loading:            f.Loading,
		Result:             f.Result,
	}
}

// SetCount contains the number of courses the sheet should be reshaped to.
type SetCount struct {
	Count int `json:"count" validate:"min=1"`
}

// UpdateCourse overwrites one field of a course.
type UpdateCourse struct {
	Field string `json:"field" validate:"notblank,oneof=units grade"`
	Value string `json:"value"`
}
