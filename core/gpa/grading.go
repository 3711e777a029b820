package gpa

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/trezcool/gpacalc/core"
)

type classBand struct {
	min       float64
	tier      Tier
	message   string
	celebrate bool
}

// bands are ordered from the highest threshold down; the last one catches everything else.
var bands = []classBand{
	{4.5, TierFirstClass, "Congratulations! You are the GOAT. First Class!", true},
	{4.0, TierSecondClassUpper, "Great job! You earned a Second Class Upper. You sef no small o", false},
	{3.5, TierSecondClassLower, "Well done! You earned a Second Class Lower. You sef don try oga mi", false},
	{3.0, TierThirdClass, "Good effort! You earned a Third Class. You can do better blud", false},
	{math.Inf(-1), TierPass, "You passed, keep working hard! NO GIVE UP, NA MUMU DEY GIVE UP", false},
}

// PointValue maps a letter grade to its points. Unknown grades are worth 0.
func PointValue(grade string) int {
	return gradePoints[core.CleanString(grade, true /* upper */)]
}

// IsGrade reports whether grade is one of AllGrades, ignoring case.
func IsGrade(grade string) bool {
	_, ok := gradePoints[core.CleanString(grade, true /* upper */)]
	return ok
}

// ParseUnits parses course units. ok is false unless units is a finite number greater than 0.
func ParseUnits(units string) (float64, bool) {
	u, err := strconv.ParseFloat(strings.TrimSpace(units), 64)
	if err != nil || math.IsNaN(u) || math.IsInf(u, 0) || u <= 0 {
		return 0, false
	}
	return u, true
}

// Round2 rounds x to 2 decimal places, halves away from zero.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Classify returns the tier of a (rounded) GPA, its message and whether it deserves a celebration.
func Classify(gpa float64) (Tier, string, bool) {
	for _, b := range bands {
		if gpa >= b.min {
			return b.tier, b.message, b.celebrate
		}
	}
	// NaN compares false against every band
	last := bands[len(bands)-1]
	return last.tier, last.message, last.celebrate
}

// Aggregate computes the weighted GPA of courses.
// It refuses to compute on an incomplete, empty or malformed list.
func Aggregate(courses []Course) (Result, error) {
	if len(courses) == 0 {
		return Result{}, core.NewValidationError(ErrNoCourses)
	}
	for _, c := range courses {
		if !c.IsComplete() {
			return Result{}, core.NewValidationError(ErrIncomplete)
		}
	}

	var (
		totalUnits, totalPoints float64
		fldErrs                 []core.FieldError
	)
	for i, c := range courses {
		units, ok := ParseUnits(c.Units)
		if !ok {
			fldErrs = append(fldErrs, core.FieldError{
				Field: fmt.Sprintf("courses[%d].units", i),
				Error: ErrInvalidUnits.Error(),
			})
			continue
		}
		totalUnits += units
		totalPoints += units * float64(PointValue(c.Grade))
	}
	if len(fldErrs) > 0 {
		return Result{}, core.NewValidationError(ErrInvalidUnits, fldErrs...)
	}

	gpa := Round2(totalPoints / totalUnits)
	tier, msg, celebrate := Classify(gpa)
	return Result{
		GPA:         gpa,
		Display:     strconv.FormatFloat(gpa, 'f', 2, 64),
		Tier:        tier,
		Message:     msg,
		Celebrate:   celebrate,
		TotalUnits:  totalUnits,
		TotalPoints: totalPoints,
	}, nil
}
