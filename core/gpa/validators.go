package gpa

import (
	"fmt"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gpacalc/core"
)

var (
	unitsTag  = "units"
	unitsText = "units must be a number greater than 0"

	gradeTag  = "grade"
	gradeText = fmt.Sprintf("grade must be one of %s", strings.Join(AllGrades, ", "))
)

// InitValidators registers the course validators.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = validate.RegisterValidation(unitsTag, unitsValidation)
	core.RegisterCustomTranslation(validate, translator, unitsTag, unitsText)

	_ = validate.RegisterValidation(gradeTag, gradeValidation)
	core.RegisterCustomTranslation(validate, translator, gradeTag, gradeText)

	validate.RegisterStructValidation(updateCourseStructValidation, UpdateCourse{})
}

// Validate cleans the Course before validating it.
func (c *Course) Validate(validate *validator.Validate) error {
	c.Units = core.CleanString(c.Units)
	c.Grade = core.CleanString(c.Grade, true /* upper */)
	return validate.Struct(c)
}

// Custom Validators

// unitsValidation allows blank units (a field being cleared) or a number > 0.
func unitsValidation(fl validator.FieldLevel) bool {
	if units, ok := fl.Field().Interface().(string); ok {
		if units == "" {
			return true
		}
		_, valid := ParseUnits(units)
		return valid
	}
	return false
}

// gradeValidation allows a blank grade or one of AllGrades.
func gradeValidation(fl validator.FieldLevel) bool {
	if grade, ok := fl.Field().Interface().(string); ok {
		return grade == "" || IsGrade(grade)
	}
	return false
}

// updateCourseStructValidation checks UpdateCourse.Value against the field it is meant for.
func updateCourseStructValidation(sl validator.StructLevel) {
	uc, ok := sl.Current().Interface().(UpdateCourse)
	if !ok {
		return
	}
	switch Field(uc.Field) {
	case FieldUnits:
		if uc.Value != "" {
			if _, valid := ParseUnits(uc.Value); !valid {
				sl.ReportError(uc.Value, "value", "Value", unitsTag, "")
			}
		}
	case FieldGrade:
		if uc.Value != "" && !IsGrade(uc.Value) {
			sl.ReportError(uc.Value, "value", "Value", gradeTag, "")
		}
	}
}

func (sc *SetCount) Validate(validate *validator.Validate) error {
	return validate.Struct(sc)
}

// Validate cleans the UpdateCourse before validating it.
func (uc *UpdateCourse) Validate(validate *validator.Validate) error {
	uc.Field = strings.ToLower(core.CleanString(uc.Field))
	uc.Value = core.CleanString(uc.Value, Field(uc.Field) == FieldGrade /* upper */)
	return validate.Struct(uc)
}
