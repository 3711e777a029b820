package testutil

import (
	"context"
	"io/ioutil"
	"log"
	"testing"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/trezcool/gpacalc/core"
	"github.com/trezcool/gpacalc/core/gpa"
	logsvc "github.com/trezcool/gpacalc/services/logger"
	inmemdb "github.com/trezcool/gpacalc/storage/inmem"
)

// NewConfig returns a TEST mode config allowing up to maxCourses courses.
func NewConfig(maxCourses int) *core.Config {
	conf := &core.Config{
		AppName:    "GPA Calculator",
		Env:        "TEST",
		TestMode:   true,
		MaxCourses: maxCourses,
	}
	conf.Server.DisableReqLogs = true
	return conf
}

// NewLogger returns a logger that prints nothing and never reports to Rollbar.
func NewLogger(conf *core.Config) core.Logger {
	logger := logsvc.NewRollbarLogger(log.New(ioutil.Discard, "", 0), conf)
	logger.Enable(false)
	return logger
}

func NewValidator() (*validator.Validate, ut.Translator) {
	translator := core.NewTranslator()
	validate := validator.New()
	core.InitValidators(validate, translator)
	gpa.InitValidators(validate, translator)
	return validate, translator
}

// NewService returns a gpa.Service backed by a fresh in-memory form.
func NewService(t *testing.T, conf *core.Config) *gpa.Service {
	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("NewService() failed: %v", err)
	}
	validate, translator := NewValidator()
	return gpa.NewService(inmemdb.NewFormRepository(db), validate, translator, NewLogger(conf), conf)
}

// FillForm sets the course count then fills in every course from UNITS, GRADE pairs.
func FillForm(t *testing.T, svc *gpa.Service, pairs ...string) gpa.View {
	ctx := context.Background()
	v, err := svc.SetCount(ctx, gpa.SetCount{Count: len(pairs) / 2})
	if err != nil {
		t.Fatalf("FillForm() failed: %v", err)
	}
	for i := 0; i+1 < len(pairs); i += 2 {
		if _, err = svc.UpdateCourse(ctx, i/2, gpa.UpdateCourse{Field: string(gpa.FieldUnits), Value: pairs[i]}); err != nil {
			t.Fatalf("FillForm() failed: %v", err)
		}
		if v, err = svc.UpdateCourse(ctx, i/2, gpa.UpdateCourse{Field: string(gpa.FieldGrade), Value: pairs[i+1]}); err != nil {
			t.Fatalf("FillForm() failed: %v", err)
		}
	}
	return v
}
