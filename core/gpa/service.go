package gpa

import (
	"context"
	"errors"
	"fmt"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	pkgerrors "github.com/pkg/errors"

	"github.com/trezcool/gpacalc/core"
)

var (
	// errors
	ErrIncomplete      = errors.New("please fill in all course units and grades before calculating GPA")
	ErrNoCourses       = errors.New("add at least one course before calculating GPA")
	ErrInvalidUnits    = errors.New("units must be a number greater than 0")
	ErrCourseNotFound  = errors.New("course not found")
	ErrCountAlreadySet = errors.New("the number of courses has already been set")
)

type (
	// Repository stores the single Form of a calculator session.
	Repository interface {
		// GetForm returns a copy of the current Form.
		GetForm(ctx context.Context) (Form, error)
		// UpdateForm applies fn to the stored Form atomically.
		// The Form is left untouched when fn returns an error.
		UpdateForm(ctx context.Context, fn func(*Form) error) (Form, error)
		// ResetForm replaces the stored Form with a fresh one.
		ResetForm(ctx context.Context) (Form, error)
	}

	Service struct {
		repo       Repository
		validate   *validator.Validate
		translator ut.Translator
		logger     core.Logger
		maxCourses int
	}
)

func NewService(
	repo Repository,
	validate *validator.Validate,
	translator ut.Translator,
	logger core.Logger,
	conf *core.Config,
) *Service {
	return &Service{
		repo:       repo,
		validate:   validate,
		translator: translator,
		logger:     logger,
		maxCourses: conf.MaxCourses,
	}
}

func (svc *Service) View(ctx context.Context) (View, error) {
	form, err := svc.repo.GetForm(ctx)
	if err != nil {
		return View{}, pkgerrors.Wrap(err, "getting form")
	}
	return form.View(), nil
}

// SetCount reshapes the sheet into data.Count blank courses and hides the count prompt for good.
func (svc *Service) SetCount(ctx context.Context, data SetCount) (View, error) {
	if err := data.Validate(svc.validate); err != nil {
		return View{}, core.TranslateValidationErrors(err, svc.translator)
	}
	if svc.maxCourses > 0 && data.Count > svc.maxCourses {
		return View{}, core.NewValidationError(nil, core.FieldError{
			Field: "count",
			Error: fmt.Sprintf("count must be %d or less", svc.maxCourses),
		})
	}

	form, err := svc.repo.UpdateForm(ctx, func(f *Form) error {
		if !f.CountPromptVisible {
			return core.NewValidationError(ErrCountAlreadySet)
		}
		f.Sheet.SetCount(data.Count)
		f.CountPromptVisible = false
		f.reopen()
		return nil
	})
	if err != nil {
		return View{}, pkgerrors.Wrap(err, "setting course count")
	}
	return form.View(), nil
}

// AddCourse appends a blank course.
func (svc *Service) AddCourse(ctx context.Context) (View, error) {
	form, err := svc.repo.UpdateForm(ctx, func(f *Form) error {
		f.Sheet.Append()
		f.reopen()
		return nil
	})
	if err != nil {
		return View{}, pkgerrors.Wrap(err, "adding course")
	}
	return form.View(), nil
}

// UpdateCourse overwrites the units or grade of the course at index.
func (svc *Service) UpdateCourse(ctx context.Context, index int, data UpdateCourse) (View, error) {
	if err := data.Validate(svc.validate); err != nil {
		return View{}, core.TranslateValidationErrors(err, svc.translator)
	}

	form, err := svc.repo.UpdateForm(ctx, func(f *Form) error {
		if err := f.Sheet.Update(index, Field(data.Field), data.Value); err != nil {
			return err
		}
		f.reopen()
		return nil
	})
	if err != nil {
		return View{}, pkgerrors.Wrap(err, "updating course")
	}
	return form.View(), nil
}

// RemoveCourse deletes the course at index.
func (svc *Service) RemoveCourse(ctx context.Context, index int) (View, error) {
	form, err := svc.repo.UpdateForm(ctx, func(f *Form) error {
		if err := f.Sheet.Remove(index); err != nil {
			return err
		}
		f.reopen()
		return nil
	})
	if err != nil {
		return View{}, pkgerrors.Wrap(err, "removing course")
	}
	return form.View(), nil
}

// Calculate validates the sheet then computes and classifies its GPA.
// Nothing is computed on an incomplete sheet: a *core.ValidationError is returned instead.
func (svc *Service) Calculate(ctx context.Context) (Result, error) {
	var (
		res     Result
		calcErr error
	)
	form, err := svc.repo.UpdateForm(ctx, func(f *Form) error {
		f.Phase = PhaseValidating
		f.Loading = true
		defer func() {
			f.Loading = false
			f.UpdatedAt = time.Now().UTC()
		}()

		if !f.Sheet.IsComplete() {
			f.Phase = PhaseIdle
			f.Result = nil
			calcErr = core.NewValidationError(ErrIncomplete)
			return nil
		}

		f.Phase = PhaseComputing
		res, calcErr = Aggregate(f.Sheet.Courses())
		if calcErr != nil {
			f.Phase = PhaseIdle
			f.Result = nil
			return nil
		}

		f.Result = &res
		f.Phase = PhaseResultReady
		return nil
	})
	if err != nil {
		return Result{}, pkgerrors.Wrap(err, "calculating GPA")
	}
	if calcErr != nil {
		svc.logger.Warn(fmt.Sprintf("calculation refused: %v", calcErr), core.Person{ID: form.ID})
		return Result{}, calcErr
	}

	svc.logger.Debug(fmt.Sprintf("GPA calculated: %s (%s)", res.Display, res.Tier), core.Person{ID: form.ID})
	return res, nil
}

// Dismiss closes the result so the form can be edited again.
func (svc *Service) Dismiss(ctx context.Context) error {
	_, err := svc.repo.UpdateForm(ctx, func(f *Form) error {
		f.reopen()
		return nil
	})
	return pkgerrors.Wrap(err, "dismissing result")
}

// Reset starts a new session.
func (svc *Service) Reset(ctx context.Context) (View, error) {
	form, err := svc.repo.ResetForm(ctx)
	if err != nil {
		return View{}, pkgerrors.Wrap(err, "resetting form")
	}
	return form.View(), nil
}
