package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/pmezard/go-difflib/difflib"

	"github.com/trezcool/gpacalc/core"
	"github.com/trezcool/gpacalc/core/gpa"
)

var (
	errHelp = errors.New("help provided")

	commands = []string{"calc", "interactive"}
)

type commandLine struct {
	svc        *gpa.Service
	validate   *validator.Validate
	translator ut.Translator
	in         io.Reader
	out        io.Writer
	isTerminal bool // prompts are only printed to a terminal
}

func (cli *commandLine) printUsage() {
	_, _ = fmt.Fprintln(cli.out, "Usage:")
	_, _ = fmt.Fprintln(cli.out, "  calc -course UNITS:GRADE [-course UNITS:GRADE ...] - compute the GPA of the given courses")
	_, _ = fmt.Fprintln(cli.out, "  interactive                                       - fill in the course form line by line")
}

// courseFlags collects repeated `-course UNITS:GRADE` flags.
type courseFlags []gpa.Course

func (cf *courseFlags) String() string {
	parts := make([]string, 0, len(*cf))
	for _, c := range *cf {
		parts = append(parts, c.Units+":"+c.Grade)
	}
	return strings.Join(parts, ",")
}

func (cf *courseFlags) Set(val string) error {
	parts := strings.SplitN(val, ":", 2)
	if len(parts) != 2 {
		return fmt.Errorf("course must be of form UNITS:GRADE (got '%s')", val)
	}
	*cf = append(*cf, gpa.Course{Units: parts[0], Grade: parts[1]})
	return nil
}

func (cli *commandLine) run(args []string) error {
	if len(args) < 2 {
		cli.printUsage()
		return errHelp
	}

	calcCmd := flag.NewFlagSet("calc", flag.ContinueOnError)
	calcCmd.SetOutput(cli.out)
	var calcCourses courseFlags
	calcCmd.Var(&calcCourses, "course", "A course as UNITS:GRADE, e.g. 3:B. Repeat for every course.")

	ctx := context.Background()

	switch args[1] {
	case "calc":
		if err := calcCmd.Parse(args[2:]); err != nil {
			if err == flag.ErrHelp {
				return errHelp
			}
			return err
		}
		if len(calcCourses) == 0 {
			calcCmd.Usage()
			return errHelp
		}
		return cli.calc(ctx, calcCourses)
	case "interactive":
		return cli.interactive(ctx)
	default:
		cli.printUsage()
		if s := suggest(args[1], commands); s != "" {
			_, _ = fmt.Fprintf(cli.out, "\nDid you mean %q?\n", s)
		}
		return errHelp
	}
}

// calc fills a fresh form with courses and prints its GPA.
// Every course is validated before the form is touched.
func (cli *commandLine) calc(ctx context.Context, courses []gpa.Course) error {
	for i := range courses {
		if err := courses[i].Validate(cli.validate); err != nil {
			return courseError(i, core.TranslateValidationErrors(err, cli.translator))
		}
	}

	if _, err := cli.svc.Reset(ctx); err != nil {
		return err
	}
	if _, err := cli.svc.SetCount(ctx, gpa.SetCount{Count: len(courses)}); err != nil {
		return err
	}
	for i, c := range courses {
		if _, err := cli.svc.UpdateCourse(ctx, i, gpa.UpdateCourse{Field: string(gpa.FieldUnits), Value: c.Units}); err != nil {
			return courseError(i, err)
		}
		if _, err := cli.svc.UpdateCourse(ctx, i, gpa.UpdateCourse{Field: string(gpa.FieldGrade), Value: c.Grade}); err != nil {
			return courseError(i, err)
		}
	}

	res, err := cli.svc.Calculate(ctx)
	if err != nil {
		return err
	}
	cli.printResult(res)
	return nil
}

func (cli *commandLine) printResult(res gpa.Result) {
	_, _ = fmt.Fprintf(cli.out, "Your GPA is: %s\n", res.Display)
	_, _ = fmt.Fprintln(cli.out, res.Message)
	if res.Celebrate {
		_, _ = fmt.Fprintln(cli.out, "*** \\o/ *** \\o/ *** \\o/ ***")
	}
}

// courseError prefixes validation errors with the 1-based course number.
func courseError(index int, err error) error {
	return fmt.Errorf("course #%d: %s", index+1, describeError(err))
}

// describeError renders err the way it is shown to the user.
func describeError(err error) string {
	var vErr *core.ValidationError
	if errors.As(err, &vErr) && vErr.Err == nil && len(vErr.Fields) > 0 {
		msgs := make([]string, 0, len(vErr.Fields))
		for _, fld := range vErr.Fields {
			msgs = append(msgs, fld.Error)
		}
		return strings.Join(msgs, "; ")
	}
	if errors.As(err, &vErr) {
		return vErr.Error()
	}
	return err.Error()
}

// suggest returns the candidate closest to word, or "" when none is close enough.
func suggest(word string, candidates []string) string {
	var (
		best      string
		bestRatio float64
	)
	for _, c := range candidates {
		ratio := difflib.NewMatcher(strings.Split(word, ""), strings.Split(c, "")).Ratio()
		if ratio > bestRatio {
			best, bestRatio = c, ratio
		}
	}
	if bestRatio < .6 {
		return ""
	}
	return best
}
