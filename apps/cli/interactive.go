package main

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/trezcool/gpacalc/core"
	"github.com/trezcool/gpacalc/core/gpa"
)

var interactiveCommands = []string{"count", "add", "units", "grade", "rm", "list", "calc", "close", "reset", "help", "quit"}

func (cli *commandLine) printInteractiveUsage() {
	_, _ = fmt.Fprintln(cli.out, "Commands:")
	_, _ = fmt.Fprintln(cli.out, "  count N          - start over with N blank courses (only before any count is set)")
	_, _ = fmt.Fprintln(cli.out, "  add              - add another course")
	_, _ = fmt.Fprintln(cli.out, "  units N VALUE    - set the units of course #N")
	_, _ = fmt.Fprintln(cli.out, "  grade N LETTER   - set the grade of course #N (A-F)")
	_, _ = fmt.Fprintln(cli.out, "  rm N             - remove course #N")
	_, _ = fmt.Fprintln(cli.out, "  list             - show the courses")
	_, _ = fmt.Fprintln(cli.out, "  calc             - calculate the GPA")
	_, _ = fmt.Fprintln(cli.out, "  close            - close the result and keep editing")
	_, _ = fmt.Fprintln(cli.out, "  reset            - start a new form")
	_, _ = fmt.Fprintln(cli.out, "  quit             - exit")
}

func (cli *commandLine) prompt(format string, a ...interface{}) {
	if cli.isTerminal {
		_, _ = fmt.Fprintf(cli.out, format, a...)
	}
}

// interactive runs a line oriented form session until `quit` or end of input.
func (cli *commandLine) interactive(ctx context.Context) error {
	v, err := cli.svc.Reset(ctx)
	if err != nil {
		return err
	}
	if cli.isTerminal {
		cli.printInteractiveUsage()
	}

	scanner := bufio.NewScanner(cli.in)
	for {
		if v.CountPromptVisible {
			cli.prompt("How many courses do you have? (count N) > ")
		} else {
			cli.prompt("> ")
		}
		if !scanner.Scan() {
			return scanner.Err()
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if fields[0] == "quit" || fields[0] == "exit" {
			return nil
		}

		next, err := cli.exec(ctx, v, fields)
		if err != nil {
			if !core.IsValidationError(err) && err != gpa.ErrCourseNotFound && err != errUnknownCommand {
				return err
			}
			_, _ = fmt.Fprintf(cli.out, "! %s\n", describeError(err))
			continue
		}
		v = next
	}
}

var errUnknownCommand = errors.New("unknown command (type 'help' for the list of commands)")

// exec runs one interactive command and returns the refreshed view.
func (cli *commandLine) exec(ctx context.Context, v gpa.View, fields []string) (gpa.View, error) {
	cmd, args := fields[0], fields[1:]

	position := func() (int, error) {
		if len(args) == 0 {
			return 0, core.NewValidationError(fmt.Errorf("%s: course number is required", cmd))
		}
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			return 0, core.NewValidationError(fmt.Errorf("%s: course number must be 1 or greater", cmd))
		}
		return n - 1, nil
	}

	var (
		next gpa.View
		err  error
	)
	switch cmd {
	case "help":
		cli.printInteractiveUsage()
		return v, nil
	case "list":
		cli.printCourses(v)
		return v, nil
	case "count":
		if len(args) == 0 {
			return v, core.NewValidationError(fmt.Errorf("count: number of courses is required"))
		}
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil {
			return v, core.NewValidationError(fmt.Errorf("count: %q is not a number", args[0]))
		}
		next, err = cli.svc.SetCount(ctx, gpa.SetCount{Count: n})
	case "add":
		next, err = cli.svc.AddCourse(ctx)
	case "units", "grade":
		i, posErr := position()
		if posErr != nil {
			return v, posErr
		}
		next, err = cli.svc.UpdateCourse(ctx, i, gpa.UpdateCourse{Field: cmd, Value: strings.Join(args[1:], " ")})
	case "rm":
		i, posErr := position()
		if posErr != nil {
			return v, posErr
		}
		next, err = cli.svc.RemoveCourse(ctx, i)
	case "calc":
		if !v.CanCalculate {
			// the calculate action is disabled until the form is complete
			return v, core.NewValidationError(gpa.ErrIncomplete)
		}
		res, calcErr := cli.svc.Calculate(ctx)
		if calcErr != nil {
			return v, calcErr
		}
		cli.printResult(res)
		next, err = cli.svc.View(ctx)
		return next, err
	case "close":
		if err = cli.svc.Dismiss(ctx); err != nil {
			return v, err
		}
		next, err = cli.svc.View(ctx)
		return next, err
	case "reset":
		next, err = cli.svc.Reset(ctx)
	default:
		if s := suggest(cmd, interactiveCommands); s != "" {
			return v, core.NewValidationError(fmt.Errorf("unknown command %q, did you mean %q?", cmd, s))
		}
		return v, errUnknownCommand
	}
	if err != nil {
		if errors.Cause(err) == gpa.ErrCourseNotFound {
			return v, gpa.ErrCourseNotFound
		}
		return v, err
	}
	cli.printCourses(next)
	return next, nil
}

func (cli *commandLine) printCourses(v gpa.View) {
	if len(v.Courses) == 0 {
		_, _ = fmt.Fprintln(cli.out, "(no courses)")
		return
	}
	for i, c := range v.Courses {
		units, grade := c.Units, c.Grade
		if units == "" {
			units = "-"
		}
		if grade == "" {
			grade = "-"
		}
		_, _ = fmt.Fprintf(cli.out, "#%d  units: %-6s grade: %s\n", i+1, units, grade)
	}
	if !v.CanCalculate {
		_, _ = fmt.Fprintln(cli.out, "(fill in every course to calculate)")
	}
}
