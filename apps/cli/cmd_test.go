package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/trezcool/gpacalc/core/gpa"
	"github.com/trezcool/gpacalc/tests"
)

func setup(t *testing.T, input string) (*commandLine, *bytes.Buffer) {
	validate, translator := testutil.NewValidator()
	out := new(bytes.Buffer)
	return &commandLine{
		svc:        testutil.NewService(t, testutil.NewConfig(50)),
		validate:   validate,
		translator: translator,
		in:         strings.NewReader(input),
		out:        out,
	}, out
}

type cliTest struct {
	name       string
	args       []string // without program name
	wantErr    error
	wantErrStr string
	wantOut    []string
}

func (tt cliTest) check(t *testing.T, err error, out string) {
	t.Helper()
	if err != nil {
		if tt.wantErr != nil {
			if err != tt.wantErr {
				t.Errorf("cli.run() error = %v, wantErr %v", err, tt.wantErr)
			}
		} else if tt.wantErrStr != "" {
			if got := describeError(err); got != tt.wantErrStr {
				t.Errorf("cli.run() error = %s, wantErrStr %s", got, tt.wantErrStr)
			}
		} else {
			t.Errorf("cli.run() unexpected error = %v", err)
		}
	} else if tt.wantErr != nil || tt.wantErrStr != "" {
		t.Errorf("cli.run() error = nil, wantErr %v%s", tt.wantErr, tt.wantErrStr)
	}

	for _, want := range tt.wantOut {
		if !strings.Contains(out, want) {
			t.Errorf("cli.run() output = %q, want it to contain %q", out, want)
		}
	}
}

func Test_commandLine_run(t *testing.T) {
	tests := []cliTest{
		{name: "no command", wantErr: errHelp, wantOut: []string{"Usage:"}},
		{name: "unknown command", args: []string{"lol"}, wantErr: errHelp},
		{name: "typo", args: []string{"clac"}, wantErr: errHelp, wantOut: []string{`Did you mean "calc"?`}},
	}
	for _, tt := range tests {
		args := append([]string{"gpa"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t, "")
			tt.check(t, cli.run(args), out.String())
		})
	}
}

func Test_commandLine_calc(t *testing.T) {
	tests := []cliTest{
		{name: "no courses", args: []string{"calc"}, wantErr: errHelp},
		{
			name:       "malformed course",
			args:       []string{"calc", "-course", "3"},
			wantErrStr: `invalid value "3" for flag -course: course must be of form UNITS:GRADE (got '3')`,
		},
		{
			name:       "invalid units",
			args:       []string{"calc", "-course", "3:A", "-course", "0:B"},
			wantErrStr: "course #2: units must be a number greater than 0",
		},
		{
			name:       "unknown grade",
			args:       []string{"calc", "-course", "3:G"},
			wantErrStr: "course #1: grade must be one of A, B, C, D, E, F",
		},
		{
			name:       "invalid units and grade",
			args:       []string{"calc", "-course", "3:A", "-course", "abc:Z"},
			wantErrStr: "course #2: units must be a number greater than 0; grade must be one of A, B, C, D, E, F",
		},
		{
			name:       "missing grade",
			args:       []string{"calc", "-course", "3:A", "-course", "2:"},
			wantErrStr: gpa.ErrIncomplete.Error(),
		},
		{
			name:    "second class upper",
			args:    []string{"calc", "-course", "3:A", "-course", "4:B", "-course", "2:C"},
			wantOut: []string{"Your GPA is: 4.11", "Second Class Upper"},
		},
		{
			name:    "first class",
			args:    []string{"calc", "-course", "3:a", "-course", "3:A"},
			wantOut: []string{"Your GPA is: 5.00", "First Class!", `\o/`},
		},
		{
			name:    "pass",
			args:    []string{"calc", "-course", "2:F", "-course", "2:E"},
			wantOut: []string{"Your GPA is: 0.50", "NO GIVE UP"},
		},
		{
			name:    "fractional units",
			args:    []string{"calc", "-course", "1.5:A", "-course", "0.5:F"},
			wantOut: []string{"Your GPA is: 3.75", "Second Class Lower"},
		},
	}
	for _, tt := range tests {
		args := append([]string{"gpa"}, tt.args...)

		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t, "")
			tt.check(t, cli.run(args), out.String())
		})
	}
}

func Test_commandLine_interactive(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantOut []string
		dontOut []string
	}{
		{
			name:    "empty input",
			input:   "",
			dontOut: []string{"Your GPA is"},
		},
		{
			name:    "calculate after filling every course",
			input:   "count 2\nunits 1 3\ngrade 1 a\nunits 2 3\ngrade 2 B\ncalc\nquit\n",
			wantOut: []string{"#1  units: 3      grade: A", "Your GPA is: 4.50", "First Class!"},
		},
		{
			name:    "calculate refused on incomplete form",
			input:   "count 2\nunits 1 3\ngrade 1 A\ncalc\n",
			wantOut: []string{"! " + gpa.ErrIncomplete.Error()},
			dontOut: []string{"Your GPA is"},
		},
		{
			name:    "count can only be set once",
			input:   "count 2\ncount 3\n",
			wantOut: []string{"! " + gpa.ErrCountAlreadySet.Error()},
		},
		{
			name:    "invalid count",
			input:   "count 0\ncount lol\n",
			wantOut: []string{"! count must be 1 or greater", `! count: "lol" is not a number`},
		},
		{
			name:    "invalid units",
			input:   "units 1 -2\n",
			wantOut: []string{"! units must be a number greater than 0"},
		},
		{
			name:    "unknown course",
			input:   "grade 4 A\nrm 0\n",
			wantOut: []string{"! " + gpa.ErrCourseNotFound.Error(), "! rm: course number must be 1 or greater"},
		},
		{
			name:    "remove keeps the order",
			input:   "count 3\nunits 1 1\nunits 2 2\nunits 3 3\nrm 2\n",
			wantOut: []string{"#1  units: 1      grade: -\n#2  units: 3      grade: -\n"},
		},
		{
			name:    "remove every course",
			input:   "rm 1\ncalc\n",
			wantOut: []string{"(no courses)", "! " + gpa.ErrNoCourses.Error()},
		},
		{
			name:    "unknown command",
			input:   "lst\nfoo\n",
			wantOut: []string{`! unknown command "lst", did you mean "list"?`, "! " + errUnknownCommand.Error()},
		},
		{
			name:    "stops at quit",
			input:   "quit\nadd\n",
			dontOut: []string{"#2"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cli, out := setup(t, tt.input)
			if err := cli.run([]string{"gpa", "interactive"}); err != nil {
				t.Fatalf("cli.run() unexpected error = %v", err)
			}
			for _, want := range tt.wantOut {
				if !strings.Contains(out.String(), want) {
					t.Errorf("output = %q, want it to contain %q", out.String(), want)
				}
			}
			for _, dont := range tt.dontOut {
				if strings.Contains(out.String(), dont) {
					t.Errorf("output = %q, want it not to contain %q", out.String(), dont)
				}
			}
		})
	}
}

func Test_suggest(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{word: "clac", want: "calc"},
		{word: "interactiv", want: "interactive"},
		{word: "zzz", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			if got := suggest(tt.word, commands); got != tt.want {
				t.Errorf("suggest() = %q, want %q", got, tt.want)
			}
		})
	}
}
