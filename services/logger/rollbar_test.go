package logsvc

import (
	"bytes"
	"errors"
	"log"
	"testing"

	"github.com/trezcool/gpacalc/core"
)

func TestRollbarLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRollbarLogger(log.New(&buf, "", 0), &core.Config{Env: "TEST", TestMode: true})
	logger.Enable(false)

	tests := []struct {
		name string
		log  func(msg string, args ...interface{})
		args []interface{}
		want string
	}{
		{name: "debug", log: logger.Debug, want: "DEBUG: calculated\n"},
		{name: "info", log: logger.Info, args: []interface{}{core.Person{ID: "abc"}}, want: "INFO: calculated\nsession: abc\n"},
		{name: "warn", log: logger.Warn, args: []interface{}{errors.New("boom")}, want: "WARN: calculated\nboom\n"},
		{
			name: "error",
			log:  logger.Error,
			args: []interface{}{map[string]interface{}{"count": 2}},
			want: "ERROR: calculated\nmap[count:2]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.log("calculated", tt.args...)
			if got := buf.String(); got != tt.want {
				t.Errorf("%s() printed %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func TestRollbarLogger_minLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewRollbarLogger(log.New(&buf, "", 0), &core.Config{Env: "PROD"})
	logger.Enable(false)

	logger.Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("Debug() printed %q outside debug mode", buf.String())
	}
	logger.Info("shown")
	if got := buf.String(); got != "INFO: shown\n" {
		t.Errorf("Info() printed %q, want %q", got, "INFO: shown\n")
	}
}

func TestRollbarLogger_prepare(t *testing.T) {
	logger := NewRollbarLogger(log.New(&bytes.Buffer{}, "", 0), &core.Config{})
	logger.Enable(false)

	err := errors.New("boom")
	got := logger.prepare("msg", []interface{}{core.Person{ID: "a"}, err, core.Person{ID: "b"}})
	if len(got) != 2 || got[0] != "msg" || got[1] != err {
		t.Errorf("prepare() = %v, want [msg boom]", got)
	}
}
