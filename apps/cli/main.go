package main

import (
	"io"
	"io/ioutil"
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"golang.org/x/term"

	"github.com/trezcool/gpacalc/core"
	"github.com/trezcool/gpacalc/core/gpa"
	logsvc "github.com/trezcool/gpacalc/services/logger"
	inmemdb "github.com/trezcool/gpacalc/storage/inmem"
)

func main() {
	conf := core.NewConfig()

	var logOut io.Writer = ioutil.Discard
	if conf.Verbose {
		logOut = os.Stderr
	}
	stdLogger := log.New(logOut, "GPA : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile)
	logger := logsvc.NewRollbarLogger(stdLogger, conf)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")

	translator := core.NewTranslator()
	validate := validator.New()
	core.InitValidators(validate, translator)
	gpa.InitValidators(validate, translator)

	db, err := inmemdb.Open()
	errAndDie(err)

	// start CLI
	cli := commandLine{
		svc:        gpa.NewService(inmemdb.NewFormRepository(db), validate, translator, logger, conf),
		validate:   validate,
		translator: translator,
		in:         os.Stdin,
		out:        os.Stdout,
		isTerminal: term.IsTerminal(int(os.Stdin.Fd())),
	}
	if err := cli.run(os.Args); err != nil {
		if err != errHelp {
			_, _ = os.Stderr.WriteString("\nerror: " + describeError(err) + "\n")
		}
		os.Exit(1)
	}
}

func errAndDie(err error) {
	if err != nil {
		log.Fatal(err)
	}
}
