package main

import (
	"cavelife/src/universe"
	"cavelife/src/view"
	"github.com/charmbracelet/log"
	"github.com/integrii/flaggy"
	"io"
	"os"
	"strings"
)

type EnvOptions struct {
	headless   bool
	randomData bool
	maxSteps   int
	logFile    string
}

func main() {
	eo, uo := initOptions()

	logger, closeLog := newLogger(eo)
	defer closeLog()

	s := universe.NewSession(*uo, logger)
	if eo.randomData {
		s.Handle(universe.CmdRegen)
	}

	if !eo.headless {
		v := view.NewConsoleUI(logger)
		s.RegisterViewer(v)
		v.Start()
		return
	}

	out := view.NewConsoleOut(os.Stdout)
	s.RegisterViewer(out)
	out.Start()
	s.Handle(universe.CmdToggleRun)
	for i := 0; i < eo.maxSteps; i++ {
		s.Tick()
	}
	s.Handle(universe.CmdQuit)
}

//newLogger logs to stderr in headless mode
//the interactive mode owns the terminal, so it logs to the file or nowhere
func newLogger(eo *EnvOptions) (*log.Logger, func()) {
	var w io.Writer = io.Discard
	closeFn := func() {}
	if eo.headless {
		w = os.Stderr
	}
	if eo.logFile != "" {
		f, err := os.OpenFile(eo.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			flaggy.ShowHelpAndExit("can't open the log file: " + err.Error())
		}
		w = f
		closeFn = func() { _ = f.Close() }
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "cavelife",
	})
	if eo.logFile != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeFn
}

func initOptions() (eo *EnvOptions, uo *universe.Options) {
	o := universe.DefaultOptions
	uo = &o
	eo = &EnvOptions{maxSteps: 100}

	flaggy.SetName("cavelife")
	flaggy.SetDescription("Watch and drive small grid generation algorithms in the terminal")
	flaggy.DefaultParser.ShowHelpOnUnexpected = true
	flaggy.Int(&uo.Width, "x", "width", "Width of the grid")
	flaggy.Int(&uo.Height, "y", "height", "Height of the grid")
	flaggy.Int64(&uo.Seed, "s", "seed", "Seed of the random source, 'n' in the UI increments it")
	flaggy.Duration(&uo.Interval, "i", "interval", "Interval between the ticks while running, for example 150ms")
	flaggy.String(&uo.Algorithm, "a", "algorithm", "Initial algorithm ["+strings.Join(universe.AlgorithmNames(), "|")+"]")
	flaggy.String(&uo.Engine, "e", "engine", "Life engine to use ["+strings.Join(universe.EngineNames(), "|")+"]")
	flaggy.Bool(&eo.randomData, "r", "random", "Regenerate the grid from the seed on start")
	flaggy.Bool(&eo.headless, "H", "headless", "Run without the terminal UI and print the result")
	flaggy.Int(&eo.maxSteps, "m", "maxSteps", "Steps to run in headless mode")
	flaggy.String(&eo.logFile, "l", "log", "Write the debug log to this file")

	flaggy.Parse()

	if err := uo.Validate(); err != nil {
		flaggy.ShowHelpAndExit(err.Error())
	}
	if eo.maxSteps < 0 {
		flaggy.ShowHelpAndExit("maxSteps must not be negative")
	}

	return
}
