/*
 * MUCAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package tool

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"

	"devt.de/krotik/common/fileutil"
	"devt.de/krotik/common/termutil"
	"devt.de/krotik/mucal/analysis"
	"devt.de/krotik/mucal/config"
	"devt.de/krotik/mucal/interpreter"
	"devt.de/krotik/mucal/model"
	"devt.de/krotik/mucal/parser"
	"devt.de/krotik/mucal/util"
)

/*
CLIInterpreter is a commandline interpreter for mu-calculus queries against
labelled transition systems.
*/
type CLIInterpreter struct {
	Kripke       *model.Kripke // Structure of the currently loaded LTS
	KripkeSource string        // Name of the currently loaded LTS file
	Optimized    bool          // Flag if the Emerson-Lei strategy is used

	// Customizations of output and input handling

	CustomWelcomeMessage string
	CustomHelpString     string

	EntryFile string // LTS file which is loaded on start

	// Parameter these can either be set programmatically or via CLI args

	Dir      *string // Root dir for the interpreter
	LogFile  *string // Logfile (blank for stdout)
	LogLevel *string // Log level string (Debug, Info, Error)

	// User terminal

	Term termutil.ConsoleLineTerminal

	// Log output

	LogOut io.Writer

	logger util.Logger // Logger object for log messages
}

/*
NewCLIInterpreter creates a new commandline interpreter for MUCAL.
*/
func NewCLIInterpreter() *CLIInterpreter {
	return &CLIInterpreter{nil, "", false, "", "", "", nil, nil, nil, nil,
		os.Stdout, nil}
}

/*
ParseArgs parses the command line arguments. Call this after adding custom
flags. Returns true if the program should exit.
*/
func (i *CLIInterpreter) ParseArgs() bool {

	if i.Dir != nil && i.LogFile != nil && i.LogLevel != nil {
		return false
	}

	wd, _ := os.Getwd()

	i.Dir = flag.String("dir", wd, "Root directory for the MUCAL interpreter")
	i.LogFile = flag.String("logfile", "", "Log to a file")
	i.LogLevel = flag.String("loglevel", "Info", "Logging level (Debug, Info, Error)")
	showHelp := flag.Bool("help", false, "Show this help message")

	flag.Usage = func() {
		fmt.Fprintln(flag.CommandLine.Output())
		fmt.Fprintln(flag.CommandLine.Output(), fmt.Sprintf("Usage of %s [options] [file]", osArgs[0]))
		fmt.Fprintln(flag.CommandLine.Output())
		flag.PrintDefaults()
		fmt.Fprintln(flag.CommandLine.Output())
	}

	if len(osArgs) >= 2 {
		flag.CommandLine.Parse(osArgs[1:])

		if cargs := flag.Args(); len(cargs) > 0 {
			i.EntryFile = flag.Arg(0)
		}

		if *showHelp {
			flag.Usage()
		}

		return *showHelp
	}

	return false
}

/*
CreateLogger creates the logger of this interpreter. This function expects
LogFile and LogLevel to be set.
*/
func (i *CLIInterpreter) CreateLogger() error {
	var logger util.Logger
	var err error

	if i.logger != nil {
		return nil
	}

	// Check if we should log to a file

	if i.LogFile != nil && *i.LogFile != "" {
		var logWriter io.Writer

		logFileRollover := fileutil.SizeBasedRolloverCondition(1000000) // Each file can be up to a megabyte
		logWriter, err = fileutil.NewMultiFileBuffer(*i.LogFile, fileutil.ConsecutiveNumberIterator(10), logFileRollover)
		logger = util.NewBufferLogger(logWriter)

	} else {

		// Log to the console by default

		logger = util.NewStdOutLogger()
	}

	// Set the log level

	if err == nil {
		if i.LogLevel != nil && *i.LogLevel != "" {
			logger, err = util.NewLogLevelLogger(logger, *i.LogLevel)
		}

		if err == nil {
			i.logger = logger
		}
	}

	return err
}

/*
CreateTerm creates a new console terminal for stdout.
*/
func (i *CLIInterpreter) CreateTerm() error {
	var err error

	if i.Term == nil {
		i.Term, err = termutil.NewConsoleLineTerminal(os.Stdout)
	}

	return err
}

/*
LoadInitialFile loads the initial LTS file if it was given.
*/
func (i *CLIInterpreter) LoadInitialFile() error {
	var err error

	if i.EntryFile != "" {
		err = i.loadFile(i.EntryFile)
	}

	return err
}

/*
loadFile loads an LTS file and builds its Kripke structure.
*/
func (i *CLIInterpreter) loadFile(file string) error {

	path := file
	if !filepath.IsAbs(path) && i.Dir != nil {
		path = filepath.Join(*i.Dir, file)
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}

	aut, err := model.ParseAut(file, string(content))
	if err != nil {
		return err
	}

	i.Kripke = aut.ToKripke()
	i.KripkeSource = file

	i.logger.LogDebug(fmt.Sprintf("Loaded %v: %v", file, i.Kripke))

	return nil
}

/*
Interpret starts the MUCAL console interpreter. Starts an interactive console
in the current tty if the interactive flag is set.
*/
func (i *CLIInterpreter) Interpret(interactive bool) error {

	if i.ParseArgs() {
		return nil
	}

	err := i.CreateTerm()

	if interactive {
		fmt.Fprintln(i.LogOut, fmt.Sprintf("MUCAL %v - mu-calculus model checker", config.ProductVersion))
	}

	// Create the logger

	if err == nil {

		if err = i.CreateLogger(); err == nil {

			if interactive {
				if lll, ok := i.logger.(*util.LogLevelLogger); ok {
					fmt.Fprint(i.LogOut, fmt.Sprintf("Log level: %v - ", lll.Level()))
				}

				fmt.Fprintln(i.LogOut, fmt.Sprintf("Root directory: %v", *i.Dir))

				if i.CustomWelcomeMessage != "" {
					fmt.Fprintln(i.LogOut, fmt.Sprintf(i.CustomWelcomeMessage))
				}
			}

			// Load the initial file if given

			if err = i.LoadInitialFile(); err == nil && interactive {

				// Add history functionality with file persistence

				histFile := filepath.Join(*i.Dir, config.Str(config.HistoryFileName))

				i.Term, err = termutil.AddHistoryMixin(i.Term, histFile,
					func(s string) bool {
						return i.isExitLine(s)
					})

				if err == nil {

					if err = i.Term.StartTerm(); err == nil {
						var line string

						defer i.Term.StopTerm()

						fmt.Fprintln(i.LogOut, "Type 'q' or 'quit' to exit the shell and '?' to get help")

						line, err = i.Term.NextLine()
						for err == nil && !i.isExitLine(line) {
							trimmedLine := strings.TrimSpace(line)

							i.HandleInput(i.Term, trimmedLine)

							line, err = i.Term.NextLine()
						}
					}
				}
			}
		}
	}

	return err
}

/*
isExitLine returns if a given input line should exit the interpreter.
*/
func (i *CLIInterpreter) isExitLine(s string) bool {
	return s == "exit" || s == "q" || s == "quit" || s == "bye" || s == "\x04"
}

/*
HandleInput handles input to this interpreter. It parses a given input line
and outputs on the given output terminal. Multiple inputs can be separated
with semicolons.
*/
func (i *CLIInterpreter) HandleInput(ot OutputTerminal, line string) {

	for _, entry := range strings.Split(line, ";") {
		entry = strings.TrimSpace(entry)

		if entry == "" {
			continue
		}

		if entry == "?" {

			// Show help

			ot.WriteString(fmt.Sprintf("MUCAL %v\n", config.ProductVersion))
			ot.WriteString(fmt.Sprint("\n"))
			ot.WriteString(fmt.Sprint("Console supports mu-calculus formulas and the following special commands:\n"))
			ot.WriteString(fmt.Sprint("\n"))
			ot.WriteString(fmt.Sprint("    open <file> - Load an LTS file in Aldebaran format.\n"))
			ot.WriteString(fmt.Sprint("    switch - Toggle between the naive and the Emerson-Lei strategy.\n"))
			ot.WriteString(fmt.Sprint("    depth <formula> - Show the depth measures of a formula.\n"))
			if i.CustomHelpString != "" {
				ot.WriteString(i.CustomHelpString)
			}
			ot.WriteString(fmt.Sprint("\n"))

		} else if entry == "switch" {

			i.Optimized = !i.Optimized

			ot.WriteString(fmt.Sprintf("Now using the %v algorithm\n", i.algorithmName()))

		} else if strings.HasPrefix(entry, "open ") {

			if err := i.loadFile(strings.TrimSpace(entry[5:])); err != nil {
				ot.WriteString(fmt.Sprintln(err.Error()))
			} else {
				ot.WriteString(fmt.Sprintln(fmt.Sprintf("Loaded %v - %v",
					i.KripkeSource, i.Kripke)))
			}

		} else if strings.HasPrefix(entry, "depth ") {

			i.handleDepth(ot, strings.TrimSpace(entry[6:]))

		} else {

			i.handleFormula(ot, entry)
		}
	}
}

/*
handleDepth reports the depth measures of a given formula.
*/
func (i *CLIInterpreter) handleDepth(ot OutputTerminal, formula string) {

	ast, err := parser.Parse("console input", formula)
	if err != nil {
		ot.WriteString(fmt.Sprintln(err.Error()))
		return
	}

	ot.WriteString(fmt.Sprintln(fmt.Sprintf("Nesting depth             : %v",
		analysis.NestingDepth(ast))))
	ot.WriteString(fmt.Sprintln(fmt.Sprintf("Alternation depth         : %v",
		analysis.AlternationDepth(ast))))
	ot.WriteString(fmt.Sprintln(fmt.Sprintf("Dependent alternation depth: %v",
		analysis.DependentAlternationDepth(ast))))
}

/*
handleFormula evaluates a given formula against the loaded LTS.
*/
func (i *CLIInterpreter) handleFormula(ot OutputTerminal, formula string) {

	if i.Kripke == nil {
		ot.WriteString(fmt.Sprintln("No LTS loaded yet. Open a file with: open <file>"))
		return
	}

	var erp *interpreter.RuntimeProvider

	if i.Optimized {
		erp = interpreter.NewEmersonLeiRuntimeProvider("console input", i.Kripke, i.logger)
	} else {
		erp = interpreter.NewNaiveRuntimeProvider("console input", i.Kripke, i.logger)
	}

	ast, err := parser.ParseWithRuntime("console input", formula, erp)
	if err != nil {
		ot.WriteString(fmt.Sprintln(err.Error()))
		return
	}

	res, err := erp.Evaluate(ast)
	if err != nil {
		ot.WriteString(fmt.Sprintln(err.Error()))
		return
	}

	if res.Count() < 1000 {
		ot.WriteString(fmt.Sprintln(fmt.Sprintf("States: %v", res)))
	}

	ot.WriteString(fmt.Sprintln(fmt.Sprintf(
		"%v of %v states satisfy the formula (%v algorithm)",
		res.Count(), i.Kripke.States.Count(), i.algorithmName())))
}

/*
algorithmName returns the name of the currently selected evaluation strategy.
*/
func (i *CLIInterpreter) algorithmName() string {
	if i.Optimized {
		return "Emerson-Lei"
	}
	return "naive"
}
