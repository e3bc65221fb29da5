package main

// This is an interpreter for the Lox programming language written in Go.

import (
	"fmt"
	"os"

	"git.sr.ht/~sircmpwn/getopt"

	"github.com/connorrein/lox/internal/logs"
	"github.com/connorrein/lox/internal/lox"
)

func main() {
	var (
		debug      bool
		logFile    string
		dumpTokens bool
		dumpAst    bool
	)

	opts, optind, err := getopt.Getopts(os.Args, "dhl:pa")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		usage(os.Stderr)
		os.Exit(64)
	}
	for _, opt := range opts {
		switch opt.Option {
		case 'd':
			debug = true
		case 'l':
			logFile = opt.Value
		case 'p':
			dumpTokens = true
		case 'a':
			dumpAst = true
		case 'h':
			usage(os.Stdout)
			os.Exit(0)
		}
	}
	args := os.Args[optind:]
	if len(args) > 1 {
		usage(os.Stderr)
		os.Exit(64)
	}

	if debug {
		logs.SetDebug()
	}
	closeLogs, err := logs.Setup(os.Stderr, logFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLogs()

	reporter := lox.NewSimpleReporter(os.Stderr)
	if len(args) == 1 {
		runFile(args[0], reporter, dumpTokens, dumpAst)
	} else {
		runPrompt(reporter)
	}
}

func usage(w *os.File) {
	fmt.Fprintln(w, "Usage: golox [-d] [-l FILE] [-p] [-a] [script]")
	fmt.Fprintln(w, "  -d       enable debug logging")
	fmt.Fprintln(w, "  -l FILE  also append logs to FILE")
	fmt.Fprintln(w, "  -p       print the scanned tokens and exit")
	fmt.Fprintln(w, "  -a       print the parsed syntax tree and exit")
	fmt.Fprintln(w, "  -h       show this help")
}

// Run the given file as a script
func runFile(fpath string, reporter lox.Reporter, dumpTokens, dumpAst bool) {
	bytes, err := os.ReadFile(fpath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	script := string(bytes)

	scanner := lox.NewScanner([]rune(script), reporter)
	tokens := scanner.Scan()
	if dumpTokens {
		for _, tok := range tokens {
			fmt.Println(tok)
		}
		exitIf(reporter.HadError(), 65)
		return
	}

	parser := lox.NewParser(tokens, reporter)
	statements := parser.Parse()
	if dumpAst {
		printer := new(lox.AstPrinter)
		fmt.Print(printer.Print(statements))
		exitIf(reporter.HadError(), 65)
		return
	}
	exitIf(reporter.HadError(), 65)

	interpreter := lox.NewInterpreter(os.Stdout, reporter, false)
	interpreter.Interpret(statements)
	exitIf(reporter.HadRuntimeError(), 70)
}

func exitIf(cond bool, status int) {
	if cond {
		os.Exit(status)
	}
}
