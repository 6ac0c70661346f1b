// Command rootlisp is an interactive read-eval-print driver for the
// Roots-of-Lisp interpreter implemented by the sexp and eval packages.
//
// It is deliberately thin: argument parsing, stream handling, and exit
// codes live here, outside the language core, per the distilled spec's
// scope (§1).
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/rootlisp/rootlisp/eval"
	"github.com/rootlisp/rootlisp/internal/config"
	"github.com/rootlisp/rootlisp/sexp"
)

// maxLineBytes and maxOutputBytes are the REPL's fixed buffer sizes per
// the distilled spec's external-interfaces section: a 999-byte input
// line and a 1,000-byte bounded output buffer.
const (
	maxLineBytes   = 999
	maxOutputBytes = 1000
)

// quitLine is the exact input that terminates the loop (§6: "A line equal
// exactly to `(quit)\n`").
const quitLine = "(quit)\n"

type options struct {
	Prompt string `short:"p" long:"prompt" description:"interactive prompt string"`
	Dot    bool   `long:"dot" description:"print results in dot notation instead of list notation"`
	Strict bool   `long:"strict" description:"panic a structured fault instead of silently returning nil on malformed forms"`
	Config string `short:"c" long:"config" description:"path to a YAML config file"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		// go-flags has already printed usage or the parse error.
		os.Exit(0)
	}

	cfg, err := config.Load(opts.Config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(0)
	}
	cfg.ApplyFlags(opts.Prompt, opts.Dot, opts.Strict)

	ev := &eval.Evaluator{Strict: cfg.Strict}
	repl(ev, bufio.NewReaderSize(os.Stdin, maxLineBytes+1), cfg, os.Stdout, os.Stderr)
}

// repl implements the external-interfaces loop: read one line (up to
// maxLineBytes), check for the quit sentinel, evaluate every form the
// line contains, print each result, and reissue the prompt. End-of-stream
// and the quit sentinel both exit with status 0.
func repl(ev *eval.Evaluator, in *bufio.Reader, cfg *config.Config, out, errOut *os.File) {
	for {
		fmt.Fprint(out, cfg.Prompt)
		line, err := in.ReadString('\n')
		if line == quitLine {
			os.Exit(0)
		}
		if len(line) > maxLineBytes {
			line = line[:maxLineBytes]
		}
		evalLine(ev, line, cfg, out, errOut)
		if err != nil {
			os.Exit(0)
		}
	}
}

// evalLine peels every top-level form out of line (the reader's cursor
// contract) and prints each result in turn. A *eval.Fault raised in
// strict mode is reported to errOut and does not terminate the process.
func evalLine(ev *eval.Evaluator, line string, cfg *config.Config, out, errOut *os.File) {
	defer func() {
		if r := recover(); r != nil {
			if f, ok := r.(*eval.Fault); ok {
				fmt.Fprintln(errOut, f)
				return
			}
			panic(r)
		}
	}()

	r := sexp.NewReader([]byte(line))
	for {
		expr, ok := r.Read()
		if !ok {
			return
		}
		result := ev.Eval(expr, sexp.Nil)
		printResult(result, cfg.Dot, out)
	}
}

func printResult(v *sexp.Value, dot bool, out *os.File) {
	buf := make([]byte, maxOutputBytes)
	var n int
	if dot {
		n = sexp.PrintDotBounded(v, buf)
	} else {
		n = sexp.PrintListBounded(v, buf)
	}
	if n > len(buf) {
		n = len(buf)
	}
	fmt.Fprintln(out, string(buf[:n]))
}
