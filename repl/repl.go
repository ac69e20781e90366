// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package repl provides the interactive conversion tools.
package repl

import (
	"io"
	"strings"

	"github.com/ezrec/insn20/internal"
	"github.com/ezrec/insn20/translate"
)

var fprintf = translate.Fprintf

// Tool evaluates one line of interactive input.
type Tool interface {
	Banner() string                        // Printed once, before the first prompt.
	Prompt() string                        // Printed before each line of input.
	Eval(text string, out io.Writer) error // Converts one line of input.
}

// Tools maps tool names to tools.
var Tools = map[string]Tool{
	"widen":  Widen{},
	"narrow": Narrow{},
	"create": Create{},
	"asm":    Assemble{},
}

// Run reads lines from in, and evaluates each with tool, until an empty line
// or the end of input. Evaluation errors are printed, and do not stop the
// loop. Only read and write errors are returned.
func Run(in io.Reader, out io.Writer, tool Tool) (err error) {
	scanner := internal.NewScanner(in)

	if banner := tool.Banner(); len(banner) != 0 {
		_, err = fprintf(out, "%s\n", banner)
		if err != nil {
			return
		}
	}

	_, err = io.WriteString(out, tool.Prompt())
	if err != nil {
		return
	}

	for _, text := range internal.Lines(scanner) {
		if len(strings.TrimSpace(text)) == 0 {
			return
		}

		eval_err := tool.Eval(text, out)
		if eval_err != nil {
			_, err = fprintf(out, "ERROR! %v\n\n", eval_err)
			if err != nil {
				return
			}
		}

		_, err = io.WriteString(out, tool.Prompt())
		if err != nil {
			return
		}
	}

	err = scanner.Err()
	return
}
