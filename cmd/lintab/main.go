// Command lintab reads a linear programming task from a text file,
// solves it with the selected standard-form strategy, and prints the
// solution.
//
// Usage:
//
//	lintab [-method simple|bigm|twophase] [input-file]
//
// The input file defaults to "input.txt". Any parse or solve failure
// aborts the run with the error's description.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/optimtab/lintab/field"
	"github.com/optimtab/lintab/parse"
	"github.com/optimtab/lintab/simplex"
)

func main() {
	methodName := flag.String("method", "bigm", "standard-form strategy: simple, bigm or twophase")
	flag.Parse()

	path := "input.txt"
	if flag.NArg() > 0 {
		path = flag.Arg(0)
	}

	method, err := methodByName(*methodName)
	if err != nil {
		fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		fatal(err)
	}

	task, err := parse.Task(string(data))
	if err != nil {
		fatal(fmt.Errorf("cannot parse %s: %w", path, err))
	}

	solution, err := simplex.Solve(simplex.MapTask(task, field.BigMFromRat), method)
	if err != nil {
		fatal(fmt.Errorf("cannot solve %s: %w", path, err))
	}

	fmt.Print(solution)
}

func methodByName(name string) (simplex.Method, error) {
	switch name {
	case "simple":
		return simplex.MethodSimple, nil
	case "bigm":
		return simplex.MethodBigM, nil
	case "twophase":
		return simplex.MethodTwoPhase, nil
	default:
		return 0, fmt.Errorf("unknown method %q: %w", name, simplex.ErrUnknownMethod)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
