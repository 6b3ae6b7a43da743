package main

import (
	"fmt"
	"os"
	"strconv"

	"lambda/trampoline-go/pkg/ast"
	"lambda/trampoline-go/pkg/church"
	"lambda/trampoline-go/pkg/interpreter"
	"lambda/trampoline-go/pkg/runtime"
)

const defaultOmegaSteps = 1_000_000

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return runDemo()
	}
	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "demo":
		return runDemo()
	case "omega":
		return runOmega(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		printUsage()
		return 1
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: lambdatramp [command]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  demo            evaluate sample terms through both evaluators (default)")
	fmt.Fprintln(os.Stderr, "  omega [steps]   drive the non-terminating self-application for a bounded number of steps")
}

func runDemo() int {
	samples := []struct {
		label string
		term  ast.Term
	}{
		{"identity applied to identity", ast.App(ast.Abs("x", ast.Var("x")), ast.Abs("y", ast.Var("y")))},
		{"pred two", ast.App(church.Pred(), church.Numeral(2))},
		{"one plus two", ast.AppN(church.Plus(), church.Numeral(1), church.Numeral(2))},
	}

	interp := interpreter.New()
	for _, sample := range samples {
		fmt.Printf("%s:\n  %s\n", sample.label, ast.String(sample.term))

		env := runtime.NewEnvironment()
		naiveValue, err := interp.Evaluate(sample.term, env)
		if err != nil {
			fmt.Fprintf(os.Stderr, "naive evaluation failed: %v\n", err)
			return 1
		}
		trampValue, err := interp.EvaluateTrampolined(sample.term, env).Run()
		if err != nil {
			fmt.Fprintf(os.Stderr, "trampolined evaluation failed: %v\n", err)
			return 1
		}
		if !runtime.ValuesEqual(naiveValue, trampValue) {
			fmt.Fprintln(os.Stderr, "evaluators disagree")
			return 1
		}
		if closure, ok := trampValue.(*runtime.ClosureValue); ok {
			fmt.Printf("  => %s\n", closure)
		} else {
			fmt.Printf("  => %#v\n", trampValue)
		}
	}
	return 0
}

// runOmega shows the bounded-driver usage on the term that would overflow
// the native stack under the recursive evaluator.
func runOmega(args []string) int {
	steps := defaultOmegaSteps
	if len(args) > 0 {
		parsed, err := strconv.Atoi(args[0])
		if err != nil || parsed < 0 {
			fmt.Fprintf(os.Stderr, "invalid step count %q\n", args[0])
			return 1
		}
		steps = parsed
	}

	selfApply := ast.Abs("x", ast.App(ast.Var("x"), ast.Var("x")))
	omega := ast.App(selfApply, selfApply)
	fmt.Printf("driving %s for up to %d steps\n", ast.String(omega), steps)

	tramp := interpreter.New().EvaluateTrampolined(omega, runtime.NewEnvironment())
	value, done, err := tramp.RunMaxSteps(steps)
	switch {
	case err != nil:
		fmt.Fprintf(os.Stderr, "evaluation failed: %v\n", err)
		return 1
	case done:
		// Unreachable for omega, but the driver cannot know that.
		fmt.Printf("finished: %v\n", value)
	default:
		fmt.Printf("still running after %d steps; native stack stayed flat\n", steps)
	}
	return 0
}
