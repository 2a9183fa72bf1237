package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fenlang/fen/pkg/core/value"
	"github.com/fenlang/fen/pkg/eval"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: fen [run <source.fen>]")
		fmt.Fprintln(os.Stderr, "With no arguments, fen reads expressions from stdin.")
	}
	flag.Parse()

	args := flag.Args()
	switch {
	case len(args) == 0:
		repl()
	case len(args) == 2 && args[0] == "run":
		if err := runFile(args[1]); err != nil {
			fmt.Fprintf(os.Stderr, "fen: %v\n", err)
			os.Exit(1)
		}
	default:
		flag.Usage()
		os.Exit(1)
	}
}

// runFile evaluates a script line by line against one shared
// environment. Expression results print to stdout; declarations and
// assignments are silent. An invalid result is reported with its line
// number and evaluation continues.
func runFile(path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	env := eval.NewEnv()
	for lineno, line := range strings.Split(string(src), "\n") {
		if blank(line) {
			continue
		}
		res, err := eval.Evaluate([]byte(line), env)
		if err != nil {
			return fmt.Errorf("%s:%d: %v", path, lineno+1, err)
		}
		if res.Kind() == value.KindInvalid {
			fmt.Fprintf(os.Stderr, "%s:%d: invalid result\n", path, lineno+1)
			continue
		}
		if !res.Named() {
			fmt.Println(res.Text())
		}
	}
	return nil
}

func repl() {
	env := eval.NewEnv()
	in := bufio.NewScanner(os.Stdin)
	fmt.Print("> ")
	for in.Scan() {
		line := in.Text()
		if !blank(line) {
			res, err := eval.Evaluate([]byte(line), env)
			switch {
			case err != nil:
				fmt.Fprintf(os.Stderr, "error: %v\n", err)
			case res.Kind() == value.KindInvalid:
				fmt.Println("invalid")
			default:
				fmt.Println(res.Text())
			}
		}
		fmt.Print("> ")
	}
}

func blank(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed == "" || strings.HasPrefix(trimmed, "#")
}
