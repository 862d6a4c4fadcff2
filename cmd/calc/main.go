package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/zephyrtronium/calc"
)

func main() {
	log.SetFlags(0)
	var (
		inname, verb      string
		echo, flat, prmpt bool
	)
	flag.StringVar(&inname, "in", "", "input file (default stdin if no args given)")
	flag.StringVar(&verb, "fmt", "%.6f", "result formatting string")
	flag.BoolVar(&echo, "echo", false, "print expressions after expanding function calls")
	flag.BoolVar(&flat, "flat", false, "do not expand function calls")
	flag.BoolVar(&prmpt, "prompt", false, "print a prompt before reading each line")
	flag.Parse()

	c := calculator{out: os.Stdout, verb: verb + "\n", echo: echo, flat: flat}
	for _, arg := range flag.Args() {
		c.line(arg)
	}
	f, err := infile(inname, flag.NArg() == 0)
	if err != nil {
		log.Fatal(err)
	}
	if f == nil {
		return
	}
	defer f.Close()
	if prmpt {
		c.prompt = "> "
	}
	if err := c.repl(f); err != nil {
		log.Fatal(err)
	}
}

// calculator evaluates lines and writes their results.
type calculator struct {
	out    io.Writer
	verb   string
	prompt string
	echo   bool
	flat   bool
}

// repl evaluates each line from in until EOF or a line reading quit or exit.
func (c *calculator) repl(in io.Reader) error {
	scan := bufio.NewScanner(in)
	for {
		if c.prompt != "" {
			fmt.Fprint(c.out, c.prompt)
		}
		if !scan.Scan() {
			return scan.Err()
		}
		line := strings.TrimSpace(scan.Text())
		switch line {
		case "":
			continue
		case "quit", "exit":
			return nil
		}
		c.line(line)
	}
}

// line evaluates one expression and writes the result or error.
func (c *calculator) line(expr string) {
	eval := calc.Eval
	if c.flat {
		eval = calc.EvalFlat
	}
	if c.echo {
		shown := expr
		if !c.flat {
			shown = calc.Expand(expr)
		}
		fmt.Fprintf(c.out, "%s : ", shown)
	}
	r, err := eval(expr)
	if err != nil {
		fmt.Fprintln(c.out, "error:", err)
		return
	}
	fmt.Fprint(c.out, "= ")
	fmt.Fprintf(c.out, c.verb, r)
}

func infile(inname string, std bool) (io.ReadCloser, error) {
	switch {
	case inname != "" && inname != "-":
		return os.Open(inname)
	case inname == "-", std:
		return os.Stdin, nil
	}
	return nil, nil
}
