// Command fsmctl is a CLI front-end over the regex/NFA/lexer core:
// compile a pattern, test it against input, search text, export DOT,
// or run a lexer spec against a file. Grounded on vmctl's cli.App
// command layout (app/vmctl/main.go) and the teacher's regexviz/demo
// command-line tools.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"

	"github.com/brenns10/fsm/internal/flog"
	"github.com/brenns10/fsm/lex"
	"github.com/brenns10/fsm/nfa"
	"github.com/brenns10/fsm/persist"
	"github.com/brenns10/fsm/regex"
	"github.com/brenns10/fsm/search"
)

func main() {
	app := &cli.App{
		Name:  "fsmctl",
		Usage: "compile, run, search, and export finite-automata-based regexes and lexers",
		Before: func(c *cli.Context) error {
			flog.SetLevel(c.String("log-level"))
			return nil
		},
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "log-level", Value: "info", Usage: "one of info, error, fatal"},
		},
		Commands: []*cli.Command{
			matchCommand,
			searchCommand,
			lexCommand,
			dotCommand,
			nfaCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		flog.Fatalf("%v", err)
	}
}

var matchCommand = &cli.Command{
	Name:      "match",
	Usage:     "test whether a pattern accepts a whole string",
	ArgsUsage: "<pattern> <input>",
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 2 {
			return cli.Exit("match requires exactly <pattern> <input>", 1)
		}
		n, err := regex.Parse(c.Args().Get(0))
		if err != nil {
			return cli.Exit(fmt.Errorf("bad pattern: %w", err), 1)
		}
		runID := uuid.New()
		ok := nfa.AcceptsString(n, c.Args().Get(1))
		flog.Infof("run=%s pattern=%q input=%q accepted=%v", runID, c.Args().Get(0), c.Args().Get(1), ok)
		fmt.Println(ok)
		return nil
	},
}

var searchCommand = &cli.Command{
	Name:      "search",
	Usage:     "find matches of a pattern within text",
	ArgsUsage: "<pattern> <text>",
	Flags: []cli.Flag{
		&cli.BoolFlag{Name: "greedy", Usage: "stop after the first hit"},
		&cli.BoolFlag{Name: "overlap", Usage: "allow overlapping hits"},
	},
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 2 {
			return cli.Exit("search requires exactly <pattern> <text>", 1)
		}
		n, err := regex.Parse(c.Args().Get(0))
		if err != nil {
			return cli.Exit(fmt.Errorf("bad pattern: %w", err), 1)
		}
		hits := search.Find(n, c.Args().Get(1), c.Bool("greedy"), c.Bool("overlap"))
		for _, h := range hits {
			fmt.Printf("%d\t%d\n", h.Start, h.Length)
		}
		return nil
	},
}

var lexCommand = &cli.Command{
	Name:      "lex",
	Usage:     "tokenize input against a lexer spec file",
	ArgsUsage: "<spec-file> <input-file>",
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 2 {
			return cli.Exit("lex requires exactly <spec-file> <input-file>", 1)
		}
		specBytes, err := os.ReadFile(c.Args().Get(0))
		if err != nil {
			return cli.Exit(err, 1)
		}
		inputBytes, err := os.ReadFile(c.Args().Get(1))
		if err != nil {
			return cli.Exit(err, 1)
		}
		l := lex.New()
		if err := l.Load(string(specBytes)); err != nil {
			return cli.Exit(fmt.Errorf("loading lexer spec: %w", err), 1)
		}

		input := []rune(string(inputBytes))
		for len(input) > 0 {
			name, length := l.Yylex(string(input))
			if length < 0 {
				flog.Errorf("no token matched at %q", string(input[:min(len(input), 20)]))
				return cli.Exit("tokenization failed: no match", 1)
			}
			fmt.Printf("%s\t%q\n", name, string(input[:length]))
			input = input[length:]
		}
		return nil
	},
}

var dotCommand = &cli.Command{
	Name:      "dot",
	Usage:     "export a compiled pattern's NFA as Graphviz DOT",
	ArgsUsage: "<pattern>",
	Action: func(c *cli.Context) error {
		if c.Args().Len() != 1 {
			return cli.Exit("dot requires exactly <pattern>", 1)
		}
		n, err := regex.Parse(c.Args().Get(0))
		if err != nil {
			return cli.Exit(fmt.Errorf("bad pattern: %w", err), 1)
		}
		fmt.Print(persist.ExportDOT(n))
		return nil
	},
}

var nfaCommand = &cli.Command{
	Name:  "nfa",
	Usage: "load/save persisted NFA files",
	Subcommands: []*cli.Command{
		{
			Name:      "compile",
			Usage:     "compile a pattern to the persisted NFA text format",
			ArgsUsage: "<pattern>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "compress", Usage: "zstd-compress the output instead of emitting plain text"},
			},
			Action: func(c *cli.Context) error {
				if c.Args().Len() != 1 {
					return cli.Exit("compile requires exactly <pattern>", 1)
				}
				n, err := regex.Parse(c.Args().Get(0))
				if err != nil {
					return cli.Exit(fmt.Errorf("bad pattern: %w", err), 1)
				}
				if c.Bool("compress") {
					data, err := persist.WriteCompressed(n)
					if err != nil {
						return cli.Exit(fmt.Errorf("compressing NFA: %w", err), 1)
					}
					os.Stdout.Write(data)
					return nil
				}
				fmt.Print(persist.Write(n))
				return nil
			},
		},
		{
			Name:      "run",
			Usage:     "load a persisted NFA file and test it against input",
			ArgsUsage: "<nfa-file> <input>",
			Flags: []cli.Flag{
				&cli.BoolFlag{Name: "compress", Usage: "the NFA file is zstd-compressed"},
			},
			Action: func(c *cli.Context) error {
				if c.Args().Len() != 2 {
					return cli.Exit("run requires exactly <nfa-file> <input>", 1)
				}
				data, err := os.ReadFile(c.Args().Get(0))
				if err != nil {
					return cli.Exit(err, 1)
				}
				var n *nfa.NFA
				if c.Bool("compress") {
					n, err = persist.ReadCompressed(data)
				} else {
					n, err = persist.Read(string(data))
				}
				if err != nil {
					return cli.Exit(fmt.Errorf("loading NFA: %w", err), 1)
				}
				fmt.Println(nfa.AcceptsString(n, c.Args().Get(1)))
				return nil
			},
		},
	},
}
