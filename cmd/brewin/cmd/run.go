package cmd

import (
	"fmt"
	"os"

	"github.com/brewinlang/brewin/internal/ast"
	interrors "github.com/brewinlang/brewin/internal/errors"
	"github.com/brewinlang/brewin/internal/host"
	"github.com/brewinlang/brewin/internal/interp"
	"github.com/brewinlang/brewin/internal/lexer"
	"github.com/brewinlang/brewin/internal/parser"
	"github.com/brewinlang/brewin/internal/token"
	"github.com/spf13/cobra"
)

var (
	runTrace      bool
	runOutputFile string
)

var runCmd = &cobra.Command{
	Use:   "run <file.bwn>",
	Short: "Run a Brewin program",
	Long: `Read a Brewin source file, parse it, instantiate the "main" class,
and invoke its zero-argument "main" method.`,
	Args: cobra.ExactArgs(1),
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().BoolVar(&runTrace, "trace", false, "print each statement's line number before executing it")
	runCmd.Flags().StringVarP(&runOutputFile, "output", "o", "", "redirect program output to a file instead of stdout")

	runCmd.SilenceUsage = true
	runCmd.SilenceErrors = true
}

func runRun(_ *cobra.Command, args []string) error {
	filename := args[0]
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	program, parseErr := parseSource(string(source), filename)
	if parseErr != nil {
		return parseErr
	}

	out := os.Stdout
	if runOutputFile != "" {
		f, err := os.Create(runOutputFile)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", runOutputFile, err)
		}
		defer f.Close()
		out = f
	}

	h := host.NewStdHost(out, os.Stdin)

	var opts []interp.Option
	if runTrace {
		opts = append(opts, interp.WithTrace(func(pos token.Position, head string) {
			fmt.Fprintf(os.Stderr, "%s:%s: %s\n", filename, pos, head)
		}))
	}

	interpreter, err := interp.New(program.Classes, string(source), filename, h, opts...)
	if err != nil {
		return formatRuntimeError(err)
	}

	if err := interpreter.Run(); err != nil {
		return formatRuntimeError(err)
	}

	return nil
}

func formatRuntimeError(err error) error {
	if se, ok := err.(*interrors.SourceError); ok {
		return fmt.Errorf("%s", se.Format(false))
	}
	return err
}

func parseSource(source, filename string) (*ast.Program, error) {
	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		msgs := ""
		for _, e := range p.Errors() {
			msgs += interrors.New(interrors.SyntaxError, e.Pos, e.Message, source, filename).Format(false) + "\n"
		}
		return nil, fmt.Errorf("parsing %s failed:\n%s", filename, msgs)
	}

	return program, nil
}
