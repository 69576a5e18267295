package cmd

import (
	"fmt"
	"os"

	"github.com/brewinlang/brewin/internal/ast"
	interrors "github.com/brewinlang/brewin/internal/errors"
	"github.com/brewinlang/brewin/internal/lexer"
	"github.com/brewinlang/brewin/internal/parser"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse <file.bwn>",
	Short: "Parse a Brewin program and print its S-expression tree",
	Long:  `Parse a Brewin source file and print the resulting tree, annotated with source line numbers, without running it.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.SilenceUsage = true
	parseCmd.SilenceErrors = true
}

func runParse(_ *cobra.Command, args []string) error {
	filename := args[0]
	source, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", filename, err)
	}

	l := lexer.New(string(source))
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) > 0 {
		for _, e := range p.Errors() {
			fmt.Fprintln(os.Stderr, interrors.New(interrors.SyntaxError, e.Pos, e.Message, string(source), filename).Format(false))
		}
		return fmt.Errorf("parsing %s failed with %d error(s)", filename, len(p.Errors()))
	}

	for _, class := range program.Classes {
		printNode(class, 0)
	}
	return nil
}

func printNode(node ast.Node, indent int) {
	pad := ""
	for i := 0; i < indent; i++ {
		pad += "  "
	}
	switch n := node.(type) {
	case *ast.Atom:
		fmt.Printf("%s%s  ; line %d\n", pad, n.Lexeme, n.Position.Line)
	case *ast.List:
		fmt.Printf("%s(  ; line %d\n", pad, n.Position.Line)
		for _, child := range n.Children {
			printNode(child, indent+1)
		}
		fmt.Printf("%s)\n", pad)
	}
}
