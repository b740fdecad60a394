package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsrewrite/jsrw/internal/errdisplay"
	"github.com/jsrewrite/jsrw/internal/parser"
	"github.com/jsrewrite/jsrw/pkg/ast"
	"github.com/jsrewrite/jsrw/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	parseExpression bool
	parseDumpAST    bool
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse JavaScript source and display the AST",
	Long: `Parse JavaScript source into an AST and display it.

If no file is provided, reads from stdin. Use -e to parse a single
expression from the command line. Use --dump-ast to show the node
tree instead of regenerated source.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().BoolVarP(&parseExpression, "expression", "e", false, "parse an expression from the command line")
	parseCmd.Flags().BoolVar(&parseDumpAST, "dump-ast", false, "dump the AST node tree")
}

func runParse(cmd *cobra.Command, args []string) error {
	var input string

	switch {
	case parseExpression:
		if len(args) == 0 {
			return fmt.Errorf("no expression provided")
		}
		input = args[0]
	case len(args) > 0:
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	default:
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("error reading stdin: %w", err)
		}
		input = string(data)
	}

	program, err := parser.Parse(input)
	if errs, ok := err.(parser.ParseErrors); ok {
		f := errdisplay.New(input, "")
		fmt.Fprint(os.Stderr, f.FormatAll(errs))
		return fmt.Errorf("parsing failed with %d error(s)", len(errs))
	} else if err != nil {
		return err
	}

	if parseDumpAST {
		fmt.Println("Program")
		for _, stmt := range program.Body {
			dumpStatement(stmt, 1)
		}
		return nil
	}

	fmt.Println(printer.Generate(program, false))
	return nil
}

func indentOf(depth int) string {
	s := ""
	for i := 0; i < depth; i++ {
		s += "  "
	}
	return s
}

func dumpStatement(s ast.Statement, depth int) {
	ind := indentOf(depth)
	switch n := s.(type) {
	case *ast.VariableDeclaration:
		fmt.Printf("%sVariableDeclaration (%s, %d declarator(s))\n", ind, n.Kind, len(n.Declarators))
		for _, d := range n.Declarators {
			fmt.Printf("%s  %s\n", ind, d.Name)
			if d.Init != nil {
				dumpExpression(d.Init, depth+2)
			}
		}
	case *ast.ExpressionStmt:
		fmt.Printf("%sExpressionStmt\n", ind)
		dumpExpression(n.Value, depth+1)
	case *ast.Block:
		fmt.Printf("%sBlock (%d statements)\n", ind, len(n.Body))
		for _, stmt := range n.Body {
			dumpStatement(stmt, depth+1)
		}
	case *ast.Transparent:
		fmt.Printf("%sTransparent (%d statements)\n", ind, len(n.Body))
		for _, stmt := range n.Body {
			dumpStatement(stmt, depth+1)
		}
	case *ast.If:
		fmt.Printf("%sIf\n", ind)
		dumpExpression(n.Test, depth+1)
		dumpStatement(n.Consequent, depth+1)
		if n.Alternate != nil {
			dumpStatement(n.Alternate, depth+1)
		}
	case *ast.FunctionStmt:
		fmt.Printf("%sFunctionStmt %s (%d params)\n", ind, n.Name, len(n.Params))
		for _, stmt := range n.Body {
			dumpStatement(stmt, depth+1)
		}
	case *ast.Return:
		fmt.Printf("%sReturn\n", ind)
		if n.Value != nil {
			dumpExpression(n.Value, depth+1)
		}
	default:
		fmt.Printf("%s%T\n", ind, s)
	}
}

func dumpExpression(e ast.Expression, depth int) {
	ind := indentOf(depth)
	switch n := e.(type) {
	case *ast.Identifier:
		fmt.Printf("%sIdentifier: %s\n", ind, n.Name)
	case *ast.Literal:
		fmt.Printf("%sLiteral: %s\n", ind, n.Value.Text)
	case *ast.Binary:
		fmt.Printf("%sBinary (%s)\n", ind, n.Operator)
		dumpExpression(n.Left, depth+1)
		dumpExpression(n.Right, depth+1)
	case *ast.Call:
		fmt.Printf("%sCall (%d args)\n", ind, len(n.Arguments))
		dumpExpression(n.Callee, depth+1)
		for _, arg := range n.Arguments {
			dumpExpression(arg, depth+1)
		}
	default:
		fmt.Printf("%s%T\n", ind, e)
	}
}
