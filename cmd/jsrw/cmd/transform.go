package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/jsrewrite/jsrw/internal/errdisplay"
	"github.com/jsrewrite/jsrw/internal/parser"
	"github.com/jsrewrite/jsrw/pkg/printer"
	"github.com/jsrewrite/jsrw/pkg/transform"
	"github.com/spf13/cobra"
)

var transformMinify bool

var transformCmd = &cobra.Command{
	Use:   "transform [file]",
	Short: "Demote let/const declarations to var and print the result",
	Long: `transform runs the const/let-to-var demotion pass and prints the
rewritten source. It exists to exercise the AST transformer contract
(pkg/transform), not as a general-purpose rewrite tool.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransform,
}

func init() {
	rootCmd.AddCommand(transformCmd)

	transformCmd.Flags().BoolVarP(&transformMinify, "minify", "m", false, "minify output")
}

func runTransform(cmd *cobra.Command, args []string) error {
	var input string
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("error reading file: %w", err)
		}
		input = string(data)
	} else {
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

	transform.DemoteDeclarations(program)

	pr := printer.New(printer.Options{Minify: transformMinify})
	fmt.Println(pr.Print(program))
	return nil
}
