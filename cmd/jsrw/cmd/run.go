package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Execute a JavaScript file (not implemented)",
	Long: `run is a placeholder. jsrw is a parser and generator only; it has
no interpreter. Use "jsrw parse" or "jsrw fmt" to inspect or rewrite
a program instead of running it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return fmt.Errorf("jsrw has no interpreter; try 'jsrw parse' or 'jsrw fmt'")
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
