package cmd

import (
	"fmt"

	"github.com/jdrake/marsrover/core"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run FILE",
	Short: "Run a mission file and print each robot's final position.",
	Long: `Runs every robot in the mission file in order and prints one line
per robot: its final coordinates and heading, with LOST appended for
robots that fell off the grid.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		configuration, err := loadConfig()
		if err != nil {
			printDiagnostic(cmd.ErrOrStderr(), err)
			return err
		}

		input, err := afero.ReadFile(afero.NewOsFs(), args[0])
		if err != nil {
			printDiagnostic(cmd.ErrOrStderr(), err)
			return err
		}

		out, err := core.Run(args[0], string(input), configuration.Limits())
		if err != nil {
			printDiagnostic(cmd.ErrOrStderr(), err)
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}
