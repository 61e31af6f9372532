package cmd

import (
	"fmt"

	"github.com/jdrake/marsrover/core"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check FILE",
	Short: "Parse a mission file without running it.",
	Long: `Tokenizes and parses the mission file, then dumps the parsed
mission as YAML. Nothing is evaluated, so semantic problems (robots
starting off-grid, oversized grids) are not reported.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		input, err := afero.ReadFile(afero.NewOsFs(), args[0])
		if err != nil {
			printDiagnostic(cmd.ErrOrStderr(), err)
			return err
		}

		mission, err := core.Check(args[0], string(input))
		if err != nil {
			printDiagnostic(cmd.ErrOrStderr(), err)
			return err
		}

		out, err := yaml.Marshal(mission)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
