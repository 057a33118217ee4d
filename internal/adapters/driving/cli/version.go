package cli

import (
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Long: `Print the drills version. Release builds set it with
-ldflags "-X main.version=..."; local builds report "dev".`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Printf("drills version %s\n", version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
