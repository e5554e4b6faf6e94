package cmd

import (
	"github.com/markusressel/dim2go/internal/ui"
	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X github.com/markusressel/dim2go/cmd.Version=..."
var Version = "0.1.0"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dim2go",
	Long:  `All software has versions. This is dim2go's`,
	Run: func(cmd *cobra.Command, args []string) {
		ui.Printfln(Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
