package led

import (
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "led",
	Short:            "LED output related commands",
	Long:             ``,
	TraverseChildren: true,
}
