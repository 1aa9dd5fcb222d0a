package cli

import (
	"github.com/spf13/cobra"
)

var postCmd = &cobra.Command{
	Use:   "post URL",
	Short: "Make a POST request to the specified URL",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		runVerb(cmd, "POST", args[0], true)
	},
}

func init() {
	verbFlags(postCmd)
	bodyFlags(postCmd)
}
