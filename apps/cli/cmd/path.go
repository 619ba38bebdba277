package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/apismoke/packages/route"
	"github.com/spf13/cobra"
)

var pathCmd = &cobra.Command{
	Use:   "path <name>...",
	Short: "Print the request path derived from case names",
	Long: `Print the request path each case name routes to. The name is split on
"_", the first token is dropped and the rest become path segments.

Examples:
  apismoke path test_sync_del_member    # /sync/del/member/
  apismoke path test_x test_user_42`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			fmt.Fprintln(cmd.OutOrStdout(), route.Derive(name))
		}
	},
}
