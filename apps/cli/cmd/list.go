package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/apismoke/packages/suite"
	"github.com/spf13/cobra"
)

var listNameFlag string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the smoke cases",
	Long: `List the smoke cases in run order with the method and path each one
is sent to.

Examples:
  apismoke list
  apismoke list --name member
  apismoke list --config apismoke.yaml`,
	Args: cobra.NoArgs,
	RunE: listCommand,
}

func init() {
	listCmd.Flags().StringVarP(&listNameFlag, "name", "n", "", "List only cases whose name contains this text")
}

func listCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	cases := suite.Filter(cfg.CasesOrDefault(), listNameFlag)
	for i := range cases {
		c := &cases[i]
		fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", c.Name)
		fmt.Fprintf(cmd.OutOrStdout(), "    %s %s", c.RequestMethod(), c.RoutePath())
		if c.ExpectStatus != 0 {
			fmt.Fprintf(cmd.OutOrStdout(), " -> %d", c.ExpectStatus)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\n")
	}

	return nil
}
