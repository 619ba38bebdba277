package cmd

import (
	"fmt"

	"github.com/abdul-hamid-achik/apismoke/packages/domain"
	"github.com/spf13/cobra"
)

var hostsCmd = &cobra.Command{
	Use:   "hosts",
	Short: "Show the host for each environment",
	Long: `Show the pro (0), dev (1) and local (2) hosts after config overrides.
The selected environment is marked with *.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		hosts := domain.DefaultHosts().Merge(cfg.Hosts)
		for _, e := range []int{domain.EnvPro, domain.EnvDev, domain.EnvLocal} {
			host, _ := hosts.Lookup(e)
			mark := " "
			if e == cfg.GetEnv() {
				mark = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d %-5s %s\n", mark, e, domain.EnvName(e), host)
		}
		return nil
	},
}
