package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "apismoke",
	Short: "Smoke-test an HTTP API by case name.",
	Long: `apismoke sends a fixed sequence of smoke checks to one of three hosts
(pro, dev, local). Each case is routed by its name: test_sync_del_member is
sent to /sync/del/member/. The run stops at the first failed check.`,
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", getEnvString("APISMOKE_CONFIG", ""), "Path to config file (env: APISMOKE_CONFIG)")
	rootCmd.PersistentFlags().StringVar(&envFileFlag, "env-file", getEnvString("APISMOKE_ENV_FILE", ""), "Path to .env file exported before the config is read (env: APISMOKE_ENV_FILE)")
	rootCmd.PersistentFlags().StringVarP(&envFlag, "env", "e", getEnvString("APISMOKE_ENV", ""), "Environment: 0|pro, 1|dev, 2|local (env: APISMOKE_ENV)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(pathCmd)
	rootCmd.AddCommand(hostsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
}
