package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/abdul-hamid-achik/apismoke/packages/core/config"
	"github.com/abdul-hamid-achik/apismoke/packages/http"
	"github.com/abdul-hamid-achik/apismoke/packages/logger"
	"github.com/abdul-hamid-achik/apismoke/packages/output"
	"github.com/abdul-hamid-achik/apismoke/packages/suite"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the smoke cases against the selected host",
	Long: `Run every smoke case in order against the selected host. Each response
is logged with a timestamp. The run stops at the first unexpected status
code or network error.

Examples:
  apismoke run
  apismoke run --env local
  apismoke run --env 0 --name del_member
  apismoke run --host http://127.0.0.1:8080 --rate 5
  apismoke run --output junit --output-file smoke.xml`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runCommand,
}

var (
	nameFlag       string
	hostFlag       string
	timeoutFlag    string
	rateFlag       float64
	maxRedirFlag   int
	headerFlags    []string
	proxyFlag      string
	insecureFlag   bool
	verboseFlag    bool
	noColorFlag    bool
	outputFlag     string
	outputFileFlag string
)

func init() {
	runCmd.Flags().StringVarP(&nameFlag, "name", "n", "", "Run only cases whose name contains this text")
	runCmd.Flags().StringVar(&hostFlag, "host", getEnvString("APISMOKE_HOST", ""), "Base host overriding the selected environment (env: APISMOKE_HOST)")
	runCmd.Flags().StringVar(&timeoutFlag, "timeout", getEnvString("APISMOKE_TIMEOUT", ""), "Request timeout (e.g., 30s, 1m) (env: APISMOKE_TIMEOUT)")
	runCmd.Flags().Float64Var(&rateFlag, "rate", getEnvFloat("APISMOKE_RATE", 0), "Maximum cases per second, 0 for no pacing (env: APISMOKE_RATE)")
	runCmd.Flags().IntVar(&maxRedirFlag, "max-redirects", getEnvInt("APISMOKE_MAX_REDIRECTS", 0), "Maximum redirects to follow, 0 for the config value (env: APISMOKE_MAX_REDIRECTS)")
	runCmd.Flags().StringArrayVarP(&headerFlags, "header", "H", nil, "Extra request header, Key: value (repeatable)")
	runCmd.Flags().StringVar(&proxyFlag, "proxy", getEnvString("APISMOKE_PROXY", ""), "Proxy URL for HTTP requests (env: APISMOKE_PROXY)")
	runCmd.Flags().BoolVarP(&insecureFlag, "insecure", "k", getEnvBool("APISMOKE_INSECURE", false), "Disable SSL certificate validation (env: APISMOKE_INSECURE)")
	runCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", getEnvBool("APISMOKE_VERBOSE", false), "Verbose summary (env: APISMOKE_VERBOSE)")
	runCmd.Flags().BoolVar(&noColorFlag, "no-color", getEnvBool("APISMOKE_NO_COLOR", false), "Disable colored output (env: APISMOKE_NO_COLOR)")
	runCmd.Flags().StringVarP(&outputFlag, "output", "o", getEnvString("APISMOKE_OUTPUT", "console"), "Summary format: "+strings.Join(output.Formats, ", ")+" (env: APISMOKE_OUTPUT)")
	runCmd.Flags().StringVar(&outputFileFlag, "output-file", getEnvString("APISMOKE_OUTPUT_FILE", ""), "Write the summary to a file (env: APISMOKE_OUTPUT_FILE)")
}

// runOverrides collects the run flags into a config layered over the file.
func runOverrides() (*config.Config, error) {
	o := &config.Config{
		Rate:         rateFlag,
		MaxRedirects: maxRedirFlag,
		Proxy:        proxyFlag,
	}

	if timeoutFlag != "" {
		d, err := time.ParseDuration(timeoutFlag)
		if err != nil {
			return nil, fmt.Errorf("invalid timeout value %q: %w (use format like 30s, 1m, 500ms)", timeoutFlag, err)
		}
		o.Timeout = int(d.Milliseconds())
	}

	if len(headerFlags) > 0 {
		headers, err := parseHeaders(headerFlags)
		if err != nil {
			return nil, err
		}
		o.Headers = headers
	}

	if insecureFlag {
		o.ValidateSSL = config.BoolPtr(false)
	}
	if verboseFlag {
		o.Verbose = config.BoolPtr(true)
	}
	if noColorFlag {
		o.NoColor = config.BoolPtr(true)
	}
	return o, nil
}

func runCommand(cmd *cobra.Command, args []string) error {
	fileConfig, err := loadConfig()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return err
	}

	overrides, err := runOverrides()
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return withExitCode(ExitUsageError, err)
	}
	cfg := fileConfig.Merge(overrides)

	// The summary goes to stdout (or --output-file); response logs go to
	// stdout for console output and to stderr when stdout carries JSON/XML.
	summaryWriter := cmd.OutOrStdout()
	logWriter := cmd.OutOrStdout()
	if outputFileFlag != "" {
		f, err := os.Create(outputFileFlag)
		if err != nil {
			return withExitCode(ExitConfigError, fmt.Errorf("cannot create output file: %w", err))
		}
		defer f.Close()
		summaryWriter = f
	} else if !strings.EqualFold(outputFlag, "console") {
		logWriter = cmd.ErrOrStderr()
	}

	formatter, err := output.New(outputFlag, summaryWriter, cfg.GetVerbose(), cfg.GetNoColor())
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Error: %v\n", err)
		return withExitCode(ExitUsageError, err)
	}

	baseURL := hostFlag
	if baseURL == "" {
		host, err := cfg.Host()
		if err != nil {
			formatter.FormatError(err)
			return withExitCode(ExitConfigError, err)
		}
		baseURL = string(host)
	}

	cases := suite.Filter(cfg.CasesOrDefault(), nameFlag)
	if len(cases) == 0 {
		err := fmt.Errorf("no cases match %q", nameFlag)
		formatter.FormatError(err)
		return withExitCode(ExitUsageError, err)
	}

	client := http.NewClient(
		http.WithBaseURL(baseURL),
		http.WithTimeout(time.Duration(cfg.Timeout)*time.Millisecond),
		http.WithDefaultHeaders(cfg.Headers),
		http.WithFollowRedirects(cfg.GetFollowRedirects()),
		http.WithMaxRedirects(cfg.GetMaxRedirects()),
		http.WithValidateSSL(cfg.GetValidateSSL()),
		http.WithProxy(cfg.Proxy),
		http.WithUserAgent("apismoke/"+version),
	)
	log := logger.New(logger.WithWriter(logWriter))
	runner := suite.NewRunner(client, log,
		suite.WithRate(cfg.Rate),
		suite.WithLatencyCeiling(time.Duration(cfg.Timeout)*time.Millisecond),
	)

	formatter.FormatHeader(version, baseURL)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	result, runErr := runner.Run(ctx, cases)
	if runErr != nil {
		formatter.FormatError(runErr)
	}
	if err := formatter.FormatResult(result); err != nil {
		return err
	}
	return runErr
}
