package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/getmockd/cuid/internal/cliconfig"
	"github.com/getmockd/cuid/pkg/logging"
)

var (
	// Version is injected during build
	Version = "dev"
	// Commit is injected during build
	Commit = "none"
	// BuildDate is injected during build
	BuildDate = "unknown"
)

// rootOptions holds the flags of one command tree and the configuration
// resolved from them before any command runs.
type rootOptions struct {
	v2        bool
	slug      bool
	length    int
	count     int
	json      bool
	config    string
	envFile   string
	logLevel  string
	logFormat string

	cfg *cliconfig.CLIConfig
	log *slog.Logger
}

// newRootCmd builds the cuid command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "cuid",
		Short: "cuid prints collision-resistant identifiers",
		Long: `cuid prints collision-resistant identifiers for horizontal scaling and
sequential lookup performance.

By default it prints one V1 identifier (25 characters, starting with 'c').
Use --v2 for the hashed V2 format, --slug for short identifiers, and -n to
print several at once.

Configuration can be provided via flags, CUID_* environment variables, or a
.cuidrc.yaml file in the current directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true, // We handle errors in Execute()
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd.OutOrStdout(), opts.cfg, opts.log)
		},
	}

	cmd.Flags().BoolVar(&opts.v2, "v2", false, "Print V2 identifiers")
	cmd.Flags().BoolVar(&opts.slug, "slug", false, "Print 10-character slugs")
	cmd.Flags().IntVarP(&opts.length, "length", "l", 0, "V2 identifier length (2-100, default 24)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", cliconfig.DefaultCount, "Number of identifiers to print")

	pf := cmd.PersistentFlags()
	pf.BoolVar(&opts.json, "json", false, "Output command results in JSON format")
	pf.StringVar(&opts.config, "config", "", "Config file (default: .cuidrc.yaml in the current directory)")
	pf.StringVar(&opts.envFile, "env-file", "", "Load CUID_* variables from a .env file")
	pf.StringVar(&opts.logLevel, "log-level", cliconfig.DefaultLogLevel, "Log level (debug, info, warn, error)")
	pf.StringVar(&opts.logFormat, "log-format", cliconfig.DefaultLogFormat, "Log format (text, json)")

	cmd.AddCommand(newValidateCmd(opts))
	cmd.AddCommand(newVersionCmd(opts))
	return cmd
}

// resolve loads the layered configuration, applies the flags the user set,
// validates the result and builds the logger.
func (o *rootOptions) resolve(cmd *cobra.Command) error {
	cfg, err := cliconfig.Load(cliconfig.LoadOptions{
		ConfigFile: o.config,
		EnvFile:    o.envFile,
	})
	if err != nil {
		return err
	}

	// Generation flags belong to the root command only; subcommands define
	// their own.
	gen := cmd.Root().Flags()
	if gen.Changed("v2") {
		cfg.Version = cliconfig.VersionV1
		if o.v2 {
			cfg.Version = cliconfig.VersionV2
		}
		cfg.SetSource("version", cliconfig.SourceFlag)
	}
	if gen.Changed("slug") {
		cfg.Slug = o.slug
		cfg.SetSource("slug", cliconfig.SourceFlag)
	}
	if gen.Changed("length") {
		cfg.Length = o.length
		cfg.SetSource("length", cliconfig.SourceFlag)
	}
	if gen.Changed("count") {
		cfg.Count = o.count
		cfg.SetSource("count", cliconfig.SourceFlag)
	}
	flags := cmd.Flags()
	if flags.Changed("json") {
		cfg.JSON = o.json
		cfg.SetSource("json", cliconfig.SourceFlag)
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
		cfg.SetSource("logLevel", cliconfig.SourceFlag)
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = o.logFormat
		cfg.SetSource("logFormat", cliconfig.SourceFlag)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	o.cfg = cfg
	logCfg := logging.DefaultConfig()
	logCfg.Level = logging.ParseLevel(cfg.LogLevel)
	logCfg.Format = logging.ParseFormat(cfg.LogFormat)
	logCfg.Output = cmd.ErrOrStderr()
	o.log = logging.New(logCfg)
	o.log.Debug("configuration loaded",
		"configFile", cfg.ConfigFile,
		"version", cfg.Version,
		"versionSource", cfg.Source("version"),
		"count", cfg.Count,
		"countSource", cfg.Source("count"),
	)
	return nil
}

// Execute runs the cuid command tree. It is called by main.main().
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
