package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/quantmind-br/configdoc/internal/app"
	"github.com/quantmind-br/configdoc/internal/config"
	"github.com/quantmind-br/configdoc/internal/utils"
	"github.com/quantmind-br/configdoc/pkg/version"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// cliOptions holds flags that only affect a single invocation
type cliOptions struct {
	cfgFile string
	verbose bool
	check   bool
	dryRun  bool
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}
	v := viper.New()

	rootCmd := &cobra.Command{
		Use:   "configdoc",
		Short: "Document extension settings in the README",
		Long: `configdoc reads the configuration properties contributed by a VS Code
extension manifest and writes them as a markdown table into the README,
between the <!-- START_CONFIG_TABLE --> and <!-- END_CONFIG_TABLE --> markers.

Use --check in CI to fail when the table is stale.`,
		Version:       version.Short(),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, v, opts)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.cfgFile, "config", "", "config file (default is ./.configdoc.yaml)")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "Verbose output")

	// Input and output
	flags.StringP("manifest", "m", config.DefaultManifestPath, "Extension manifest to read")
	flags.StringP("document", "d", config.DefaultDocumentPath, "Document to update")
	flags.String("start-marker", config.DefaultStartMarker, "Marker opening the generated region")
	flags.String("end-marker", config.DefaultEndMarker, "Marker closing the generated region")
	flags.Bool("git-root", false, "Resolve paths from the git worktree root")

	// Rendering
	flags.String("style", config.DefaultStyle, "Value style: legacy or json")

	// Modes
	rootCmd.Flags().BoolVar(&opts.check, "check", false, "Fail if the document is out of date")
	rootCmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Print the diff without writing")
	rootCmd.MarkFlagsMutuallyExclusive("check", "dry-run")

	// Bind flags to viper
	_ = v.BindPFlag("manifest.path", flags.Lookup("manifest"))
	_ = v.BindPFlag("document.path", flags.Lookup("document"))
	_ = v.BindPFlag("document.start_marker", flags.Lookup("start-marker"))
	_ = v.BindPFlag("document.end_marker", flags.Lookup("end-marker"))
	_ = v.BindPFlag("git_root", flags.Lookup("git-root"))
	_ = v.BindPFlag("render.style", flags.Lookup("style"))

	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

func run(cmd *cobra.Command, v *viper.Viper, opts *cliOptions) error {
	// Load configuration
	cfg, err := config.Load(v, opts.cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Initialize logger
	log := utils.NewLogger(utils.LoggerOptions{
		Level:   cfg.Logging.Level,
		Format:  cfg.Logging.Format,
		Output:  cmd.ErrOrStderr(),
		Verbose: opts.verbose,
		NoColor: color.NoColor,
	})

	// Create context with cancellation
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Handle graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	go func() {
		select {
		case <-sigCh:
			log.Info().Msg("Shutting down gracefully...")
			cancel()
		case <-ctx.Done():
		}
	}()

	generator, err := app.NewGenerator(app.GeneratorOptions{
		Config:  cfg,
		Verbose: opts.verbose,
		DryRun:  opts.dryRun,
		Check:   opts.check,
		Color:   !color.NoColor,
		DiffOut: cmd.OutOrStdout(),
		Logger:  log,
	})
	if err != nil {
		return fmt.Errorf("failed to create generator: %w", err)
	}

	_, err = generator.Run(ctx)
	return err
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
		},
	}
}
