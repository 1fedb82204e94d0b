package main

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/fyrsmithlabs/personagen/internal/config"
	"github.com/fyrsmithlabs/personagen/internal/conversation"
	"github.com/fyrsmithlabs/personagen/internal/definition"
	"github.com/fyrsmithlabs/personagen/internal/logging"
	"github.com/fyrsmithlabs/personagen/internal/reddit"
)

var (
	configPath string
	limit      int
	outputPath string
	verbose    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate <username>",
	Short: "Generate a character definition for a Reddit user",
	Long: `Generate a Character.AI character definition from a Reddit user's
recent comments.

The definition is written to stdout unless --output is given; progress
and the final length report go to stderr.

Examples:
  # Generate from the 100 most recent comments
  personagen generate someuser

  # Analyze more history and write to a file
  personagen generate someuser --limit 200 --output character_def.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&configPath, "config", "", "config file path (default ~/.config/personagen/config.yaml)")
	generateCmd.Flags().IntVarP(&limit, "limit", "l", 0, "number of recent comments to analyze (default from config)")
	generateCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file path (default stdout)")
	generateCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	username := strings.TrimPrefix(args[0], "u/")

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if verbose {
		cfg.Logging.Level = "debug"
	}
	if err := cfg.RequireCredentials(); err != nil {
		return fmt.Errorf("%w (see personagen --help for setup)", err)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return err
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := reddit.NewClient(cfg.Reddit, logger.Named("reddit"))
	source := reddit.NewSource(client, logger.Named("source"))
	reporter := conversation.NewLogReporter(logger.Named("pipeline"))

	generator, err := definition.NewGenerator(source, source, cfg.Generator, reporter, logger.Named("generator"))
	if err != nil {
		return err
	}

	result, err := generator.Generate(ctx, username, limit)
	if errors.Is(err, definition.ErrNoUsableContent) {
		return fmt.Errorf("no suitable conversations found for u/%s: the user may have no public activity, or every comment fell outside the length filters", username)
	}
	if err != nil {
		return err
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, []byte(result.Definition), 0o644); err != nil {
			return fmt.Errorf("writing definition to %s: %w", outputPath, err)
		}
		fmt.Fprintf(os.Stderr, "definition saved to %s\n", outputPath)
	} else {
		fmt.Println(result.Definition)
	}
	fmt.Fprintf(os.Stderr, "definition length: %d/%d characters (%d conversations)\n",
		result.Length, cfg.Generator.MaxDefinitionLength, result.Conversations)

	return nil
}
