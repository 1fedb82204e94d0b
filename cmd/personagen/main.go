// Package main implements the personagen CLI, which generates
// Character.AI character definitions from a Reddit user's public
// comment history.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	gitCommit = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "personagen",
	Short: "Generate Character.AI definitions from Reddit activity",
	Long: `personagen turns a Reddit user's public comment history into a
Character.AI character definition: conversational exemplars formatted as
dialog, ranked by engagement, and packed into the definition field's
32000 character ceiling.

Reddit API credentials are required. Create a script application at
https://www.reddit.com/prefs/apps/ and provide the credentials via the
config file (~/.config/personagen/config.yaml) or environment:

  PERSONAGEN_REDDIT_CLIENT_ID=...
  PERSONAGEN_REDDIT_CLIENT_SECRET=...`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("personagen %s (commit %s)\n", version, gitCommit)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(versionCmd)
}
