package cmd

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/video-stream/transcript/internal/config"
	"github.com/video-stream/transcript/internal/logger"
)

var configFile string

var rootCmd = &cobra.Command{
	Use:   "transcript",
	Short: "Convert WebVTT subtitle tracks into JSON transcripts",
	Long: `transcript turns WebVTT subtitles into a normalized JSON document of
whole-second cues. Run it as an HTTP service with "serve" or convert
files offline with "convert".`,
	SilenceUsage: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "path to a YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(tokenCmd)
}

func loadConfig() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	log := logger.New(logger.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Output: "stderr",
	})
	return cfg, log, nil
}
