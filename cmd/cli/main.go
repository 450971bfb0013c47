package main

import (
	"fmt"
	"os"
	"time"

	"url2md-go/pkg/cli/client"
	"url2md-go/pkg/config"
	"url2md-go/pkg/models"

	"github.com/spf13/cobra"
)

var (
	flagBaseURL string
	flagTimeout int
	flagType    string
	flagOutput  string
)

func newClient() *client.Client {
	baseURL := flagBaseURL
	if baseURL == "" {
		if cfg, err := config.Load(); err == nil {
			baseURL = cfg.CLI.BaseURL
		} else {
			baseURL = "http://localhost:8000"
		}
	}
	return client.NewClient(baseURL, 90*time.Second)
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "url2md",
		Short:         "Client for the URL to markdown conversion API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flagBaseURL, "base-url", "", "API base URL (default from config)")

	root.AddCommand(newHealthCmd())
	root.AddCommand(newConvertCmd())
	return root
}

func newHealthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check API health",
		RunE: func(cmd *cobra.Command, args []string) error {
			health, err := newClient().Health()
			if err != nil {
				return err
			}
			fmt.Printf("status:    %s\n", health.Status)
			fmt.Printf("version:   %s\n", health.Version)
			fmt.Printf("converter: %v\n", health.ConverterReady)
			fmt.Printf("uptime:    %ds\n", health.UptimeSeconds)
			return nil
		},
	}
}

func newConvertCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "convert <url>",
		Short: "Convert a URL to markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			options := map[string]any{}
			if flagType != "" {
				options["markdown_type"] = flagType
			}
			if flagTimeout > 0 {
				options["timeout"] = flagTimeout
			}

			result, err := newClient().Convert(args[0], options)
			if err != nil {
				return err
			}
			if !result.Success {
				return fmt.Errorf("conversion failed: %s", result.Error)
			}

			if flagOutput != "" {
				if err := os.WriteFile(flagOutput, []byte(result.Markdown), 0644); err != nil {
					return fmt.Errorf("failed to write %s: %w", flagOutput, err)
				}
				fmt.Fprintf(os.Stderr, "saved %d bytes to %s (%d pages)\n",
					result.Metadata.ContentLength, flagOutput, result.Metadata.Pages)
				return nil
			}

			fmt.Print(result.Markdown)
			return nil
		},
	}
	cmd.Flags().StringVar(&flagType, "type", "", fmt.Sprintf("markdown type: %s or %s", models.MarkdownSimple, models.MarkdownComplete))
	cmd.Flags().IntVar(&flagTimeout, "timeout", 0, "fetch timeout in seconds")
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write markdown to file instead of stdout")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
