/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dxfkit/dxfkit/pkg/api"
	"github.com/dxfkit/dxfkit/pkg/config"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the DXF inspection API server",
	Long: `Start the HTTP inspection API. Uploaded DXF files are decoded into
JSON tag listings; Prometheus metrics are exposed on /metrics.

When --config points at a configuration file its values are used;
flags override them.

Examples:
  dxfkit serve --port=8080
  dxfkit serve --config ~/.config/dxfkit/config.yaml`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")

		cfg := config.DefaultConfig()
		if configPath != "" {
			loaded, err := config.LoadConfig(configPath)
			if err != nil {
				cmd.Printf("Error loading config: %v\n", err)
				os.Exit(1)
			}
			cfg = loaded
		}

		if cmd.Flags().Changed("port") {
			cfg.Port, _ = cmd.Flags().GetInt("port")
		}
		if cmd.Flags().Changed("bind") {
			cfg.Bind, _ = cmd.Flags().GetString("bind")
		}
		if cmd.Flags().Changed("api-key") {
			cfg.Security.APIKey, _ = cmd.Flags().GetString("api-key")
		}
		if cmd.Flags().Changed("codepage") {
			cfg.CodePage, _ = cmd.Flags().GetString("codepage")
		}
		if err := cfg.Validate(); err != nil {
			cmd.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		apiKey := cfg.Security.APIKey
		if apiKey == "auto" {
			// "auto" is the bootstrap placeholder; serve without auth.
			apiKey = ""
		}

		serverConfig := api.ServerConfig{
			Port:     cfg.Port,
			Bind:     cfg.Bind,
			APIKey:   apiKey,
			CodePage: cfg.CodePage,
			MaxTags:  cfg.MaxTags,
		}
		if err := api.StartServer(serverConfig); err != nil {
			cmd.Printf("Error starting server: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("config", "", "Path to configuration file")
	serveCmd.Flags().IntP("port", "p", 8080, "Port to listen on")
	serveCmd.Flags().String("bind", "127.0.0.1", "Address to bind to")
	serveCmd.Flags().String("api-key", "", "API key protecting the API (empty = no auth)")
}
