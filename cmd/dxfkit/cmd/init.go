/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/dxfkit/dxfkit/pkg/config"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a dxfkit configuration file",
	Long: `Write a configuration file with defaults and a freshly generated
API key for the inspection server.

Examples:
  dxfkit init
  dxfkit init --config ./dxfkit.yaml --index-dir ./index`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config")
		indexDir, _ := cmd.Flags().GetString("index-dir")
		force, _ := cmd.Flags().GetBool("force")

		if configPath == "" {
			configPath = config.GetDefaultConfigPath()
		}

		if config.ConfigExists(configPath) && !force {
			cmd.Printf("Config already exists at %s (use --force to overwrite)\n", configPath)
			os.Exit(1)
		}

		cfg, err := config.BootstrapConfig(configPath, indexDir)
		if err != nil {
			cmd.Printf("Error writing config: %v\n", err)
			os.Exit(1)
		}

		cmd.Printf("Wrote %s\n", configPath)
		cmd.Printf("API key: %s\n", cfg.Security.APIKey)
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().String("config", "", "Path to write the configuration file")
	initCmd.Flags().String("index-dir", "", "Directory for the handle index store")
	initCmd.Flags().Bool("force", false, "Overwrite an existing configuration file")
}
