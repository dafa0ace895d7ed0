package cmd

import (
	"fmt"

	"github.com/samsaffron/skilldeck/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show the effective configuration",
	RunE:  runConfig,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file location",
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path, _ := config.GetConfigPath()
	status := "missing, using defaults"
	if config.Exists() {
		status = "loaded"
	}

	fmt.Printf("config file: %s (%s)\n\n", path, status)
	fmt.Printf("color:              %s\n", cfg.Color)
	fmt.Printf("corpus.use_builtin: %t\n", cfg.Corpus.UseBuiltin)
	fmt.Printf("corpus.user_dir:    %s\n", cfg.Corpus.UserDir)
	fmt.Printf("corpus.project_dir: %s\n", cfg.Corpus.ProjectDir)
	fmt.Printf("install.target:     %s\n", cfg.Install.Target)
	return nil
}
