package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/minhvu2004/animewalls/cli/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize CLI configuration",
	Long:  `Create the configuration directory and a default config.yaml pointing at a local server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Init(); err != nil {
			printError(fmt.Sprintf("Initialization failed: %s", err))
			return err
		}

		configPath, _ := config.GetConfigPath()
		printSuccess("Configuration initialized")
		fmt.Printf("Config file: %s\n", configPath)
		return nil
	},
}
