package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "animewalls",
	Short: "Anime wallpaper fetcher",
	Long:  `Fetch wallpapers for every series on a MyAnimeList user's completed list.`,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(fetchCmd)
	rootCmd.AddCommand(systemCmd)
}

func printError(msg string) {
	fmt.Printf("✗ %s\n", msg)
}

func printSuccess(msg string) {
	fmt.Printf("✓ %s\n", msg)
}
