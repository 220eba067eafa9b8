package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"

	"github.com/spf13/cobra"

	"github.com/minhvu2004/animewalls/cli/config"
	"github.com/minhvu2004/animewalls/pkg/models"
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [username]",
	Short: "Fetch wallpapers for a user's completed list",
	Long:  `Fetch the user's completed anime list from the running server, grouped by series, with wallpapers per group.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]

		serverURL, err := config.GetServerURL()
		if err != nil {
			printError("Configuration not initialized")
			fmt.Println("Run: animewalls init")
			return err
		}

		fetchURL := fmt.Sprintf("%s/api/wallpapers/%s", serverURL, url.PathEscape(username))

		resp, err := http.Get(fetchURL)
		if err != nil {
			printError("Fetch failed: Server connection error")
			fmt.Println("Check server status: animewalls system info")
			return err
		}
		defer resp.Body.Close()

		body, _ := io.ReadAll(resp.Body)

		if resp.StatusCode != http.StatusOK {
			var errResp map[string]string
			json.Unmarshal(body, &errResp)
			if msg := errResp["error"]; msg != "" {
				printError(fmt.Sprintf("Fetch failed: %s", msg))
			} else if msg := errResp["message"]; msg != "" {
				printError(fmt.Sprintf("Fetch failed: %s", msg))
			} else {
				printError(fmt.Sprintf("Fetch failed: HTTP %d", resp.StatusCode))
			}
			return fmt.Errorf("server returned %d", resp.StatusCode)
		}

		if cfg := config.GlobalConfig; cfg != nil && cfg.Output.Format == "json" {
			fmt.Println(string(body))
			return nil
		}

		// A 200 body is either the group map or a {"message": ...} notice.
		var raw map[string]json.RawMessage
		if err := json.Unmarshal(body, &raw); err != nil {
			printError("Fetch failed: Unexpected response format")
			return err
		}
		if msgRaw, ok := raw["message"]; ok && len(raw) == 1 {
			var msg string
			if json.Unmarshal(msgRaw, &msg) == nil {
				fmt.Println(msg)
				return nil
			}
		}

		groups := make(map[string]models.GroupWallpapers, len(raw))
		for key, val := range raw {
			var g models.GroupWallpapers
			if err := json.Unmarshal(val, &g); err != nil {
				continue
			}
			groups[key] = g
		}

		keys := make([]string, 0, len(groups))
		for key := range groups {
			keys = append(keys, key)
		}
		sort.Strings(keys)

		printSuccess(fmt.Sprintf("Found wallpapers for %d series", len(groups)))
		for _, key := range keys {
			g := groups[key]
			fmt.Printf("\n%s (%d wallpapers)\n", g.DisplayTitle, len(g.Wallpapers))
			for _, w := range g.Wallpapers {
				fmt.Printf("  %s\n", w.Full)
			}
		}
		return nil
	},
}
