package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"tabmarks/src/api"
	"tabmarks/src/api/fallback"
	"tabmarks/src/api/httpapi"
	"tabmarks/src/api/localstore"
	"tabmarks/src/config"
	"tabmarks/src/logging"
)

// loadConfig resolves the effective configuration: config file first, then
// flag overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, _ := cmd.Root().PersistentFlags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, err
	}
	if s, _ := cmd.Root().PersistentFlags().GetString("server"); s != "" {
		cfg.ServerURL = s
	}
	if d, _ := cmd.Root().PersistentFlags().GetString("data-dir"); d != "" {
		cfg.DataDir = d
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) *zap.Logger {
	verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
	return logging.New(verbose)
}

// buildClient picks the backend: with a server URL configured the HTTP
// client is used, wrapped so failures fall back to the local store; without
// one, the local store is the backend.
func buildClient(cmd *cobra.Command, log *zap.Logger) (api.Client, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	store, err := localstore.Open(cfg.DataDir)
	if err != nil {
		return nil, err
	}
	if cfg.ServerURL == "" {
		log.Debug("no server configured, using local store", zap.String("dir", cfg.DataDir))
		return store, nil
	}
	log.Debug("using backend with local fallback", zap.String("server", cfg.ServerURL))
	return fallback.Wrap(httpapi.New(cfg.ServerURL), store, log), nil
}

// findTab resolves a tab by name. With an empty name the first existing tab
// is used.
func findTab(client api.Client, name string) (api.Tab, error) {
	tabs, err := client.ListTabs()
	if err != nil {
		return api.Tab{}, err
	}
	if name == "" {
		if len(tabs) == 0 {
			return api.Tab{}, fmt.Errorf("no tabs exist; create one with 'tabmarks tab add'")
		}
		return tabs[0], nil
	}
	for _, t := range tabs {
		if t.Name == name {
			return t, nil
		}
	}
	return api.Tab{}, fmt.Errorf("tab %q not found", name)
}

// findBookmark resolves a bookmark by ID or, failing that, by name.
func findBookmark(client api.Client, nameOrID string) (api.Bookmark, error) {
	bookmarks, err := client.ListBookmarks()
	if err != nil {
		return api.Bookmark{}, err
	}
	for _, b := range bookmarks {
		if b.ID == nameOrID {
			return b, nil
		}
	}
	for _, b := range bookmarks {
		if b.Name == nameOrID {
			return b, nil
		}
	}
	return api.Bookmark{}, fmt.Errorf("bookmark %q not found", nameOrID)
}
