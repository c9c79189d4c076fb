package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regnt/ntdll"
	"github.com/joshuapare/regnt/regkey"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <path>",
		Short: "List subkeys of a registry key",
		Long: `The keys command enumerates the direct subkeys of a key addressed by
NT object path.

Example:
  regctl keys "\Registry\Machine\Software\Microsoft\Windows\CurrentVersion"
  regctl keys "\Registry\User" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args[0])
		},
	}
}

func runKeys(path string) error {
	slog.Debug("opening key", "path", path)

	key, err := regkey.Open(ntdll.New(), path)
	if err != nil {
		return err
	}
	defer key.Close()

	it := key.Subkeys()
	defer it.Close()

	type keyRow struct {
		Name      string `json:"name"`
		LastWrite string `json:"last_write"`
	}
	var rows []keyRow
	for it.Next() {
		sk := it.Subkey()
		rows = append(rows, keyRow{
			Name:      sk.Name(),
			LastWrite: sk.LastWrite().UTC().Format(time.RFC3339),
		})
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("enumeration stopped: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":  path,
			"keys":  rows,
			"count": len(rows),
		})
	}

	printInfo("Keys in %s:\n", path)
	for _, row := range rows {
		printInfo("- %s (last write: %s)\n", row.Name, row.LastWrite)
	}
	printInfo("\n%d key(s)\n", len(rows))
	return nil
}
