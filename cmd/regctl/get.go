package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regnt/ntdll"
	"github.com/joshuapare/regnt/regkey"
)

func init() {
	rootCmd.AddCommand(newGetCmd())
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <path> <name>",
		Short: "Get a single registry value",
		Long: `The get command reads one value from the key addressed by NT object
path and prints its decoded form.

Example:
  regctl get "\Registry\Machine\Software\Microsoft\Windows NT\CurrentVersion" "ProductName"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args[0], args[1])
		},
	}
}

func runGet(path, name string) error {
	slog.Debug("opening key", "path", path)

	key, err := regkey.Open(ntdll.New(), path)
	if err != nil {
		return err
	}
	defer key.Close()

	it := key.Values()
	defer it.Close()

	for it.Next() {
		item := it.Value()
		got, err := item.Name()
		if err != nil {
			// A name without a text form cannot match a textual query.
			continue
		}
		if got != name {
			continue
		}
		if jsonOut {
			return printJSON(map[string]interface{}{
				"path":  path,
				"name":  name,
				"value": item.Value().String(),
			})
		}
		printInfo("%s\n", item.Value().String())
		return nil
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("enumeration stopped: %w", err)
	}
	return fmt.Errorf("value %q not found under %s", name, path)
}
