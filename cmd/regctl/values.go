package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regnt/ntdll"
	"github.com/joshuapare/regnt/regkey"
)

func init() {
	rootCmd.AddCommand(newValuesCmd())
}

func newValuesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "values <path>",
		Short: "List values of a registry key",
		Long: `The values command enumerates the values of a key addressed by NT
object path, rendering each decoded payload.

Example:
  regctl values "\Registry\Machine\Software\Microsoft\Windows\CurrentVersion\Run"
  regctl values "\Registry\Machine\Software\Vendor" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValues(args[0])
		},
	}
}

type valueRow struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

func runValues(path string) error {
	slog.Debug("opening key", "path", path)

	key, err := regkey.Open(ntdll.New(), path)
	if err != nil {
		return err
	}
	defer key.Close()

	it := key.Values()
	defer it.Close()

	var rows []valueRow
	for it.Next() {
		item := it.Value()
		name, err := item.Name()
		if err != nil {
			// Names without a text form still enumerate; show the units.
			name = fmt.Sprintf("%v (not text)", item.NameUnits())
		}
		rows = append(rows, valueRow{Name: name, Value: item.Value().String()})
	}
	if err := it.Err(); err != nil {
		return fmt.Errorf("enumeration stopped: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":   path,
			"values": rows,
			"count":  len(rows),
		})
	}

	printInfo("Values in %s:\n", path)
	for _, row := range rows {
		printInfo("- %s: %s\n", row.Name, row.Value)
	}
	printInfo("\n%d value(s)\n", len(rows))
	return nil
}
