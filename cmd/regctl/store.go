package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regnt/snapshot"
)

var storeKeysPrefix string

func init() {
	storeCmd := &cobra.Command{
		Use:   "store",
		Short: "Inspect a snapshot store offline",
		Long: `The store subcommands read a bbolt store written by the snapshot
command, without touching the live registry.`,
	}

	keysCmd := &cobra.Command{
		Use:   "keys <store.db>",
		Short: "List captured key paths",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreKeys(args[0])
		},
	}
	keysCmd.Flags().StringVar(&storeKeysPrefix, "prefix", "", "Only list paths with this prefix")

	valuesCmd := &cobra.Command{
		Use:   "values <store.db> <path>",
		Short: "List captured values under one key path",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStoreValues(args[0], args[1])
		},
	}

	storeCmd.AddCommand(keysCmd, valuesCmd)
	rootCmd.AddCommand(storeCmd)
}

func runStoreKeys(dbPath string) error {
	db, err := snapshot.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	paths, err := db.Keys(storeKeysPrefix)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"store": dbPath,
			"keys":  paths,
			"count": len(paths),
		})
	}

	for _, p := range paths {
		printInfo("%s\n", p)
	}
	printInfo("\n%d key(s)\n", len(paths))
	return nil
}

func runStoreValues(dbPath, path string) error {
	db, err := snapshot.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()

	values, err := db.Values(path)
	if err != nil {
		return fmt.Errorf("failed to read values: %w", err)
	}

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)

	if jsonOut {
		rendered := map[string]string{}
		for name, val := range values {
			rendered[name] = val.String()
		}
		return printJSON(map[string]interface{}{
			"store":  dbPath,
			"path":   path,
			"values": rendered,
			"count":  len(values),
		})
	}

	printInfo("Values in %s:\n", path)
	for _, name := range names {
		printInfo("- %s: %s\n", name, values[name].String())
	}
	printInfo("\n%d value(s)\n", len(values))
	return nil
}
