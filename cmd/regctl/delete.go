package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regnt/ntdll"
	"github.com/joshuapare/regnt/regkey"
)

var (
	deleteKeyForce   bool
	deleteValueForce bool
)

func init() {
	keyCmd := newDeleteKeyCmd()
	keyCmd.Flags().BoolVarP(&deleteKeyForce, "force", "f", false, "Don't prompt for confirmation")
	rootCmd.AddCommand(keyCmd)

	valCmd := newDeleteValueCmd()
	valCmd.Flags().BoolVarP(&deleteValueForce, "force", "f", false, "Don't prompt for confirmation")
	rootCmd.AddCommand(valCmd)
}

func newDeleteKeyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-key <path>",
		Short: "Delete a registry key",
		Long: `The delete-key command deletes the key addressed by NT object path.
The key must have no subkeys.

Example:
  regctl delete-key "\Registry\Machine\Software\OldApp"
  regctl delete-key "\Registry\Machine\Software\OldApp" --force`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteKey(args[0])
		},
	}
}

func newDeleteValueCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete-value <path> <name>",
		Short: "Delete a registry value",
		Long: `The delete-value command removes a single value from the key
addressed by NT object path.

Example:
  regctl delete-value "\Registry\Machine\Software\MyApp" "StaleSetting"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDeleteValue(args[0], args[1])
		},
	}
}

// confirm prompts on stdin unless the force flag or quiet mode suppresses it.
func confirm(force bool, prompt string) bool {
	if force || quiet {
		return true
	}
	printInfo("%s [y/N]: ", prompt)
	reader := bufio.NewReader(os.Stdin)
	response, _ := reader.ReadString('\n')
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}

func runDeleteKey(path string) error {
	slog.Debug("opening key for delete", "path", path)

	key, err := regkey.OpenWrite(ntdll.New(), path)
	if err != nil {
		return err
	}
	defer key.Close()

	if !confirm(deleteKeyForce, fmt.Sprintf("\nDelete key %s?", path)) {
		printInfo("Aborted.\n")
		return nil
	}

	if err := key.Delete(); err != nil {
		return fmt.Errorf("failed to delete key: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":    path,
			"success": true,
		})
	}

	printInfo("\n✓ Key deleted successfully\n")
	return nil
}

func runDeleteValue(path, name string) error {
	slog.Debug("opening key for delete-value", "path", path, "name", name)

	key, err := regkey.OpenWrite(ntdll.New(), path)
	if err != nil {
		return err
	}
	defer key.Close()

	if !confirm(deleteValueForce, fmt.Sprintf("\nDelete value %q from %s?", name, path)) {
		printInfo("Aborted.\n")
		return nil
	}

	if err := key.DeleteValue(name); err != nil {
		return fmt.Errorf("failed to delete value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":    path,
			"name":    name,
			"success": true,
		})
	}

	printInfo("\n✓ Value deleted successfully\n")
	return nil
}
