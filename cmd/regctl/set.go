package main

import (
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/joshuapare/regnt/ntdll"
	"github.com/joshuapare/regnt/pkg/types"
	"github.com/joshuapare/regnt/regkey"
)

var setType string

func init() {
	cmd := newSetCmd()
	cmd.Flags().StringVar(&setType, "type", "sz", "Value type (sz, expand_sz, dword, qword, binary)")
	rootCmd.AddCommand(cmd)
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <path> <name> <value>",
		Short: "Set a registry value",
		Long: `The set command writes a value under the key addressed by NT object path.

Example:
  regctl set "\Registry\Machine\Software\MyApp" "Version" "1.0.0"
  regctl set "\Registry\Machine\Software\MyApp" "Enabled" "1" --type dword
  regctl set "\Registry\Machine\Software\MyApp" "Data" "0102030405" --type binary`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func runSet(args []string) error {
	path := args[0]
	name := args[1]
	valueStr := args[2]

	slog.Debug("opening key for write", "path", path)

	key, err := regkey.OpenWrite(ntdll.New(), path)
	if err != nil {
		return err
	}
	defer key.Close()

	var typ types.ValueType
	switch setType {
	case "sz":
		typ = types.REG_SZ
		err = key.SetString(name, valueStr)
	case "expand_sz":
		typ = types.REG_EXPAND_SZ
		err = key.SetExpandString(name, valueStr)
	case "dword":
		typ = types.REG_DWORD
		var n uint64
		n, err = strconv.ParseUint(valueStr, 0, 32)
		if err != nil {
			return fmt.Errorf("failed to parse dword value: %w", err)
		}
		err = key.SetDword(name, uint32(n))
	case "qword":
		typ = types.REG_QWORD
		var n uint64
		n, err = strconv.ParseUint(valueStr, 0, 64)
		if err != nil {
			return fmt.Errorf("failed to parse qword value: %w", err)
		}
		err = key.SetQword(name, n)
	case "binary":
		typ = types.REG_BINARY
		var data []byte
		data, err = hex.DecodeString(valueStr)
		if err != nil {
			return fmt.Errorf("failed to parse binary value: %w", err)
		}
		err = key.SetValue(name, types.REG_BINARY, data)
	default:
		return fmt.Errorf("unknown value type %q", setType)
	}
	if err != nil {
		return fmt.Errorf("failed to set value: %w", err)
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"path":    path,
			"name":    name,
			"type":    typ.String(),
			"success": true,
		})
	}

	printInfo("\nSetting value:\n")
	printInfo("  Path: %s\n", path)
	printInfo("  Name: %s\n", name)
	printInfo("  Type: %s\n", typ.String())
	printInfo("  Value: %s\n", valueStr)
	printInfo("\n✓ Value set successfully\n")
	return nil
}
