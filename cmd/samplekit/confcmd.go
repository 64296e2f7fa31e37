package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"samplekit/conf"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Configuration file operations",
	}

	configCmd.AddCommand(
		newConfigGetCmd(),
		newConfigSetCmd(),
		newConfigDelCmd(),
		newConfigSectionsCmd(),
		newConfigMergeCmd(),
		newConfigValidateCmd(),
	)
	return configCmd
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := conf.Open(args[0])
			if err != nil {
				return err
			}
			value := store.Get(args[1], nil)
			if value == nil {
				return fmt.Errorf("key %q not found", args[1])
			}
			fmt.Printf("%s = %v\n", args[1], value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set FILE KEY VALUE",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := conf.Open(args[0])
			if err != nil {
				return err
			}
			store.Set(args[1], parseValue(args[2]))
			if err := store.Save(""); err != nil {
				return err
			}
			fmt.Printf("Set %s = %s in %s\n", args[1], args[2], args[0])
			return nil
		},
	}
}

func newConfigDelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "del FILE KEY",
		Short: "Delete a configuration key",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := conf.Open(args[0])
			if err != nil {
				return err
			}
			if !store.Delete(args[1]) {
				return fmt.Errorf("key %q not found", args[1])
			}
			if err := store.Save(""); err != nil {
				return err
			}
			fmt.Printf("Deleted %s from %s\n", args[1], args[0])
			return nil
		},
	}
}

func newConfigSectionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sections FILE",
		Short: "List configuration sections",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := conf.Open(args[0])
			if err != nil {
				return err
			}
			sections := store.Sections()
			if len(sections) == 0 {
				fmt.Println("No sections found")
				return nil
			}
			fmt.Println("Configuration sections:")
			for _, section := range sections {
				fmt.Printf("  - %s\n", section)
			}
			return nil
		},
	}
}

func newConfigMergeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "merge FILE OTHER",
		Short: "Merge another configuration file into FILE",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := conf.Open(args[0])
			if err != nil {
				return err
			}
			other := conf.New()
			if err := other.Load(args[1]); err != nil {
				return err
			}
			store.Merge(other.Snapshot())
			if err := store.Save(""); err != nil {
				return err
			}
			fmt.Printf("Merged %s into %s\n", args[1], args[0])
			return nil
		},
	}
}

func newConfigValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE SCHEMA",
		Short: "Validate a configuration file against a JSON schema file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := conf.Open(args[0])
			if err != nil {
				return err
			}
			data, err := os.ReadFile(args[1])
			if err != nil {
				return err
			}
			var schema conf.Schema
			if err := json.Unmarshal(data, &schema); err != nil {
				return fmt.Errorf("invalid schema file %q: %w", args[1], err)
			}
			if !store.Validate(schema) {
				return fmt.Errorf("%s does not satisfy schema %s", args[0], args[1])
			}
			fmt.Printf("%s is valid\n", args[0])
			return nil
		},
	}
}

// parseValue interprets VALUE as JSON when possible so numbers, bools,
// and objects round-trip; anything else is stored as a string.
func parseValue(raw string) any {
	var v any
	if err := json.Unmarshal([]byte(raw), &v); err == nil {
		return v
	}
	return raw
}
