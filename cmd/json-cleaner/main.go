package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/lyndonlyu/json-cleaner/internal/cleaner"
	"github.com/lyndonlyu/json-cleaner/internal/registry"
	"github.com/spf13/cobra"
)

// errUsage signals a bad invocation after the usage line has been printed.
var errUsage = errors.New("usage")

var rootCmd = &cobra.Command{
	Use:     "json-cleaner RESOURCE_TYPE",
	Short:   "Redact sensitive fields from JSON API responses",
	Long:    "json-cleaner reads a JSON document from stdin, redacts the fields registered for RESOURCE_TYPE along with corporate email addresses, and writes the result to stdout with sorted keys.",
	Version: "0.1.0",
	Args:    cobra.ArbitraryArgs,
	// All reporting happens in run so the output bytes stay exact.
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		// The usage line goes to stdout, not stderr.
		fmt.Fprintln(cmd.OutOrStdout(), "usage: json-cleaner RESOURCE_TYPE")
		return errUsage
	}

	rules, err := registry.Lookup(args[0])
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "first argument must be one of: %s\n",
			strings.Join(registry.ResourceTypes(), ", "))
		return err
	}

	if err := cleaner.Clean(cmd.InOrStdin(), cmd.OutOrStdout(), rules); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
