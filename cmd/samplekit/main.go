// Command samplekit exposes the library packages on the command line:
// calculator operations, string utilities, and dot-notation configuration
// file management, plus a structured-logging demonstration.
package main

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "samplekit",
		Short:        "Calculator, string, and configuration utilities",
		SilenceUsage: true,
	}

	root.AddCommand(
		newVersionCmd(),
		newCalcCmd(),
		newTextCmd(),
		newConfigCmd(),
		newLogDemoCmd(),
		newDemoCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("samplekit v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	}
}

// formatNum renders a float the way users typed it: no trailing zeros,
// no exponent for ordinary magnitudes.
func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
