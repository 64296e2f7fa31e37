package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"samplekit/calc"
	"samplekit/conf"
	"samplekit/logx"
	"samplekit/textutil"
)

func newDemoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run a demonstration of all features",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("=== samplekit demo ===")
			fmt.Println()

			fmt.Println("Calculator operations:")
			fmt.Printf("  5 + 3 = %s\n", formatNum(calc.Add(5, 3)))
			fmt.Printf("  10 - 4 = %s\n", formatNum(calc.Subtract(10, 4)))
			fmt.Printf("  3 * 7 = %s\n", formatNum(calc.Multiply(3, 7)))
			quotient, _ := calc.Divide(15, 3)
			fmt.Printf("  15 / 3 = %s\n", formatNum(quotient))
			fmt.Printf("  2 ^ 8 = %s\n", formatNum(calc.Power(2, 8)))
			root, _ := calc.Sqrt(16)
			fmt.Printf("  sqrt(16) = %s\n", formatNum(root))
			fmt.Println()

			fmt.Println("String utilities:")
			fmt.Printf("  'hello' reversed = %q\n", textutil.Reverse("hello"))
			fmt.Printf("  'racecar' is palindrome = %v\n", textutil.IsPalindrome("racecar"))
			fmt.Printf("  'hello world' has %d vowels\n", textutil.CountVowels("hello world"))
			fmt.Printf("  'hello world' capitalized = %q\n", textutil.CapitalizeWords("hello world"))
			fmt.Printf("  'Hello World!' slugified = %q\n", textutil.Slugify("Hello World!"))
			fmt.Println()

			fmt.Println("Configuration management:")
			store := conf.New()
			store.Set("database.host", "localhost")
			store.Set("database.port", 5432)
			store.Set("app.name", "demo")
			fmt.Printf("  Database host: %v\n", store.Get("database.host", nil))
			fmt.Printf("  Database port: %v\n", store.Get("database.port", nil))
			fmt.Printf("  Sections: %v\n", store.Sections())
			fmt.Println()

			fmt.Println("Logging (check console output):")
			logger, err := logx.New("demo", "info", logx.FormatConsole)
			if err != nil {
				return err
			}
			defer logger.Sync()
			logger.Info("Demo completed successfully",
				zap.Strings("features", []string{"calc", "textutil", "conf", "logx"}))
			return nil
		},
	}
}
