package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"samplekit/calc"
)

func newCalcCmd() *cobra.Command {
	calcCmd := &cobra.Command{
		Use:   "calc",
		Short: "Calculator operations",
	}

	calcCmd.AddCommand(
		binaryOpCmd("add", "Add two numbers", "+", func(a, b float64) (float64, error) {
			return calc.Add(a, b), nil
		}),
		binaryOpCmd("sub", "Subtract two numbers", "-", func(a, b float64) (float64, error) {
			return calc.Subtract(a, b), nil
		}),
		binaryOpCmd("mul", "Multiply two numbers", "*", func(a, b float64) (float64, error) {
			return calc.Multiply(a, b), nil
		}),
		binaryOpCmd("div", "Divide two numbers", "/", calc.Divide),
		binaryOpCmd("pow", "Raise a number to a power", "^", func(a, b float64) (float64, error) {
			return calc.Power(a, b), nil
		}),
		newSqrtCmd(),
		newAvgCmd(),
	)
	return calcCmd
}

func binaryOpCmd(use, short, symbol string, op func(a, b float64) (float64, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := calc.ParseNumber(args[0])
			if err != nil {
				return err
			}
			b, err := calc.ParseNumber(args[1])
			if err != nil {
				return err
			}
			result, err := op(a, b)
			if err != nil {
				return err
			}
			fmt.Printf("%s %s %s = %s\n", formatNum(a), symbol, formatNum(b), formatNum(result))
			return nil
		},
	}
}

func newSqrtCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sqrt N",
		Short: "Calculate square root",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := calc.ParseNumber(args[0])
			if err != nil {
				return err
			}
			result, err := calc.Sqrt(n)
			if err != nil {
				return err
			}
			fmt.Printf("sqrt(%s) = %s\n", formatNum(n), formatNum(result))
			return nil
		},
	}
}

func newAvgCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "avg N...",
		Short: "Calculate the average of numbers",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			numbers := make([]float64, 0, len(args))
			for _, arg := range args {
				n, err := calc.ParseNumber(arg)
				if err != nil {
					return err
				}
				numbers = append(numbers, n)
			}
			result, err := calc.Average(numbers)
			if err != nil {
				return err
			}
			fmt.Printf("avg = %s\n", formatNum(result))
			return nil
		},
	}
}
