// Package calc provides basic arithmetic operations with explicit error
// reporting for the undefined cases (division by zero, negative inputs).
package calc

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

var (
	// ErrDivideByZero is returned when a divisor or total is zero.
	ErrDivideByZero = errors.New("division by zero")

	// ErrNegativeInput is returned by Sqrt and Factorial for negative inputs.
	ErrNegativeInput = errors.New("negative input")

	// ErrNotANumber is returned by ParseNumber for unparsable input.
	ErrNotANumber = errors.New("not a number")

	// ErrEmptyInput is returned by Average for an empty slice.
	ErrEmptyInput = errors.New("empty input")
)

// Add returns the sum of a and b.
func Add(a, b float64) float64 {
	return a + b
}

// Subtract returns the difference of a and b.
func Subtract(a, b float64) float64 {
	return a - b
}

// Multiply returns the product of a and b.
func Multiply(a, b float64) float64 {
	return a * b
}

// Divide returns the quotient of a and b, or ErrDivideByZero when b is zero.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, fmt.Errorf("%w: %v / %v", ErrDivideByZero, a, b)
	}
	return a / b, nil
}

// Power returns base raised to exponent.
func Power(base, exponent float64) float64 {
	return math.Pow(base, exponent)
}

// Sqrt returns the square root of n, or ErrNegativeInput when n is negative.
func Sqrt(n float64) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: cannot take square root of %v", ErrNegativeInput, n)
	}
	return math.Sqrt(n), nil
}

// Factorial returns n!, or ErrNegativeInput when n is negative.
func Factorial(n int64) (int64, error) {
	if n < 0 {
		return 0, fmt.Errorf("%w: cannot take factorial of %d", ErrNegativeInput, n)
	}
	result := int64(1)
	for i := int64(2); i <= n; i++ {
		result *= i
	}
	return result, nil
}

// Percentage returns value as a percentage of total, or ErrDivideByZero
// when total is zero.
func Percentage(value, total float64) (float64, error) {
	if total == 0 {
		return 0, fmt.Errorf("%w: total cannot be zero", ErrDivideByZero)
	}
	return value / total * 100, nil
}

// Average returns the arithmetic mean of numbers, or ErrEmptyInput for
// an empty slice.
func Average(numbers []float64) (float64, error) {
	if len(numbers) == 0 {
		return 0, fmt.Errorf("%w: cannot average an empty list", ErrEmptyInput)
	}
	sum := 0.0
	for _, n := range numbers {
		sum += n
	}
	return sum / float64(len(numbers)), nil
}

// ParseNumber parses s as a float64, returning ErrNotANumber on failure.
func ParseNumber(s string) (float64, error) {
	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrNotANumber, s)
	}
	return n, nil
}
