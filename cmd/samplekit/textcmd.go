package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"samplekit/textutil"
)

func newTextCmd() *cobra.Command {
	textCmd := &cobra.Command{
		Use:   "text",
		Short: "String utility operations",
	}

	textCmd.AddCommand(
		&cobra.Command{
			Use:   "reverse TEXT",
			Short: "Reverse a string",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%q reversed is %q\n", args[0], textutil.Reverse(args[0]))
			},
		},
		&cobra.Command{
			Use:   "palindrome TEXT",
			Short: "Check whether a string is a palindrome",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				status := "is not"
				if textutil.IsPalindrome(args[0]) {
					status = "is"
				}
				fmt.Printf("%q %s a palindrome\n", args[0], status)
			},
		},
		&cobra.Command{
			Use:   "vowels TEXT",
			Short: "Count vowels in a string",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%q has %d vowels\n", args[0], textutil.CountVowels(args[0]))
			},
		},
		&cobra.Command{
			Use:   "consonants TEXT",
			Short: "Count consonants in a string",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%q has %d consonants\n", args[0], textutil.CountConsonants(args[0]))
			},
		},
		&cobra.Command{
			Use:   "capitalize TEXT",
			Short: "Capitalize each word in a string",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%q capitalized is %q\n", args[0], textutil.CapitalizeWords(args[0]))
			},
		},
		&cobra.Command{
			Use:   "slugify TEXT",
			Short: "Convert a string to a URL-friendly slug",
			Args:  cobra.ExactArgs(1),
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Printf("%q slugified is %q\n", args[0], textutil.Slugify(args[0]))
			},
		},
	)
	return textCmd
}
