// Package textutil provides common string manipulation helpers. All
// functions are rune-correct unless noted otherwise.
package textutil

import (
	"regexp"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	nonAlnumRE     = regexp.MustCompile(`[^a-z0-9]`)
	spaceRE        = regexp.MustCompile(`\s`)
	digitsRE       = regexp.MustCompile(`\d+`)
	emailRE        = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	slugStripRE    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapseRE = regexp.MustCompile(`[-\s]+`)
)

// Reverse returns text with its runes in reverse order.
func Reverse(text string) string {
	runes := []rune(text)
	slices.Reverse(runes)
	return string(runes)
}

// IsPalindrome reports whether text reads the same forwards and
// backwards, ignoring case and any non-alphanumeric characters.
func IsPalindrome(text string) bool {
	cleaned := nonAlnumRE.ReplaceAllString(strings.ToLower(text), "")
	return cleaned == Reverse(cleaned)
}

// CountVowels returns the number of ASCII vowels in text.
func CountVowels(text string) int {
	count := 0
	for _, r := range text {
		if strings.ContainsRune("aeiouAEIOU", r) {
			count++
		}
	}
	return count
}

// CountConsonants returns the number of ASCII consonants in text.
func CountConsonants(text string) int {
	count := 0
	for _, r := range text {
		if strings.ContainsRune("bcdfghjklmnpqrstvwxyzBCDFGHJKLMNPQRSTVWXYZ", r) {
			count++
		}
	}
	return count
}

// CapitalizeWords upper-cases the first letter of each word in text.
func CapitalizeWords(text string) string {
	return cases.Title(language.Und).String(text)
}

// RemoveDuplicates drops repeated characters from text, keeping the
// first occurrence of each.
func RemoveDuplicates(text string) string {
	seen := make(map[rune]bool)
	var b strings.Builder
	for _, r := range text {
		if !seen[r] {
			seen[r] = true
			b.WriteRune(r)
		}
	}
	return b.String()
}

// WordCount returns the number of whitespace-separated words in text.
func WordCount(text string) int {
	return len(strings.Fields(text))
}

// CharCount returns the number of non-overlapping occurrences of char
// in text.
func CharCount(text, char string) int {
	return strings.Count(text, char)
}

// IsAnagram reports whether a and b contain the same characters,
// ignoring case and whitespace.
func IsAnagram(a, b string) bool {
	return sortedRunes(a) == sortedRunes(b)
}

func sortedRunes(text string) string {
	runes := []rune(spaceRE.ReplaceAllString(strings.ToLower(text), ""))
	slices.Sort(runes)
	return string(runes)
}

// ExtractNumbers returns every run of decimal digits in text as an int.
// Runs too large for an int are skipped.
func ExtractNumbers(text string) []int {
	var numbers []int
	for _, match := range digitsRE.FindAllString(text, -1) {
		if n, err := strconv.Atoi(match); err == nil {
			numbers = append(numbers, n)
		}
	}
	return numbers
}

// ExtractEmails returns every email address found in text.
func ExtractEmails(text string) []string {
	return emailRE.FindAllString(text, -1)
}

// Truncate shortens text to at most length runes, replacing the tail
// with suffix when truncation happens.
func Truncate(text string, length int, suffix string) string {
	runes := []rune(text)
	if len(runes) <= length {
		return text
	}
	keep := length - len([]rune(suffix))
	if keep < 0 {
		keep = 0
	}
	return string(runes[:keep]) + suffix
}

// Slugify converts text to a lowercase, hyphen-separated URL slug.
func Slugify(text string) string {
	slug := slugStripRE.ReplaceAllString(strings.ToLower(text), "")
	slug = slugCollapseRE.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
