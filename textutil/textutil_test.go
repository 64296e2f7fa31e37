package textutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReverse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"Simple", "hello", "olleh"},
		{"Empty", "", ""},
		{"SingleChar", "x", "x"},
		{"Unicode", "héllo", "olléh"},
		{"WithSpaces", "ab cd", "dc ba"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Reverse(tt.input))
		})
	}
}

func TestIsPalindrome(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"racecar", true},
		{"Racecar", true},
		{"A man, a plan, a canal: Panama", true},
		{"hello", false},
		{"", true},
		{"12321", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsPalindrome(tt.input))
		})
	}
}

func TestCounting(t *testing.T) {
	assert.Equal(t, 3, CountVowels("hello world"))
	assert.Equal(t, 0, CountVowels("xyz"))
	assert.Equal(t, 7, CountConsonants("hello world"))
	assert.Equal(t, 2, WordCount("hello world"))
	assert.Equal(t, 0, WordCount("   "))
	assert.Equal(t, 2, CharCount("hello", "l"))
	assert.Equal(t, 0, CharCount("hello", "z"))
}

func TestCapitalizeWords(t *testing.T) {
	assert.Equal(t, "Hello World", CapitalizeWords("hello world"))
	assert.Equal(t, "Hello-World", CapitalizeWords("hello-world"))
	assert.Equal(t, "", CapitalizeWords(""))
}

func TestRemoveDuplicates(t *testing.T) {
	assert.Equal(t, "helo", RemoveDuplicates("hello"))
	assert.Equal(t, "abc", RemoveDuplicates("aabbcc"))
	assert.Equal(t, "", RemoveDuplicates(""))
}

func TestIsAnagram(t *testing.T) {
	tests := []struct {
		a, b string
		want bool
	}{
		{"listen", "silent", true},
		{"Dormitory", "dirty room", true},
		{"hello", "world", false},
		{"", "", true},
		{"abc", "abcd", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, IsAnagram(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
	}
}

func TestExtractNumbers(t *testing.T) {
	assert.Equal(t, []int{12, 7, 2024}, ExtractNumbers("12 apples, 7 pears, year 2024"))
	assert.Nil(t, ExtractNumbers("no digits here"))
}

func TestExtractEmails(t *testing.T) {
	text := "contact alice@example.com or bob.smith+tag@mail.example.org, not invalid@"
	assert.Equal(t,
		[]string{"alice@example.com", "bob.smith+tag@mail.example.org"},
		ExtractEmails(text))
	assert.Nil(t, ExtractEmails("nothing to see"))
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		suffix string
		want   string
	}{
		{"NoTruncation", "short", 10, "...", "short"},
		{"ExactLength", "exact", 5, "...", "exact"},
		{"Truncated", "hello world", 8, "...", "hello..."},
		{"SuffixLongerThanLimit", "hello", 2, "...", "..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.length, tt.suffix))
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Hello World!", "hello-world"},
		{"  spaced   out  ", "spaced-out"},
		{"already-slugged", "already-slugged"},
		{"Special @#$ Chars", "special-chars"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.input))
		})
	}
}
