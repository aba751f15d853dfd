package words

import (
	"errors"
	"os"
	"path/filepath"
	"slices"
	"testing"
)

// TestNewSet tests order-stable deduplication of seed words.
func TestNewSet(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		input    []string
		expected []string
	}{
		{
			name:     "preserves first-occurrence order",
			input:    []string{"beta", "alpha", "beta", "gamma"},
			expected: []string{"beta", "alpha", "gamma"},
		},
		{
			name:     "drops empty and whitespace-only entries",
			input:    []string{"", "  ", "word", "\t"},
			expected: []string{"word"},
		},
		{
			name:     "trims surrounding whitespace",
			input:    []string{"  admin ", "admin"},
			expected: []string{"admin"},
		},
		{
			name:     "deduplication is case-sensitive",
			input:    []string{"Admin", "admin"},
			expected: []string{"Admin", "admin"},
		},
		{
			name:     "nil input yields an empty set",
			input:    nil,
			expected: nil,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			set := NewSet(tc.input)
			if !slices.Equal(set.Words(), tc.expected) {
				t.Errorf("NewSet(%v).Words() = %v, want %v", tc.input, set.Words(), tc.expected)
			}
			if set.Len() != len(tc.expected) {
				t.Errorf("Len() = %d, want %d", set.Len(), len(tc.expected))
			}
		})
	}
}

// TestCollect tests merging of positional arguments and an input file.
func TestCollect(t *testing.T) {
	t.Parallel()

	t.Run("arguments only", func(t *testing.T) {
		t.Parallel()

		set, err := Collect([]string{"admin", "pass"}, "")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(set.Words(), []string{"admin", "pass"}) {
			t.Errorf("Words() = %v, want [admin pass]", set.Words())
		}
	})

	t.Run("file lines and comma-separated lists", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "words.txt")
		content := "admin\n\npass, secret ,hunter2\nadmin\n"
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("failed to write word file: %v", err)
		}

		set, err := Collect(nil, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		want := []string{"admin", "pass", "secret", "hunter2"}
		if !slices.Equal(set.Words(), want) {
			t.Errorf("Words() = %v, want %v", set.Words(), want)
		}
	})

	t.Run("arguments come before file words", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "words.txt")
		if err := os.WriteFile(path, []byte("filesrc\nadmin\n"), 0o600); err != nil {
			t.Fatalf("failed to write word file: %v", err)
		}

		set, err := Collect([]string{"admin"}, path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !slices.Equal(set.Words(), []string{"admin", "filesrc"}) {
			t.Errorf("Words() = %v, want [admin filesrc]", set.Words())
		}
	})

	t.Run("no usable words", func(t *testing.T) {
		t.Parallel()

		if _, err := Collect(nil, ""); !errors.Is(err, ErrNoWords) {
			t.Errorf("got %v, want ErrNoWords", err)
		}
	})

	t.Run("missing input file", func(t *testing.T) {
		t.Parallel()

		if _, err := Collect(nil, filepath.Join(t.TempDir(), "absent.txt")); err == nil {
			t.Error("expected error for missing file, got nil")
		}
	})
}

// TestAverageLength tests the mean word length used in size estimates.
func TestAverageLength(t *testing.T) {
	t.Parallel()

	if got := NewSet(nil).AverageLength(); got != 0 {
		t.Errorf("empty set AverageLength() = %f, want 0", got)
	}
	if got := NewSet([]string{"ab", "abcd"}).AverageLength(); got != 3 {
		t.Errorf("AverageLength() = %f, want 3", got)
	}
}
