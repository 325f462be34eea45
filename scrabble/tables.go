package scrabble

import (
	"errors"
	"fmt"
)

// Letters is the size of the alphabet the tables cover, a to z.
const Letters = 26

var (
	// ErrInvalidTables is returned when a points or supply table holds a
	// negative value.
	ErrInvalidTables = errors.New("invalid scrabble tables")

	// ErrInvalidWord is returned when a word holds anything but lower-case
	// letters from a to z.
	ErrInvalidWord = errors.New("invalid word")
)

// Tables holds the point value and the tile supply of every letter, indexed
// by letter position (a=0 ... z=25).
type Tables struct {
	Points [Letters]int
	Supply [Letters]int
}

// DefaultTables carries the standard English point values and tile supply.
var DefaultTables = Tables{
	Points: [Letters]int{
		// a, b, c, d, e, f, g, h, i, j, k, l, m, n, o, p,  q, r, s, t, u, v, w, x, y,  z
		1, 3, 3, 2, 1, 4, 2, 4, 1, 8, 5, 1, 3, 1, 1, 3, 10, 1, 1, 1, 1, 4, 4, 8, 4, 10,
	},
	Supply: [Letters]int{
		// a, b, c, d,  e, f, g, h, i, j, k, l, m, n, o, p, q, r, s, t, u, v, w, x, y, z
		9, 2, 2, 1, 12, 2, 3, 2, 9, 1, 1, 4, 2, 6, 8, 2, 1, 6, 4, 6, 4, 2, 2, 1, 2, 1,
	},
}

// Validate checks that no entry of the tables is negative.
func (t Tables) Validate() error {
	for i := range Letters {
		if t.Points[i] < 0 {
			return fmt.Errorf("%w: points of %q is %d", ErrInvalidTables, rune('a'+i), t.Points[i])
		}
		if t.Supply[i] < 0 {
			return fmt.Errorf("%w: supply of %q is %d", ErrInvalidTables, rune('a'+i), t.Supply[i])
		}
	}
	return nil
}

func letterIndex(letter byte) (int, error) {
	if letter < 'a' || letter > 'z' {
		return 0, fmt.Errorf("%w: unexpected letter %q", ErrInvalidWord, letter)
	}
	return int(letter - 'a'), nil
}

// IsWord reports whether the word is not empty and only holds lower-case
// letters from a to z.
func IsWord(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		if _, err := letterIndex(word[i]); err != nil {
			return false
		}
	}
	return true
}
