// Package labels names vectors with the bijective base-26 sequence
// a, b, ..., z, aa, ab, ..., az, ba, ...
package labels

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalid = errors.New("labels: invalid label")

// For returns the label of the vector at the given 0-based index.
// It panics if index is negative.
func For(index int) string {
	if index < 0 || index == math.MaxInt {
		panic(fmt.Sprintf("labels: index %d out of range", index))
	}
	var tmp [16]byte
	n := len(tmp)
	x := index + 1
	for x > 0 {
		x--
		n--
		tmp[n] = byte('a' + x%26)
		x /= 26
	}
	return string(tmp[n:])
}

// Index is the inverse of For.
func Index(label string) (int, error) {
	if label == "" {
		return 0, fmt.Errorf("%w: empty", ErrInvalid)
	}
	n := 0
	for i := 0; i < len(label); i++ {
		c := label[i]
		if c < 'a' || c > 'z' {
			return 0, fmt.Errorf("%w: %q", ErrInvalid, label)
		}
		n = n*26 + int(c-'a') + 1
	}
	return n - 1, nil
}
