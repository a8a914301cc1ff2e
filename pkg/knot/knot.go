package knot

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/rickgorman/aoc2017/pkg/ring"
)

const (
	// Size is the number of marks in the hash ring.
	Size = 256
	// Rounds is the number of rounds run by the full digest.
	Rounds = 64
	// BlockLen is the number of marks folded into one digest byte.
	BlockLen = 16
	// DigestLen is the digest length in bytes.
	DigestLen = Size / BlockLen
)

// Suffix is appended to the byte lengths of every digested input.
var Suffix = []int{17, 31, 73, 47, 23}

// State is the cursor of a single hashing run. The zero value is the
// initial state.
type State struct {
	Position int
	Skip     int
}

// Round ties one knot per length into r, advancing the cursor after each.
// It panics if a length is negative or larger than the ring.
func (s *State) Round(r []int, lengths []int) {
	n := len(r)
	for _, l := range lengths {
		ring.Reverse(r, s.Position, l)
		s.Position = (s.Position + l + s.Skip) % n
		s.Skip++
	}
}

// Simple runs a single round over a copy of initial and returns the product
// of the first two marks. It panics if initial has fewer than two marks.
func Simple(initial []int, lengths []int) int {
	if len(initial) < 2 {
		panic(fmt.Sprintf("knot: ring of %d marks has no first two marks", len(initial)))
	}

	r := append([]int(nil), initial...)
	var st State
	st.Round(r, lengths)
	return r[0] * r[1]
}

// Lengths converts text into the length sequence used by the digest.
func Lengths(text string) []int {
	return lengthsOf([]byte(text))
}

func lengthsOf(data []byte) []int {
	lengths := make([]int, 0, len(data)+len(Suffix))
	for _, b := range data {
		lengths = append(lengths, int(b))
	}
	return append(lengths, Suffix...)
}

// Sparse returns the ring after all digest rounds over text.
func Sparse(text string) []int {
	return sparse(Lengths(text))
}

func sparse(lengths []int) []int {
	r := ring.Identity(Size)
	var st State
	for i := 0; i < Rounds; i++ {
		st.Round(r, lengths)
	}
	return r
}

// Dense XOR-folds each consecutive block of 16 marks into one byte.
// It panics if len(sparse) is not a multiple of 16.
func Dense(sparse []int) []byte {
	if len(sparse)%BlockLen != 0 {
		panic(fmt.Sprintf("knot: sparse hash length %d is not a multiple of %d", len(sparse), BlockLen))
	}

	dense := make([]byte, 0, len(sparse)/BlockLen)
	for i := 0; i < len(sparse); i += BlockLen {
		var b int
		for _, v := range sparse[i : i+BlockLen] {
			b ^= v
		}
		dense = append(dense, byte(b))
	}
	return dense
}

// Sum returns the knot hash of data.
func Sum(data []byte) [DigestLen]byte {
	var sum [DigestLen]byte
	copy(sum[:], Dense(sparse(lengthsOf(data))))
	return sum
}

// Digest returns the knot hash of text as 32 lowercase hex characters.
func Digest(text string) string {
	sum := Sum([]byte(text))
	return hex.EncodeToString(sum[:])
}

// ParseLengths parses a comma-separated list of lengths such as "3,4,1,5".
// Surrounding whitespace is ignored; an empty string yields no lengths.
func ParseLengths(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	lengths := make([]int, 0, len(fields))
	for _, f := range fields {
		l, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("invalid length %q: %w", f, err)
		}
		if l < 0 {
			return nil, fmt.Errorf("invalid length %q: must not be negative", f)
		}
		lengths = append(lengths, l)
	}
	return lengths, nil
}
