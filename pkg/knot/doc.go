// Package knot implements the knot hash.
//
// The hash ties knots in a ring of 256 marks numbered 0..255. Each input
// length L reverses the L marks starting at the current position, then the
// position moves forward by L plus a skip size that grows by one after every
// length. The cursor is carried explicitly in a State value:
//
//	var st knot.State
//	r := ring.Identity(5)
//	st.Round(r, []int{3, 4, 1, 5})
//	// r is now [3 4 2 1 0]
//
// The full digest turns the input text into lengths (its bytes followed by
// 17, 31, 73, 47, 23), runs 64 rounds over a fresh ring without resetting
// the cursor between rounds, and folds every block of 16 marks into one byte
// with XOR:
//
//	knot.Digest("AoC 2017")
//	// Returns: "33efeb34ea91902bb2f59c9920caa6cd"
//
// New returns the same computation as a hash.Hash for streaming callers.
package knot
