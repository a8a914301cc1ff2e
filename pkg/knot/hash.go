package knot

import "hash"

type digest struct {
	buf []byte
}

// New returns a hash.Hash computing the knot hash. Writes are buffered and
// the rounds run when Sum is called.
func New() hash.Hash {
	d := new(digest)
	d.Reset()
	return d
}

func (d *digest) Size() int { return DigestLen }

func (d *digest) BlockSize() int { return BlockLen }

func (d *digest) Reset() {
	d.buf = d.buf[:0]
}

func (d *digest) Write(p []byte) (int, error) {
	d.buf = append(d.buf, p...)
	return len(p), nil
}

// Sum appends the digest of everything written so far to b. It does not
// change the underlying state.
func (d *digest) Sum(b []byte) []byte {
	sum := Sum(d.buf)
	return append(b, sum[:]...)
}
