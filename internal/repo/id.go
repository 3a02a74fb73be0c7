package repo

import "crypto/rand"

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// NewID returns an 8-character uppercase token used as the identity of every
// user-created record. All entity kinds share the generator; a kind prefix is
// not enforced and collisions are not retried, which is acceptable at this
// record volume.
func NewID() string {
	buf := make([]byte, 7)
	rand.Read(buf)
	out := make([]byte, 8)
	out[0] = 'C'
	for i, b := range buf {
		out[i+1] = idAlphabet[int(b)%len(idAlphabet)]
	}
	return string(out)
}
