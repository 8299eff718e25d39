package common

// WipeByteArray overwrites every byte of b with zeros. It is used to scrub
// passwords from memory once they have been handed to the network layer.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
