// Package fingerprint implements the non-cryptographic rolling checksum
// used for attestation fingerprints and signatures. It is a fast,
// collision-prone hash for tamper-evidence of the attestation payload's
// shape, not a security primitive.
package fingerprint

import "fmt"

// Hash computes the rolling hash h = (h<<5) - h + code over the text with
// 32-bit signed wraparound arithmetic, seeded at 0. The hash iterates
// Unicode code points; this is the fixed-width convention the attestation
// contract is defined against.
func Hash(text string) int32 {
	var h int32
	for _, r := range text {
		h = (h << 5) - h + int32(r)
	}
	return h
}

// Render formats a hash value as "0x" plus the absolute value in hex,
// zero-padded to 16 digits.
func Render(h int32) string {
	v := int64(h)
	if v < 0 {
		v = -v
	}
	return fmt.Sprintf("0x%016x", v)
}

// Fingerprint hashes text and renders the result in one step.
func Fingerprint(text string) string {
	return Render(Hash(text))
}
