package sigerr

import (
	"crypto/md5"
	"encoding/hex"

	"github.com/sigerr-io/sigerr/internal/codepage"
)

// ShortSignatureLen is the display length of a short signature.
const ShortSignatureLen = 8

// Fingerprint digests accumulated signature text into 16 bytes using MD5,
// which here fingerprints occurrences rather than guarding anything. The
// text is transcoded to single-byte form first (see internal/codepage),
// which is part of the signature contract: the same text always hashes to
// the same bytes on every platform.
func Fingerprint(text string) []byte {
	sum := md5.Sum(codepage.Encode(text))
	return sum[:]
}

// FingerprintHex is the lowercase hex rendering of Fingerprint, always
// exactly 32 characters.
func FingerprintHex(text string) string {
	return hex.EncodeToString(Fingerprint(text))
}

// ShortFingerprint is the first 8 hex characters, the form shown to users.
func ShortFingerprint(text string) string {
	return FingerprintHex(text)[:ShortSignatureLen]
}
