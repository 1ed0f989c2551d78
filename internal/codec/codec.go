// Package codec converts between raw byte buffers and a transportable text
// encoding, for surfaces where persisted storage only accepts text.
//
// Encode and Decode form an exact round trip: Decode(Encode(b)) == b for
// every byte buffer b, including the empty buffer. Decode is strict: input
// containing characters outside the base64 alphabet, invalid padding, or
// non-canonical trailing bits fails with a domain.MalformedEncodingError.
// It never silently truncates or substitutes.
package codec

import (
	"encoding/base64"
	"strings"

	"github.com/pdfship/pdfship/internal/domain"
)

// Encode returns the text form of b using the standard base64 alphabet.
func Encode(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// Decode returns the byte buffer the given text encodes.
func Decode(s string) ([]byte, error) {
	// encoding/base64 skips \r and \n while decoding; strictness here means
	// they count as characters outside the alphabet.
	if strings.ContainsAny(s, "\r\n") {
		return nil, &domain.MalformedEncodingError{Reason: "newline in encoded text"}
	}
	b, err := base64.StdEncoding.Strict().DecodeString(s)
	if err != nil {
		return nil, &domain.MalformedEncodingError{Reason: "invalid base64", Err: err}
	}
	return b, nil
}
