package domain

import (
	"encoding/binary"
	"encoding/hex"

	"go.trai.ch/zerr"
)

// Fingerprint is an opaque 128-bit hash summarizing the result last computed
// for a node. The snapshot only stores and compares fingerprints; computing
// them belongs to the fingerprint adapter.
type Fingerprint [2]uint64

// String renders the fingerprint as 32 lowercase hex characters.
func (f Fingerprint) String() string {
	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], f[0])
	binary.BigEndian.PutUint64(buf[8:], f[1])
	return hex.EncodeToString(buf[:])
}

// ParseFingerprint parses the hex form produced by String.
func ParseFingerprint(s string) (Fingerprint, error) {
	raw, err := hex.DecodeString(s)
	if err != nil || len(raw) != 16 {
		return Fingerprint{}, zerr.With(ErrInvalidFingerprint, "value", s)
	}
	return Fingerprint{
		binary.BigEndian.Uint64(raw[:8]),
		binary.BigEndian.Uint64(raw[8:]),
	}, nil
}
