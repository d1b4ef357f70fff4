package handle

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"unsafe"

	"github.com/wippyai/g2-bridge/errors"
)

// Width is the number of bits in a Token on this platform.
const Width = bits.UintSize

// Token is a native engine handle carried as a machine-word integer.
// The zero Token is the null handle.
type Token uintptr

// FromPointer converts a native handle pointer into its token form.
func FromPointer(p unsafe.Pointer) Token {
	return Token(uintptr(p))
}

// Pointer converts t back into the native handle pointer it came from.
func (t Token) Pointer() unsafe.Pointer {
	return unsafe.Pointer(uintptr(t)) //nolint:govet // handles are engine-owned memory
}

// FromUint64 converts a 64-bit integer into a token, failing when the value
// does not fit the platform word.
func FromUint64(v uint64) (Token, error) {
	if Width == 32 && v > math.MaxUint32 {
		return 0, errors.Overflow(errors.PhaseHandle, []string{"handle"}, v, "uintptr")
	}
	return Token(v), nil
}

// FromUint32 widens a 32-bit guest handle.
func FromUint32(v uint32) Token {
	return Token(v)
}

// Uint64 returns t widened to 64 bits.
func (t Token) Uint64() uint64 {
	return uint64(t)
}

// Uint32 narrows t to a 32-bit guest handle.
func (t Token) Uint32() (uint32, error) {
	if uint64(t) > math.MaxUint32 {
		return 0, errors.Overflow(errors.PhaseHandle, []string{"handle"}, uint64(t), "u32")
	}
	return uint32(t), nil
}

// IsZero reports whether t is the null handle.
func (t Token) IsZero() bool {
	return t == 0
}

func (t Token) String() string {
	return "0x" + strconv.FormatUint(uint64(t), 16)
}

// Parse reads a token written by String or as a plain decimal integer.
func Parse(s string) (Token, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Wrap(errors.PhaseHandle, errors.KindInvalidInput, err, fmt.Sprintf("parse handle %q", s))
	}
	return FromUint64(v)
}
