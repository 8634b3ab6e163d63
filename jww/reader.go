package jww

import (
	"encoding/binary"
	"fmt"
	"math"

	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

// maxStringLength bounds a single CString payload so an untrusted length
// header cannot force an allocation larger than the remaining input.
const maxStringLength = 1 << 28

// Reader is a byte cursor over an in-memory JWW buffer: a slice and a read
// offset. All multi-byte integers and floats are little-endian. The cursor
// is append-only over its offset; the one controlled "rewind" the decoder
// needs (the entity-list locator) is expressed by constructing a new Reader
// over a suffix of the original buffer, not by seeking backward.
type Reader struct {
	buf []byte
	off int
}

// NewReader wraps buf in a Reader starting at offset 0.
func NewReader(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// Offset returns the current read offset into the underlying buffer.
func (r *Reader) Offset() int { return r.off }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

func (r *Reader) need(n int) error {
	if n < 0 || r.Remaining() < n {
		return fmt.Errorf("%w: need %d bytes at offset %d, have %d", ErrUnexpectedEOF, n, r.off, r.Remaining())
	}
	return nil
}

// ReadBYTE reads a single unsigned byte.
func (r *Reader) ReadBYTE() (byte, error) {
	if err := r.need(1); err != nil {
		return 0, err
	}
	b := r.buf[r.off]
	r.off++
	return b, nil
}

// ReadWORD reads a 16-bit unsigned integer in little-endian format.
func (r *Reader) ReadWORD() (uint16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint16(r.buf[r.off:])
	r.off += 2
	return v, nil
}

// ReadDWORD reads a 32-bit unsigned integer in little-endian format.
func (r *Reader) ReadDWORD() (uint32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

// ReadDouble reads a 64-bit IEEE-754 floating point number in little-endian format.
func (r *Reader) ReadDouble() (float64, error) {
	if err := r.need(8); err != nil {
		return 0, err
	}
	bits := binary.LittleEndian.Uint64(r.buf[r.off:])
	r.off += 8
	return math.Float64frombits(bits), nil
}

// ReadExact reads exactly n bytes and returns them as a new slice.
func (r *Reader) ReadExact(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, r.buf[r.off:r.off+n])
	r.off += n
	return out, nil
}

// Skip advances the offset by n bytes without returning them.
func (r *Reader) Skip(n int) error {
	if err := r.need(n); err != nil {
		return err
	}
	r.off += n
	return nil
}

// ReadCString reads the persistence framework's variable-length string:
//
//  1. Read a length byte b0. If b0 < 0xFF, the byte length is b0.
//  2. Else read a WORD w. If w < 0xFFFF, the byte length is w.
//  3. Else read a DWORD d; the byte length is d.
//
// The payload is decoded Shift_JIS -> Unicode with substitution on invalid
// sequences (this step never fails), and a single trailing NUL is trimmed.
// A zero length yields the empty string.
func (r *Reader) ReadCString() (string, error) {
	b0, err := r.ReadBYTE()
	if err != nil {
		return "", err
	}

	length := uint32(b0)
	if b0 == 0xFF {
		w, err := r.ReadWORD()
		if err != nil {
			return "", err
		}
		length = uint32(w)
		if w == 0xFFFF {
			d, err := r.ReadDWORD()
			if err != nil {
				return "", err
			}
			length = d
		}
	}

	if length == 0 {
		return "", nil
	}
	if length > maxStringLength || int(length) > r.Remaining() {
		return "", fmt.Errorf("%w: string length %d exceeds remaining buffer (%d)", ErrUnexpectedEOF, length, r.Remaining())
	}

	raw, err := r.ReadExact(int(length))
	if err != nil {
		return "", err
	}
	return shiftJISToUnicode(raw), nil
}

// shiftJISToUnicode converts Shift_JIS encoded bytes to a Unicode string,
// substituting invalid sequences rather than failing, and trims a single
// trailing NUL.
func shiftJISToUnicode(data []byte) string {
	decoder := japanese.ShiftJIS.NewDecoder()
	result, _, err := transform.Bytes(decoder, data)
	if err != nil {
		result = data
	}
	s := string(result)
	if n := len(s); n > 0 && s[n-1] == 0 {
		s = s[:n-1]
	}
	return s
}
