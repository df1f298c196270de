package export

import (
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding names the text encoding used for file writes. The set mirrors the
// classic shell encoding names; EncodingUTF8 is the default. Byte, String and
// Unknown are raw passthrough.
type Encoding string

const (
	EncodingASCII            Encoding = "ascii"
	EncodingBigEndianUnicode Encoding = "bigendianunicode"
	EncodingByte             Encoding = "byte"
	EncodingString           Encoding = "string"
	EncodingUnicode          Encoding = "unicode"
	EncodingUTF7             Encoding = "utf7"
	EncodingUTF8             Encoding = "utf8"
	EncodingUnknown          Encoding = "unknown"
)

// ParseEncoding maps a case-insensitive encoding name to an Encoding.
// An empty name selects the UTF8 default.
func ParseEncoding(name string) (Encoding, error) {
	if name == "" {
		return EncodingUTF8, nil
	}

	switch Encoding(strings.ToLower(name)) {
	case EncodingASCII:
		return EncodingASCII, nil
	case EncodingBigEndianUnicode:
		return EncodingBigEndianUnicode, nil
	case EncodingByte:
		return EncodingByte, nil
	case EncodingString:
		return EncodingString, nil
	case EncodingUnicode:
		return EncodingUnicode, nil
	case EncodingUTF7:
		return EncodingUTF7, nil
	case EncodingUTF8:
		return EncodingUTF8, nil
	case EncodingUnknown:
		return EncodingUnknown, nil
	}

	return "", NewEncodingError(name)
}

// WrapWriter wraps w so that UTF-8 text written to the result reaches w in
// this encoding. The returned writer must be closed to flush any partial
// transform state. UTF7 has no maintained Go encoder and is rejected here.
func (e Encoding) WrapWriter(w io.Writer) (io.WriteCloser, error) {
	switch e {
	case EncodingUnicode:
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder()
		return transform.NewWriter(w, enc), nil
	case EncodingBigEndianUnicode:
		enc := unicode.UTF16(unicode.BigEndian, unicode.UseBOM).NewEncoder()
		return transform.NewWriter(w, enc), nil
	case EncodingASCII:
		return &asciiWriter{w: w}, nil
	case EncodingUTF7:
		return nil, NewEncodingError(string(e))
	case EncodingUTF8, EncodingByte, EncodingString, EncodingUnknown, "":
		return nopWriteCloser{w}, nil
	}
	return nil, NewEncodingError(string(e))
}

// asciiWriter substitutes '?' for every rune outside the 7-bit range.
type asciiWriter struct {
	w io.Writer
}

func (a *asciiWriter) Write(p []byte) (int, error) {
	out := make([]byte, 0, len(p))
	for i := 0; i < len(p); {
		r, size := utf8.DecodeRune(p[i:])
		if r < utf8.RuneSelf {
			out = append(out, p[i])
		} else {
			out = append(out, '?')
		}
		i += size
	}
	if _, err := a.w.Write(out); err != nil {
		return 0, err
	}
	return len(p), nil
}

func (a *asciiWriter) Close() error { return nil }

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
