package wordcount

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// DefaultEncoding is the source encoding used unless WithEncoding is given.
const DefaultEncoding = "utf8"

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Encodings lists the accepted source encoding names.
var Encodings = []string{"utf8", "cp437", "cp850", "iso-8859-1", "windows-1252"}

func lookupDecoder(name string) (dec *encoding.Decoder, ok bool) {
	switch strings.ToLower(name) {
	case "", "utf8", "utf-8":
		return nil, true
	case "cp437":
		return charmap.CodePage437.NewDecoder(), true
	case "cp850":
		return charmap.CodePage850.NewDecoder(), true
	case "iso-8859-1", "latin1":
		return charmap.ISO8859_1.NewDecoder(), true
	case "windows-1252", "cp1252":
		return charmap.Windows1252.NewDecoder(), true
	default:
		return nil, false
	}
}

// decode converts data from the named encoding to a UTF-8 string.
// A leading UTF-8 byte order mark is dropped.
func decode(data []byte, name string) (string, error) {
	dec, ok := lookupDecoder(name)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}

	if dec != nil {
		var err error
		data, err = io.ReadAll(transform.NewReader(bytes.NewReader(data), dec))
		if err != nil {
			return "", fmt.Errorf("%w: %s: %v", ErrDecode, name, err)
		}
	}

	data = bytes.TrimPrefix(data, utf8BOM)

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: input is not valid UTF-8", ErrDecode)
	}

	return string(data), nil
}
