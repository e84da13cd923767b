package fileops

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// DefaultEncoding is used when an empty encoding name is given.
const DefaultEncoding = "utf-8"

var (
	// ErrUnknownEncoding is returned when an encoding name cannot be resolved.
	ErrUnknownEncoding = errors.New("unknown encoding")
	// ErrDecode is returned when file bytes are not valid in the requested encoding.
	ErrDecode = errors.New("cannot decode content")
	// ErrEncode is returned when text cannot be represented in the requested encoding.
	ErrEncode = errors.New("cannot encode content")
)

// encodingAliases maps common spellings that the IANA registry does not list.
var encodingAliases = map[string]string{
	"utf8":      "utf-8",
	"utf_8":     "utf-8",
	"u8":        "utf-8",
	"utf_8_sig": utf8SigEncoding,
	"utf8-sig":  utf8SigEncoding,
	"ascii":     "us-ascii",
	"646":       "us-ascii",
	"latin-1":   "latin1",
	"latin_1":   "latin1",
	"l1":        "latin1",
	"cp1252":    "windows-1252",
	"utf16":     "utf-16",
	"utf_16":    "utf-16",
}

// utf8SigEncoding is UTF-8 with a byte order mark: stripped when reading if
// present, always written.
const utf8SigEncoding = "utf-8-sig"

// Codec converts between Go strings and the bytes of a named text encoding.
type Codec struct {
	name string
	enc  encoding.Encoding
	// validateUTF8 is set for the UTF-8 family, whose input is checked
	// strictly instead of round-tripped.
	validateUTF8 bool
}

// LookupEncoding resolves an encoding label such as "utf-8", "latin-1",
// "ascii" or "windows-1252". An empty name selects DefaultEncoding.
//
// Labels are resolved against the IANA registry first and the WHATWG index
// second. Unknown or unsupported labels return ErrUnknownEncoding.
func LookupEncoding(name string) (*Codec, error) {
	label := strings.ToLower(strings.TrimSpace(name))
	if label == "" {
		label = DefaultEncoding
	}
	if alias, ok := encodingAliases[label]; ok {
		label = alias
	}

	var enc encoding.Encoding
	if label == utf8SigEncoding {
		enc = unicode.UTF8BOM
	} else {
		var err error
		enc, err = ianaindex.IANA.Encoding(label)
		if err != nil || enc == nil {
			enc, err = htmlindex.Get(label)
			if err != nil || enc == nil {
				return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
			}
		}
	}

	return &Codec{
		name:         label,
		enc:          enc,
		validateUTF8: enc == unicode.UTF8 || enc == unicode.UTF8BOM,
	}, nil
}

// Name returns the normalized label the codec was resolved from.
func (c *Codec) Name() string {
	return c.name
}

// Decode converts raw bytes to text. Bytes that are not valid in the
// encoding are an ErrDecode, never replaced with U+FFFD.
func (c *Codec) Decode(data []byte) (string, error) {
	if c.validateUTF8 {
		if _, _, err := transform.Bytes(encoding.UTF8Validator, data); err != nil {
			return "", fmt.Errorf("%w as %s: %v", ErrDecode, c.name, err)
		}
		if c.enc == unicode.UTF8 {
			return string(data), nil
		}
	}

	out, err := c.enc.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w as %s: %v", ErrDecode, c.name, err)
	}

	// x/text decoders substitute U+FFFD for invalid input. A replacement
	// character only came from the input if encoding it gives the input back.
	if !c.validateUTF8 && bytes.ContainsRune(out, utf8.RuneError) {
		back, err := c.enc.NewEncoder().Bytes(out)
		if err != nil || !bytes.Equal(back, data) {
			return "", fmt.Errorf("%w as %s: invalid byte sequence", ErrDecode, c.name)
		}
	}
	return string(out), nil
}

// Encode converts text to the codec's byte representation. Characters the
// encoding cannot represent are an ErrEncode.
func (c *Codec) Encode(content string) ([]byte, error) {
	if c.enc == unicode.UTF8 {
		return []byte(content), nil
	}

	out, err := c.enc.NewEncoder().String(content)
	if err != nil {
		return nil, fmt.Errorf("%w as %s: %v", ErrEncode, c.name, err)
	}
	return []byte(out), nil
}
