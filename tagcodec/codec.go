package tagcodec

import (
	"fmt"

	"github.com/domaindict/domaindict/errs"
)

// Symbol is one W-bit code unit, stored widened to 16 bits so both the
// 6-bit and 8-bit codecs share a single representation.
type Symbol = uint16

// Width is the letter-field width, in bits, of one code unit (spec §3).
type Width int

const (
	// Width6 selects the 64-symbol alphabet.
	Width6 Width = 6
	// Width8 selects the raw-byte alphabet.
	Width8 Width = 8
)

const invalidByte = 0xFF

// Codec converts between host-string bytes and W-bit code units for a
// single alphabet width. A Codec is stateless and safe for concurrent use.
type Codec struct {
	width      Width
	encodeTbl  [256]byte   // ASCII byte -> symbol value, invalidByte if unmapped
	decodeTbl  []byte      // symbol value -> ASCII byte, 0 if unmapped
	delimiter  Symbol
	labelSep   Symbol
	maxSymbol  Symbol
}

// New builds the Codec for the given width. Width must be Width6 or Width8.
func New(width Width) (*Codec, error) {
	switch width {
	case Width6:
		return newCodec6(), nil
	case Width8:
		return newCodec8(), nil
	default:
		return nil, fmt.Errorf("tagcodec: width %d: %w", width, errs.ErrInvalidWidth)
	}
}

// Width reports the bit width of one code unit.
func (c *Codec) Width() Width { return c.width }

// Delimiter returns the reserved tag-delimiter symbol.
func (c *Codec) Delimiter() Symbol { return c.delimiter }

// LabelSeparator returns the reserved label-separator (period) symbol.
func (c *Codec) LabelSeparator() Symbol { return c.labelSep }

// Encode converts s byte-by-byte into code units, left to right, with no
// reversal. '.' maps to LabelSeparator; every other byte must be present
// in the alphabet or Encode returns errs.ErrAlphabet.
func (c *Codec) Encode(s string) ([]Symbol, error) {
	out := make([]Symbol, len(s))
	for i := 0; i < len(s); i++ {
		sym, err := c.encodeByte(s[i])
		if err != nil {
			return nil, err
		}
		out[i] = sym
	}

	return out, nil
}

// Decode converts code units back into a string, left to right. Decode
// returns errs.ErrAlphabet if any symbol lies outside the alphabet this
// Codec defines.
func (c *Codec) Decode(units []Symbol) (string, error) {
	out := make([]byte, len(units))
	for i, u := range units {
		b, err := c.decodeSymbol(u)
		if err != nil {
			return "", err
		}
		out[i] = b
	}

	return string(out), nil
}

// EncodeLabelSeparated reverses host character-by-character and encodes
// the result, matching the byte sequence the trie builder inserts (spec
// §4.7: "reverse(host)").
func (c *Codec) EncodeLabelSeparated(host string) ([]Symbol, error) {
	return c.Encode(reverseString(host))
}

// DecodeLabelSeparated is the inverse of EncodeLabelSeparated: it decodes
// units and then reverses the resulting string, matching the lookup
// algorithm's "decode(reverse(word[0..i]))" step (spec §4.6).
func (c *Codec) DecodeLabelSeparated(units []Symbol) (string, error) {
	s, err := c.Decode(reverseSymbols(units))
	if err != nil {
		return "", err
	}

	return s, nil
}

func (c *Codec) encodeByte(b byte) (Symbol, error) {
	if b == '.' {
		return c.labelSep, nil
	}

	v := c.encodeTbl[b]
	if v == invalidByte {
		return 0, fmt.Errorf("tagcodec: byte %q: %w", b, errs.ErrAlphabet)
	}

	return Symbol(v), nil
}

func (c *Codec) decodeSymbol(sym Symbol) (byte, error) {
	if sym == c.labelSep {
		return '.', nil
	}
	if sym > c.maxSymbol {
		return 0, fmt.Errorf("tagcodec: symbol %d exceeds width-%d alphabet: %w", sym, c.width, errs.ErrAlphabet)
	}

	b := c.decodeTbl[sym]
	if b == 0 {
		return 0, fmt.Errorf("tagcodec: symbol %d: %w", sym, errs.ErrAlphabet)
	}

	return b, nil
}

func reverseString(s string) string {
	n := len(s)
	out := make([]byte, n)
	for i := 0; i < n; i++ {
		out[i] = s[n-1-i]
	}

	return string(out)
}

func reverseSymbols(units []Symbol) []Symbol {
	n := len(units)
	out := make([]Symbol, n)
	for i := 0; i < n; i++ {
		out[i] = units[n-1-i]
	}

	return out
}
