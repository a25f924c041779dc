package tagcodec

// newCodec6 builds the 64-symbol alphabet: 'a'-'z' (0-25), '0'-'9' (26-35),
// '-' (36), the label separator (37), and the tag delimiter (38). Symbols
// 39-63 are reserved and never emitted by Encode; Decode rejects them.
func newCodec6() *Codec {
	c := &Codec{
		width:     Width6,
		decodeTbl: make([]byte, 64),
		labelSep:  37,
		delimiter: 38,
		maxSymbol: 63,
	}
	for i := range c.encodeTbl {
		c.encodeTbl[i] = invalidByte
	}

	sym := byte(0)
	for ch := byte('a'); ch <= 'z'; ch++ {
		c.encodeTbl[ch] = sym
		c.decodeTbl[sym] = ch
		sym++
	}
	for ch := byte('0'); ch <= '9'; ch++ {
		c.encodeTbl[ch] = sym
		c.decodeTbl[sym] = ch
		sym++
	}
	c.encodeTbl['-'] = sym
	c.decodeTbl[sym] = '-'

	return c
}

// newCodec8 builds the raw-byte alphabet: every ASCII byte maps to itself
// except the tag delimiter, which is reserved at 0x00 (never a legal host
// byte). The label separator is the ASCII byte for '.' itself, handled by
// Codec.encodeByte/decodeSymbol directly rather than through this table.
func newCodec8() *Codec {
	c := &Codec{
		width:     Width8,
		decodeTbl: make([]byte, 256),
		labelSep:  '.',
		delimiter: 0x00,
		maxSymbol: 255,
	}
	for i := 1; i < 256; i++ {
		c.encodeTbl[i] = byte(i)
		c.decodeTbl[i] = byte(i)
	}
	c.encodeTbl[0] = invalidByte

	return c
}
