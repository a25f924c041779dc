package tagcodec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInvalidWidth(t *testing.T) {
	_, err := New(Width(7))
	require.Error(t, err)
}

func TestCodec6RoundTrip(t *testing.T) {
	c, err := New(Width6)
	require.NoError(t, err)

	for _, host := range []string{"com", "example.com", "www.example.com", "bbc.co.uk"} {
		units, err := c.Encode(host)
		require.NoError(t, err)

		back, err := c.Decode(units)
		require.NoError(t, err)
		assert.Equal(t, host, back)
	}
}

func TestCodec8RoundTrip(t *testing.T) {
	c, err := New(Width8)
	require.NoError(t, err)

	for _, host := range []string{"com", "example.com", "www.example.com"} {
		units, err := c.Encode(host)
		require.NoError(t, err)

		back, err := c.Decode(units)
		require.NoError(t, err)
		assert.Equal(t, host, back)
	}
}

func TestLabelSeparatedRoundTrip(t *testing.T) {
	for _, width := range []Width{Width6, Width8} {
		c, err := New(width)
		require.NoError(t, err)

		host := "www.example.com"
		units, err := c.EncodeLabelSeparated(host)
		require.NoError(t, err)

		back, err := c.DecodeLabelSeparated(units)
		require.NoError(t, err)
		assert.Equal(t, host, back)
	}
}

func TestEncodeLabelSeparatedReversesCharacters(t *testing.T) {
	c, err := New(Width6)
	require.NoError(t, err)

	units, err := c.EncodeLabelSeparated("www.example.com")
	require.NoError(t, err)

	plain, err := c.Decode(units)
	require.NoError(t, err)
	assert.Equal(t, "moc.elpmaxe.www", plain)
}

func TestEncodeRejectsUnknownByte(t *testing.T) {
	c, err := New(Width6)
	require.NoError(t, err)

	_, err = c.Encode("exa_mple")
	require.Error(t, err)
}

func TestDecodeRejectsOutOfRangeSymbol(t *testing.T) {
	c, err := New(Width6)
	require.NoError(t, err)

	_, err = c.Decode([]Symbol{60})
	require.Error(t, err)
}

func TestReservedSymbolsDiffer(t *testing.T) {
	for _, width := range []Width{Width6, Width8} {
		c, err := New(width)
		require.NoError(t, err)
		assert.NotEqual(t, c.Delimiter(), c.LabelSeparator())
	}
}

func TestLabelSeparatorSymbol(t *testing.T) {
	c6, err := New(Width6)
	require.NoError(t, err)

	units, err := c6.Encode("a.b")
	require.NoError(t, err)
	assert.Equal(t, c6.LabelSeparator(), units[1])
}
