package xor

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tldr-it-stepankutaj/byteproc/internal/processor"
)

func TestKeyCycling(t *testing.T) {
	m, err := New("abcd1234", 0)
	require.NoError(t, err)

	out, err := m.Process([]byte{0x00, 0x11, 0x22, 0x33})
	require.NoError(t, err)
	require.Equal(t, []byte{0xab, 0xdc, 0x30, 0x07}, out)
}

func TestInvolution(t *testing.T) {
	// Input lengths deliberately not multiples of the key length.
	cases := []struct {
		key   string
		input []byte
	}{
		{"ff", []byte{}},
		{"ff", []byte{0x00}},
		{"abcd", []byte{1, 2, 3}},
		{"abcd1234", []byte{0xde, 0xad, 0xbe, 0xef, 0x01}},
		{"00", []byte{7, 8, 9}},
		{"0102030405060708", []byte("hello world")},
	}
	for _, c := range cases {
		m, err := New(c.key, 0)
		require.NoError(t, err)

		once, err := m.Process(c.input)
		require.NoError(t, err)
		twice, err := m.Process(once)
		require.NoError(t, err)
		require.Equal(t, c.input, twice, "key %s", c.key)
	}
}

func TestEmptyKeyRejected(t *testing.T) {
	_, err := New("", 0)
	require.ErrorIs(t, err, processor.ErrInvalidConfiguration)
}

func TestBadHexKeyRejected(t *testing.T) {
	for _, key := range []string{"zz", "abc", "0x12"} {
		_, err := New(key, 0)
		require.ErrorIs(t, err, processor.ErrHexDecode, "key %q", key)
	}
}

func TestPadByteInert(t *testing.T) {
	a, err := New("abcd", 0x00)
	require.NoError(t, err)
	b, err := New("abcd", 0xff)
	require.NoError(t, err)

	in := []byte{1, 2, 3, 4, 5}
	outA, err := a.Process(in)
	require.NoError(t, err)
	outB, err := b.Process(in)
	require.NoError(t, err)
	require.Equal(t, outA, outB)
}

func TestDoesNotAliasInput(t *testing.T) {
	m, err := New("ff", 0)
	require.NoError(t, err)

	in := []byte{1, 2, 3}
	_, err = m.Process(in)
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, in)
}

func TestCloseZeroesKey(t *testing.T) {
	m, err := New("abcd1234", 0)
	require.NoError(t, err)

	raw := m.key.b
	require.NoError(t, m.Close())
	for i, b := range raw[:cap(raw)] {
		require.Zerof(t, b, "key byte %d not zeroed", i)
	}
	require.Empty(t, m.key.b)
}
