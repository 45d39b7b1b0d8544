package encoding_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openclaims/remit/internal/encoding"
)

func TestUTF8Reader_Passthrough(t *testing.T) {
	input := "Date,Amount,Method,Notes\n2024-03-01,45.00,hsa_debit,Copay — café visit\n"

	r, err := encoding.UTF8Reader(bytes.NewReader([]byte(input)))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, input, string(got))
}

func TestUTF8Reader_StripsUTF8BOM(t *testing.T) {
	content := "Date,Amount\n2024-03-01,45.00\n"
	input := append([]byte{0xEF, 0xBB, 0xBF}, content...)

	r, err := encoding.UTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestUTF8Reader_UTF16LE(t *testing.T) {
	content := "Date,Amount\n"

	var buf bytes.Buffer
	buf.Write([]byte{0xFF, 0xFE})
	for _, c := range content {
		buf.WriteByte(byte(c))
		buf.WriteByte(0x00)
	}

	r, err := encoding.UTF8Reader(&buf)
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, content, string(got))
}

func TestUTF8Reader_Windows1252Fallback(t *testing.T) {
	// "Sjukvård" with å encoded as 0xE5, invalid as UTF-8.
	input := []byte{'S', 'j', 'u', 'k', 'v', 0xE5, 'r', 'd', '\n'}

	r, err := encoding.UTF8Reader(bytes.NewReader(input))
	require.NoError(t, err)

	got, err := io.ReadAll(r)
	require.NoError(t, err)
	assert.Equal(t, "Sjukvård\n", string(got))
}
