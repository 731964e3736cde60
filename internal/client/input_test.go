package client

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-uo-client/internal/config"
)

func TestScanInputs(t *testing.T) {
	in := "# header\n0a0b\n\n  0x0c  \nFF\n"

	got, err := scanInputs(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{0x0a, 0x0b}, {0x0c}, {0xff}}, got)
}

func TestScanInputs_BadLine(t *testing.T) {
	_, err := scanInputs(strings.NewReader("00\nxyz\n"))
	require.ErrorIs(t, err, ErrInvalidInput)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReadInputs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "inputs.txt")
	require.NoError(t, os.WriteFile(path, []byte("01\n02\n"), 0o600))

	got, err := readInputs(config.ClientCall{Input: "00", InputFile: path})
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{0x00}, {0x01}, {0x02}}, got)

	got, err = readInputs(config.ClientCall{})
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = readInputs(config.ClientCall{Input: "0"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = readInputs(config.ClientCall{InputFile: filepath.Join(t.TempDir(), "missing")})
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func writeFile(path, content string) error {
	return os.WriteFile(path, []byte(content), 0o600)
}
