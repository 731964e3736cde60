package client

import (
	"bufio"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/MKhiriev/go-uo-client/internal/config"
)

// readInputs collects the payloads of a run: call.Input first, then one per
// line of call.InputFile. Blank lines and lines starting with '#' are
// skipped.
func readInputs(call config.ClientCall) ([][]byte, error) {
	var inputs [][]byte

	if s := strings.TrimSpace(call.Input); s != "" {
		data, err := decodeHex(s)
		if err != nil {
			return nil, fmt.Errorf("%w: input: %w", ErrInvalidInput, err)
		}
		inputs = append(inputs, data)
	}

	if call.InputFile != "" {
		f, err := os.Open(call.InputFile)
		if err != nil {
			return nil, fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()

		lines, err := scanInputs(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", call.InputFile, err)
		}
		inputs = append(inputs, lines...)
	}

	return inputs, nil
}

func scanInputs(r io.Reader) ([][]byte, error) {
	var inputs [][]byte

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		data, err := decodeHex(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrInvalidInput, n, err)
		}
		inputs = append(inputs, data)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return inputs, nil
}

func decodeHex(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	return hex.DecodeString(s)
}
