package transcript

import (
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
)

func writeCompressed(path string, data []byte) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create file %s: %w", path, err)
	}
	defer out.Close()

	enc, err := zstd.NewWriter(out)
	if err != nil {
		return fmt.Errorf("failed to create zstd writer: %w", err)
	}
	if _, err := enc.Write(data); err != nil {
		enc.Close()
		return fmt.Errorf("failed to write compressed data: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to flush compressed data: %w", err)
	}
	return nil
}

func readCompressed(path string) ([]byte, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %s: %w", path, err)
	}
	defer in.Close()

	d, err := zstd.NewReader(in)
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %w", err)
	}
	defer d.Close()

	b, err := io.ReadAll(d)
	if err != nil {
		return nil, fmt.Errorf("failed to read compressed data: %w", err)
	}
	return b, nil
}
