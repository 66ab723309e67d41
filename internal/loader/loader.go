// Package loader handles ROM file loading operations.
package loader

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

var (
	// ErrEmptyROM is returned for ROM files without content.
	ErrEmptyROM = errors.New("rom is empty")
	// ErrROMTooLarge is returned for ROM files that do not fit into program memory.
	ErrROMTooLarge = errors.New("rom does not fit into program memory")
)

// Loader handles loading ROM files from disk.
type Loader struct{}

// New creates a new ROM loader.
func New() *Loader {
	return &Loader{}
}

// Load reads the ROM file at the given path.
func (l *Loader) Load(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	return l.LoadFromReader(file)
}

// LoadFromReader reads a ROM from the reader and validates its size.
func (l *Loader) LoadFromReader(reader io.Reader) ([]byte, error) {
	// read one byte more than fits to detect oversized ROMs without reading them fully
	data, err := io.ReadAll(io.LimitReader(reader, chip8.MaxROMSize+1))
	if err != nil {
		return nil, fmt.Errorf("reading rom: %w", err)
	}

	switch {
	case len(data) == 0:
		return nil, ErrEmptyROM
	case len(data) > chip8.MaxROMSize:
		return nil, fmt.Errorf("%w: maximum size is %d bytes", ErrROMTooLarge, chip8.MaxROMSize)
	}
	return data, nil
}
