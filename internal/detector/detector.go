// Package detector handles ROM dialect detection.
package detector

import (
	"path/filepath"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Dialect is the CHIP-8 variant that a ROM is written for.
type Dialect string

// Supported dialect values.
const (
	Unknown   Dialect = "unknown"
	Chip8     Dialect = "chip-8"
	SuperChip Dialect = "super-chip"
	XOChip    Dialect = "xo-chip"
)

// Detector handles dialect detection from file extensions.
type Detector struct {
	logger *log.Logger
}

// New creates a new dialect detector.
func New(logger *log.Logger) *Detector {
	return &Detector{
		logger: logger,
	}
}

// Detect determines the dialect from the ROM file extension and warns when
// the ROM is written for an instruction set extension that is not supported.
func (d *Detector) Detect(path string) Dialect {
	dialect := detectFromFile(path)
	d.logger.Debug("Detected ROM dialect",
		log.String("dialect", string(dialect)),
		log.String("file", path))

	switch dialect {
	case SuperChip, XOChip:
		d.logger.Warn("ROM targets an unsupported CHIP-8 extension, its extended opcodes will be skipped",
			log.String("dialect", string(dialect)))
	case Unknown:
		d.logger.Warn("Unknown ROM file extension, running as CHIP-8",
			log.String("file", path))
	}
	return dialect
}

// detectFromFile determines the dialect based on file extension.
func detectFromFile(filename string) Dialect {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".ch8", ".c8", ".rom":
		return Chip8
	case ".sc8":
		return SuperChip
	case ".xo8":
		return XOChip
	default:
		return Unknown
	}
}
