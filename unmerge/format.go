package unmerge

import (
	"fmt"
	"os"
	"path/filepath"
)

// Format represents the detected binary format of an Excel file.
type Format int

const (
	FormatUnknown Format = iota
	FormatOLE2           // Binary .xls (magic: d0cf11e0a1b11ae1)
	FormatOOXML          // ZIP-based .xlsx (magic: 504b0304)
)

// DetectFormat reads the first bytes of a file and returns the detected
// format.
func DetectFormat(path string) (Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, err
	}
	defer f.Close()

	buf := make([]byte, 8)
	n, err := f.Read(buf)
	if err != nil {
		return FormatUnknown, err
	}
	if n < 4 {
		return FormatUnknown, nil
	}

	// OLE2 Compound Document: d0 cf 11 e0 (full signature: d0cf11e0a1b11ae1)
	if buf[0] == 0xd0 && buf[1] == 0xcf && buf[2] == 0x11 && buf[3] == 0xe0 {
		return FormatOLE2, nil
	}

	// ZIP (OOXML): PK\x03\x04
	if buf[0] == 0x50 && buf[1] == 0x4b && buf[2] == 0x03 && buf[3] == 0x04 {
		return FormatOOXML, nil
	}

	return FormatUnknown, nil
}

// CheckReadable rejects files this tool cannot parse before excelize
// opens them, with a message that names the actual problem.
func CheckReadable(path string) error {
	format, err := DetectFormat(path)
	if err != nil {
		return fmt.Errorf("cannot access file: %w", err)
	}
	switch format {
	case FormatOLE2:
		return fmt.Errorf("%s is a legacy binary .xls workbook; convert it to .xlsx first", filepath.Base(path))
	case FormatOOXML:
		return nil
	default:
		return fmt.Errorf("%s is not a recognizable Excel workbook", filepath.Base(path))
	}
}
