package util

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-pdf/fpdf"
	"golang.org/x/text/encoding/charmap"
)

var ErrRenderFailure = errors.New("render failure")

// ToSingleByte maps s onto the Windows-1252 repertoire understood by the core
// PDF fonts. Runes outside it become '?'.
func ToSingleByte(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '\n' || r == '\t' {
			b.WriteRune(r)
			continue
		}
		if _, ok := charmap.Windows1252.EncodeRune(r); !ok {
			b.WriteByte('?')
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// RenderPDF writes text as a paginated A4 document in Arial 11.
func RenderPDF(text, path string) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 15)
	pdf.AddPage()
	pdf.SetFont("Arial", "", 11)

	encoded, err := charmap.Windows1252.NewEncoder().String(ToSingleByte(text))
	if err != nil {
		return fmt.Errorf("%w: encode text: %v", ErrRenderFailure, err)
	}
	pdf.MultiCell(0, 5, encoded, "", "", false)

	if err := pdf.OutputFileAndClose(path); err != nil {
		return fmt.Errorf("%w: write %s: %v", ErrRenderFailure, path, err)
	}
	return nil
}
