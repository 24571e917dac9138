package services

import (
	"fmt"

	"github.com/ledongthuc/pdf"
)

// PDFProbe inspects a PDF on disk without sending it anywhere. Used to log
// document size and to decide whether a first-page preview makes sense.
// Probe failures are non-fatal to the request.
type PDFProbe interface {
	PageCount(filePath string) (int, error)
}

type pdfProbe struct{}

func NewPDFProbe() PDFProbe {
	return &pdfProbe{}
}

func (p *pdfProbe) PageCount(filePath string) (int, error) {
	f, r, err := pdf.Open(filePath)
	if err != nil {
		return 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	return r.NumPage(), nil
}
