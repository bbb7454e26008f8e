// Package report assembles an optional run summary: a single PDF collecting
// every chart rendered in a run, one page per chart.
package report

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
	"github.com/pkg/errors"
)

// Page is one chart of the summary: its heading and its rendered PNG.
type Page struct {
	Title string
	PNG   []byte
}

const (
	pageMargin = 12.7 // mm
	headingH   = 10   // mm
	// Chart images keep the 7.5x6 inch figure aspect.
	imageW = 190.5 // mm
	imageH = 152.4 // mm
)

// Build writes the summary PDF to path, creating parent directories as
// needed. An empty run is an error; a partially failed run never reaches
// this point.
func Build(path string, pages []Page) error {
	if len(pages) == 0 {
		return errors.New("no charts rendered, nothing to report")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "creating report directory %s", dir)
		}
	}

	pdf := gofpdf.New("L", "mm", "Letter", "")
	pdf.SetMargins(pageMargin, pageMargin, pageMargin)
	for i, page := range pages {
		pdf.AddPage()
		pdf.SetFont("Times", "B", 16)
		pdf.CellFormat(0, headingH, page.Title, "", 1, "C", false, 0, "")

		name := fmt.Sprintf("chart-%d", i)
		pdf.RegisterImageReader(name, "PNG", bytes.NewReader(page.PNG))
		pageW, _ := pdf.GetPageSize()
		x := (pageW - imageW) / 2
		pdf.Image(name, x, pageMargin+headingH+2, imageW, imageH, false, "PNG", 0, "")
	}
	if pdf.Err() {
		return errors.Errorf("assembling report: %v", pdf.Error())
	}
	if err := pdf.OutputFileAndClose(path); err != nil {
		return errors.Wrapf(err, "writing report %s", path)
	}
	return nil
}
