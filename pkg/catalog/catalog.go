// Package catalog renders a PDF overview of generated assets.
package catalog

import (
	"bytes"
	"image"
	"image/png"
	"io"
	"math"

	"github.com/google/uuid"
	"github.com/jung-kurt/gofpdf"
	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/akeil/spritegen"
	"github.com/akeil/spritegen/internal/imaging"
	"github.com/akeil/spritegen/internal/logging"
)

// Entry is one asset in the catalog.
type Entry struct {
	Asset spritegen.Asset
	Image image.Image
}

const (
	margin     = 36.0
	lineHeight = 12.0
	padding    = 6.0
	spacing    = 18.0
	// MaxZoom is the largest upscale factor for small sprites.
	MaxZoom = 4
)

var backdrop = [3]int{32, 32, 48}

// Render writes a PDF with one entry per asset to w.
//
// Sprites are upscaled with nearest-neighbour interpolation and placed
// on a dark backdrop. Entries that do not fit on the current page start
// a new one.
func Render(entries []Entry, w io.Writer) error {
	pdf := setupPDF("A4")
	pdf.AddPage()

	for _, e := range entries {
		err := renderEntry(pdf, e)
		if err != nil {
			return spritegen.Wrap(err, "catalog entry %q", e.Asset.Name)
		}
	}

	err := pdf.Output(w)
	if err != nil {
		return spritegen.Wrap(err, "write catalog")
	}
	return nil
}

func setupPDF(pageSize string) *gofpdf.Fpdf {
	orientation := "P" // [P]ortrait or [L]andscape
	sizeUnit := "pt"
	fontDir := ""
	pdf := gofpdf.New(orientation, sizeUnit, pageSize, fontDir)

	pdf.SetMargins(margin, margin, margin) // left, top, right
	pdf.SetAutoPageBreak(false, margin)
	pdf.AliasNbPages("{totalPages}")
	pdf.SetFont("helvetica", "", 8)
	pdf.SetTextColor(64, 64, 64)
	pdf.SetProducer("spritegen", true)
	pdf.SetTitle("Sprite catalog", true)

	pdf.SetFooterFunc(func() {
		pdf.SetY(-24)
		pdf.SetX(margin)
		pdf.Cellf(0, 10, "%d / {totalPages}", pdf.PageNo())
	})

	return pdf
}

// Zoom returns the integer upscale factor for an image of the given width
// so that it fits into the available width. Never less than one.
func Zoom(width int, available float64) int {
	if width <= 0 {
		return 1
	}
	z := int(math.Floor(available / float64(width)))
	if z > MaxZoom {
		z = MaxZoom
	}
	if z < 1 {
		z = 1
	}
	return z
}

func renderEntry(pdf *gofpdf.Fpdf, e Entry) error {
	a := e.Asset
	b := e.Image.Bounds()

	wPage, hPage := pdf.GetPageSize()
	available := wPage - 2*margin - 2*padding

	zoom := Zoom(b.Dx(), available)
	w := float64(b.Dx() * zoom)
	h := float64(b.Dy() * zoom)
	if w > available {
		// large backgrounds are scaled down by the PDF viewer
		h = h * available / w
		w = available
	}

	needed := lineHeight + h + 2*padding + spacing
	if pdf.GetY()+needed > hPage-margin && pdf.GetY() > margin {
		pdf.AddPage()
	}

	x, y := margin, pdf.GetY()
	pdf.SetXY(x, y)
	pdf.Cellf(0, lineHeight, "%s  %dx%d  %d frames", a.Name, a.Width, a.Height, a.FrameCount())
	y += lineHeight

	pdf.SetFillColor(backdrop[0], backdrop[1], backdrop[2])
	pdf.Rect(x, y, w+2*padding, h+2*padding, "F")

	var buf bytes.Buffer
	err := png.Encode(&buf, imaging.Upscale(e.Image, zoom))
	if err != nil {
		return err
	}

	name := uuid.New().String()
	opts := gofpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(name, opts, &buf)
	if pdf.Err() {
		return pdf.Error()
	}

	flow := false
	link := 0
	linkStr := ""
	pdf.ImageOptions(name, x+padding, y+padding, w, h, flow, opts, link, linkStr)
	logging.Debug("Catalog %q at %.0f,%.0f zoom %d", a.Name, x, y, zoom)

	pdf.SetY(y + h + 2*padding + spacing)
	return pdf.Error()
}

// Validate checks that data is a well-formed PDF document.
func Validate(data []byte) error {
	err := api.Validate(bytes.NewReader(data), nil)
	if err != nil {
		return spritegen.Wrap(err, "invalid PDF")
	}
	return nil
}
