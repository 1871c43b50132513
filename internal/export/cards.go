package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/piwi3910/PanelGrid/internal/model"
)

// CardInfo holds the data encoded into each panel card's QR code. Scanning a
// card restores the panel's geometry in a companion shell.
type CardInfo struct {
	ID        string  `json:"id"`
	Component string  `json:"component"`
	Title     string  `json:"title"`
	Width     float64 `json:"width"`
	Height    float64 `json:"height"`
	X         float64 `json:"x"`
	Y         float64 `json:"y"`
	ZIndex    int     `json:"zIndex"`
}

// Card layout constants for Avery 5160-compatible labels (3 columns, 10 rows
// per page, US Letter).
const (
	cardPageWidth  = 215.9
	cardMarginTop  = 12.7
	cardMarginLeft = 4.8
	cardWidth      = 66.7
	cardHeight     = 25.4
	cardCols       = 3
	cardRows       = 10
	cardsPerPage   = cardCols * cardRows
	qrSize         = 20.0
	cardPadding    = 2.0
)

// ExportCards generates a PDF of QR-coded reference cards, one per visible
// panel. Each card carries the panel title, its dimensions, and a QR code
// encoding the panel geometry as JSON.
func ExportCards(path string, panels []model.PanelLayout) error {
	var cards []CardInfo
	for _, p := range panels {
		if !p.Visible {
			continue
		}
		cards = append(cards, CardInfo{
			ID:        p.ID,
			Component: p.Component,
			Title:     p.Title(),
			Width:     p.Size.Width,
			Height:    p.Size.Height,
			X:         p.Position.X,
			Y:         p.Position.Y,
			ZIndex:    p.ZIndex,
		})
	}
	if len(cards) == 0 {
		return fmt.Errorf("no visible panels to generate cards for")
	}

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)

	for i, card := range cards {
		if i%cardsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % cardsPerPage
		col := posOnPage % cardCols
		row := posOnPage / cardCols

		x := cardMarginLeft + float64(col)*cardWidth
		y := cardMarginTop + float64(row)*cardHeight

		if err := renderCard(pdf, x, y, card); err != nil {
			return fmt.Errorf("failed to render card for %q: %w", card.Title, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderCard draws a single card at the given position.
func renderCard(pdf *fpdf.Fpdf, x, y float64, info CardInfo) error {
	// Light border as a cutting guide
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, cardWidth, cardHeight, "D")

	payload, err := json.Marshal(info)
	if err != nil {
		return err
	}
	png, err := qrcode.Encode(string(payload), qrcode.Medium, 256)
	if err != nil {
		return err
	}

	imageName := "qr-" + info.ID
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader(imageName, opts, bytes.NewReader(png))
	pdf.ImageOptions(imageName, x+cardPadding, y+(cardHeight-qrSize)/2, qrSize, qrSize, false, opts, 0, "")

	textX := x + cardPadding + qrSize + cardPadding
	textW := cardWidth - qrSize - 3*cardPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetXY(textX, y+cardPadding+2)
	pdf.CellFormat(textW, 4, info.Title, "", 0, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+cardPadding+7)
	pdf.CellFormat(textW, 3.5, info.Component, "", 0, "L", false, 0, "")
	pdf.SetXY(textX, y+cardPadding+11)
	pdf.CellFormat(textW, 3.5, fmt.Sprintf("%.0f x %.0f at (%.0f, %.0f)", info.Width, info.Height, info.X, info.Y), "", 0, "L", false, 0, "")

	return nil
}
