package itinerary

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"tripwise/models"
	"tripwise/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// ExportPDF renders an itinerary as a downloadable PDF with a share QR
// code on the first page.
// GET /api/itineraries/:itineraryid/pdf
func ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	it, ok := findItinerary(w, r, ps.ByName("itineraryid"))
	if !ok {
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if it.UserID != userID && it.Status != models.StatusShared {
		utils.RespondWithError(w, http.StatusForbidden, "This itinerary is private")
		return
	}

	qrPNG, err := qrcode.Encode(shareURL(it.ShareToken), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, it.Title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("%d days from %s | %d adult(s), %d child(ren) | %s tier",
		it.TotalDays, it.OriginCity, it.Adults, it.Children, it.BudgetTier))
	pdf.Ln(7)
	if it.StartDate != nil && it.EndDate != nil {
		pdf.Cell(0, 7, fmt.Sprintf("%s to %s",
			it.StartDate.Format("2 Jan 2006"), it.EndDate.Format("2 Jan 2006")))
		pdf.Ln(7)
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("share-qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("share-qr", 160, 12, 35, 35, false, imageOpts, 0, "")

	writeBudgetTable(pdf, it.BudgetBreakdown)

	for _, day := range it.Days {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 13)
		header := fmt.Sprintf("Day %d: %s", day.DayNumber, day.Title)
		if day.Date != nil {
			header += " (" + day.Date.Format("Mon, 2 Jan") + ")"
		}
		pdf.Cell(0, 8, header)
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		for _, slot := range day.Slots {
			line := fmt.Sprintf("%s  %s", slot.TimeLabel, slot.Title)
			if slot.EstimatedCost > 0 {
				line += fmt.Sprintf("  (Rs %d)", slot.EstimatedCost)
			}
			pdf.Cell(0, 6, line)
			pdf.Ln(6)
			if slot.Description != "" {
				pdf.SetFont("Arial", "I", 9)
				pdf.MultiCell(0, 5, slot.Description, "", "", false)
				pdf.SetFont("Arial", "", 10)
			}
			if names := suggestionNames(slot.Suggestions); names != "" {
				pdf.Cell(0, 5, "Try: "+names)
				pdf.Ln(5)
			}
		}
	}

	if len(it.TravelTips) > 0 {
		pdf.Ln(4)
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, "Travel Tips")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		for _, tip := range it.TravelTips {
			pdf.MultiCell(0, 5, "- "+tip, "", "", false)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=itinerary-"+it.ItineraryID+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// ShareQR serves the share link of an itinerary as a PNG QR code.
// GET /api/itineraries/:itineraryid/qr
func ShareQR(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	it, ok := findItinerary(w, r, ps.ByName("itineraryid"))
	if !ok {
		return
	}

	userID := utils.GetUserIDFromRequest(r)
	if it.UserID != userID && it.Status != models.StatusShared {
		utils.RespondWithError(w, http.StatusForbidden, "This itinerary is private")
		return
	}

	qrPNG, err := qrcode.Encode(shareURL(it.ShareToken), qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(qrPNG)
}

func writeBudgetTable(pdf *gofpdf.Fpdf, breakdowns []models.BudgetBreakdown) {
	if len(breakdowns) == 0 {
		return
	}
	pdf.Ln(4)
	pdf.SetFont("Arial", "B", 13)
	pdf.Cell(0, 8, "Budget Breakdown")
	pdf.Ln(8)

	pdf.SetFont("Arial", "B", 9)
	cols := []string{"Tier", "Stay", "Food", "Transport", "Entry", "Misc", "Total"}
	widths := []float64{25, 27, 27, 27, 25, 25, 30}
	for i, col := range cols {
		pdf.CellFormat(widths[i], 7, col, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(7)

	pdf.SetFont("Arial", "", 9)
	for _, b := range breakdowns {
		cells := []string{
			string(b.Tier),
			fmt.Sprintf("%d", b.Accommodation),
			fmt.Sprintf("%d", b.Food),
			fmt.Sprintf("%d", b.Transport),
			fmt.Sprintf("%d", b.EntryFees),
			fmt.Sprintf("%d", b.Miscellaneous),
			fmt.Sprintf("%d", b.Total),
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "C", false, 0, "")
		}
		pdf.Ln(7)
	}
}

func suggestionNames(suggestions []models.Suggestion) string {
	names := make([]string, 0, len(suggestions))
	for _, s := range suggestions {
		names = append(names, s.Name)
	}
	return strings.Join(names, ", ")
}
