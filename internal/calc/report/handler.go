package report

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/phpdave11/gofpdf"

	analysis "Girder/internal/calc/analysis"
	designcheck "Girder/internal/calc/designcheck"
)

type Input struct {
	Project  string         `json:"project"`
	Author   string         `json:"author"`
	Analysis analysis.Input `json:"analysis"`
}

type Handler struct{}

func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	var input Input
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		http.Error(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	res, err := analysis.Run(input.Analysis)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	pdf := buildPDF(input, res)

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=\"member-check.pdf\"")
	if err := pdf.Output(w); err != nil {
		http.Error(w, "Report generation error", http.StatusInternalServerError)
		return
	}
}

func buildPDF(input Input, res analysis.Result) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, "Member Design Check")
	pdf.Ln(12)

	m := res.Inputs.Member
	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, fmt.Sprintf("Project: %s", input.Project))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Author: %s", input.Author))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Date: %s", time.Now().Format("2006-01-02")))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Member: %s %s, span %.2f m, storey %d of %d, tributary width %.2f m",
		m.Type, m.Designation, m.LengthM, m.Storey, m.TotalStoreys, m.TributaryWidthM))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Storey line loads (N/m)")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "B", 9)
	for _, hd := range []string{"Storey", "G", "Q", "Qs", "ULS1", "ULS2", "SLS1", "SLS2", "SLS3"} {
		pdf.CellFormat(21, 6, hd, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, rec := range res.StoreyLoads {
		pdf.CellFormat(21, 6, fmt.Sprintf("%d", rec.Storey), "1", 0, "C", false, 0, "")
		for _, v := range []float64{rec.G, rec.Q, rec.Qs, rec.ULS1, rec.ULS2, rec.SLS1, rec.SLS2, rec.SLS3} {
			pdf.CellFormat(21, 6, fmt.Sprintf("%.0f", v), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Force envelopes (Mmax kNm / Vmax kN)")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "B", 9)
	for _, hd := range []string{"Storey", "ULS1", "ULS2", "SLS1", "SLS2", "SLS3"} {
		pdf.CellFormat(31, 6, hd, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)
	pdf.SetFont("Helvetica", "", 9)
	for _, env := range res.Envelopes {
		pdf.CellFormat(31, 6, fmt.Sprintf("%d", env.Storey), "1", 0, "C", false, 0, "")
		for _, c := range []struct{ M, V float64 }{
			{env.ULS1.MmaxKNM, env.ULS1.VmaxKN},
			{env.ULS2.MmaxKNM, env.ULS2.VmaxKN},
			{env.SLS1.MmaxKNM, env.SLS1.VmaxKN},
			{env.SLS2.MmaxKNM, env.SLS2.VmaxKN},
			{env.SLS3.MmaxKNM, env.SLS3.VmaxKN},
		} {
			pdf.CellFormat(31, 6, fmt.Sprintf("%.2f / %.2f", c.M, c.V), "1", 0, "R", false, 0, "")
		}
		pdf.Ln(-1)
	}
	pdf.Ln(6)

	c := res.Checks
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Design checks")
	pdf.Ln(9)
	pdf.SetFont("Helvetica", "", 10)
	pdf.Cell(0, 6, fmt.Sprintf("Bending: %.2f / %.2f kNm, utilization %.2f - %s",
		c.Bending.DemandKNM, c.Bending.CapacityKNM, c.Bending.Utilization, c.Bending.Status))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Shear: %.2f / %.2f kN, utilization %.2f - %s",
		c.Shear.DemandKN, c.Shear.CapacityKN, c.Shear.Utilization, c.Shear.Status))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Deflection: %.2f mm, limit %.2f mm, utilization %.2f - %s",
		c.Deflection.DeflectionMM, c.Deflection.LimitMM, c.Deflection.Utilization, c.Deflection.Status))
	pdf.Ln(6)
	pdf.Cell(0, 6, fmt.Sprintf("Slenderness: L/r = %.1f (r = %.1f mm)",
		c.Slenderness.Ratio, c.Slenderness.RadiusGyrMM))
	pdf.Ln(10)

	overall := designcheck.Pass
	if c.Bending.Status == designcheck.Fail || c.Shear.Status == designcheck.Fail || c.Deflection.Status == designcheck.Fail {
		overall = designcheck.Fail
	}
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Overall: %s", overall))

	return pdf
}
