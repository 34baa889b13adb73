package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/stwalsh4118/groundwork/api/internal/models"
)

// renderAnalysis prints a development potential result as a set of
// human-readable tables.
func renderAnalysis(w io.Writer, p *models.DevelopmentPotential) {
	fmt.Fprintf(w, "Zone %s — %s\n\n", p.ZoneCode.Normalized(), p.ZoneName)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Check", "Result"})
	t.AppendRow(table.Row{"Meets minimum requirements", yesNo(p.MeetsMinimumRequirements)})
	for _, v := range p.Violations {
		t.AppendRow(table.Row{"Violation", v})
	}
	for _, wrn := range p.Warnings {
		t.AppendRow(table.Row{"Warning", wrn})
	}
	t.Render()
	fmt.Fprintln(w)

	t = table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Yard", "Requirement"})
	appendSetbackRow(t, "Front yard", p.Setbacks.FrontYard)
	appendSetbackRow(t, "Rear yard", p.Setbacks.RearYard)
	appendSetbackRow(t, "Interior side", p.Setbacks.InteriorSide)
	appendSetbackRow(t, "Flankage yard", p.Setbacks.FlankageYard)
	if p.Setbacks.GarageInteriorSide != nil {
		t.AppendRow(table.Row{
			"Garage interior side",
			fmt.Sprintf("%.1f m (%s)", *p.Setbacks.GarageInteriorSide, p.Setbacks.GarageAppliesTo),
		})
	}
	t.Render()
	fmt.Fprintln(w)

	t = table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Limit", "Value"})
	appendFloatRow(t, "Buildable area", p.Buildable.Area, "m²")
	if p.Buildable.Note != "" {
		t.AppendRow(table.Row{"Buildable note", p.Buildable.Note})
	}
	if p.MaxCoveragePercent != nil {
		t.AppendRow(table.Row{"Max lot coverage", fmt.Sprintf("%.0f%%", *p.MaxCoveragePercent)})
	}
	appendFloatRow(t, "Max coverage area", p.MaxCoverageArea, "m²")
	if p.MaxFloorAreaRatio != nil {
		t.AppendRow(table.Row{"Max floor-area ratio", fmt.Sprintf("%.2f", *p.MaxFloorAreaRatio)})
	}
	appendFloatRow(t, "Max floor area", p.MaxFloorArea, "m²")
	appendFloatRow(t, "Max height", p.MaxHeight, "m")
	if p.MaxStoreys != nil {
		t.AppendRow(table.Row{"Max storeys", fmt.Sprintf("%d", *p.MaxStoreys)})
	}
	appendFloatRow(t, "Max building depth", p.MaxBuildingDepth, "m")
	t.AppendRow(table.Row{
		"Unit estimate",
		fmt.Sprintf("%d (advisory; %s)", p.Units.Count, p.Units.Basis),
	})
	t.Render()

	if a := p.FinalAnalysis; a != nil {
		fmt.Fprintln(w)
		t = table.NewWriter()
		t.SetOutputMirror(w)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Final buildable", "Value"})
		t.AppendRow(table.Row{"Method", string(a.Method)})
		t.AppendRow(table.Row{"Max floors", fmt.Sprintf("%d", a.MaxFloors)})
		appendFloatRow(t, "Gross floor area", a.GrossFloorAreaSqFt, "sq ft")
		t.AppendRow(table.Row{"Deduction", fmt.Sprintf("%.0f sq ft", a.DeductionSqFt)})
		appendFloatRow(t, "Final buildable", a.FinalBuildableSqFt, "sq ft")
		t.AppendRow(table.Row{"Confidence", string(a.Confidence)})
		if a.Note != "" {
			t.AppendRow(table.Row{"Note", a.Note})
		}
		t.Render()
	}
}

// renderZones prints the zone catalog as a table.
func renderZones(w io.Writer, zones []models.ZoneInfo) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Code", "Name", "Category", "Typical lot", "Permitted uses"})
	for _, z := range zones {
		uses := make([]string, 0, len(z.PermittedUses))
		for _, u := range z.PermittedUses {
			uses = append(uses, strings.TrimSuffix(string(u), "_dwelling"))
		}
		t.AppendRow(table.Row{z.Code, z.Name, string(z.Category), z.TypicalLotSize, strings.Join(uses, ", ")})
	}
	t.Render()
	fmt.Fprintf(w, "(%d zones)\n", len(zones))
}

func appendSetbackRow(t table.Writer, label string, s *models.Setback) {
	if s == nil {
		return
	}
	t.AppendRow(table.Row{label, formatSetback(*s)})
}

func appendFloatRow(t table.Writer, label string, v *float64, unit string) {
	if v == nil {
		return
	}
	t.AppendRow(table.Row{label, fmt.Sprintf("%.1f %s", *v, unit)})
}

func formatSetback(s models.Setback) string {
	switch s.Kind() {
	case models.SetbackFixed:
		v, _ := s.Fixed()
		return fmt.Sprintf("%.1f m", v)
	case models.SetbackMinMax:
		min, max, _ := s.MinMax()
		return fmt.Sprintf("%.1f m (reducible to %.1f m)", min, max)
	case models.SetbackRequiresSurvey:
		return "requires survey of existing buildings"
	default:
		return "n/a"
	}
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
