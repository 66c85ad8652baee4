// Package report renders a solved batch as a printable batch sheet.
package report

import (
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"

	"github.com/verskrino-zhy/geopolymer-alkali-activator-calculate/internal/activator"
)

// BuildMarkdown lays out one solved batch as a markdown batch sheet: inputs,
// the three component masses to weigh out, the process verification block,
// and the usage notes.
func BuildMarkdown(in activator.Inputs, res activator.Results) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Alkali Activator Batch Sheet\n\n")

	fmt.Fprintf(&b, "## Base Parameters\n\n")
	fmt.Fprintf(&b, "- Solid precursor mass: %s g\n", activator.FormatMass(in.SolidMass))
	fmt.Fprintf(&b, "- Silicate solution SiO2 fraction: %s %%\n", activator.FormatPercent(in.SilicaFraction))
	fmt.Fprintf(&b, "- Silicate solution Na2O fraction: %s %%\n\n", activator.FormatPercent(in.SodaFraction))

	fmt.Fprintf(&b, "## Target Parameters\n\n")
	fmt.Fprintf(&b, "- Alkali modulus: %s\n", activator.FormatRatio(in.TargetModulus))
	fmt.Fprintf(&b, "- Alkali-equivalent ratio: %s\n", activator.FormatRatio(in.TargetAlkali))
	fmt.Fprintf(&b, "- Solid/liquid ratio: %s\n\n", activator.FormatRatio(in.TargetSolidLiquid))

	fmt.Fprintf(&b, "## Key Results\n\n")
	fmt.Fprintf(&b, "| Quantity | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| Silicate solution to add | %s g |\n", activator.FormatMass(res.SilicateMass))
	fmt.Fprintf(&b, "| Sodium hydroxide to add | %s g |\n", activator.FormatMass(res.HydroxideMass))
	fmt.Fprintf(&b, "| Water to add | %s g |\n", activator.FormatMass(res.WaterMass))
	fmt.Fprintf(&b, "| Alkali modulus (back-calculated) | %s |\n", activator.FormatRatio(res.ModulusBack))
	fmt.Fprintf(&b, "| Alkali-equivalent ratio (back-calculated) | %s |\n", activator.FormatRatio(res.FinalAlkali))
	fmt.Fprintf(&b, "| Solid/liquid ratio (back-calculated) | %s |\n\n", activator.FormatRatio(res.SolidLiquidBack))

	fmt.Fprintf(&b, "## Process Results\n\n")
	fmt.Fprintf(&b, "| Quantity | Value |\n|---|---|\n")
	fmt.Fprintf(&b, "| New liquid SiO2 fraction | %s %% |\n", activator.FormatPercent(res.SilicaFractionNew))
	fmt.Fprintf(&b, "| New liquid Na2O fraction | %s %% |\n", activator.FormatPercent(res.SodaFractionNew))
	fmt.Fprintf(&b, "| New liquid density | %s g/cm3 |\n", activator.FormatDensity(res.LiquidDensity))
	fmt.Fprintf(&b, "| New liquid mass | %s g |\n", activator.FormatMass(res.LiquidMass))
	fmt.Fprintf(&b, "| Silicate modulus (verification) | %s |\n", activator.FormatRatio(res.SilicateModulus))
	fmt.Fprintf(&b, "| SiO2 mass in silicate | %s g |\n", activator.FormatMass(res.SilicaInSilicate))
	fmt.Fprintf(&b, "| Na2O mass in silicate | %s g |\n", activator.FormatMass(res.SodaInSilicate))
	fmt.Fprintf(&b, "| Na2O equivalent from NaOH | %s g |\n", activator.FormatMass(res.SodaFromHydroxide))
	fmt.Fprintf(&b, "| Initial alkali-equivalent ratio | %s |\n\n", activator.FormatRatio(res.InitialAlkali))

	fmt.Fprintf(&b, "## Notes\n\n")
	fmt.Fprintf(&b, "1. Solid precursor mass is the total mass of the solid geopolymer raw material, e.g. fly ash or coal gangue.\n")
	fmt.Fprintf(&b, "2. New liquid density is the density of the combined silicate and NaOH liquid.\n")
	fmt.Fprintf(&b, "3. The verification silicate modulus is recomputed from the entered composition as a cross-check.\n")
	fmt.Fprintf(&b, "4. The alkali-equivalent ratio excludes liquid mass from its denominator.\n")
	fmt.Fprintf(&b, "5. The alkali modulus is n(SiO2)/n(Na2O) of the final system.\n")
	fmt.Fprintf(&b, "6. The solid/liquid ratio divides solid mass by all liquid: silicate + NaOH + added water.\n")
	return b.String()
}

const styleCSS = `
body { font-family: -apple-system, "Segoe UI", sans-serif; color: #0f172a; margin: 2rem auto; max-width: 820px; line-height: 1.5; }
h1 { border-bottom: 2px solid #0ea5e9; padding-bottom: 0.3rem; }
table { width: 100%; border-collapse: collapse; font-size: 0.9rem; margin-bottom: 1rem; }
th, td { border: 1px solid #cbd5e1; padding: 0.35rem 0.5rem; text-align: left; }
thead th { background: #f1f5f9; font-weight: 700; }
`

// RenderHTML converts the markdown batch sheet into a standalone HTML
// document with the print stylesheet inlined.
func RenderHTML(markdown string) (string, error) {
	var content strings.Builder
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))
	if err := md.Convert([]byte(markdown), &content); err != nil {
		return "", fmt.Errorf("markdown convert: %w", err)
	}
	return "<!doctype html><html><head><meta charset='utf-8'><title>Batch Sheet</title>" +
		"<style>" + styleCSS + "</style></head><body>" +
		content.String() +
		"</body></html>", nil
}
