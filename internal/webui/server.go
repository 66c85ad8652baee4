// Package webui serves the calculator form and its JSON/export endpoints.
package webui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/verskrino-zhy/geopolymer-alkali-activator-calculate/internal/activator"
	"github.com/verskrino-zhy/geopolymer-alkali-activator-calculate/internal/export"
	"github.com/verskrino-zhy/geopolymer-alkali-activator-calculate/internal/report"
)

// pdfRenderer lets tests swap out the headless-Chrome dependency.
type pdfRenderer interface {
	Render(ctx context.Context, htmlDoc string) ([]byte, error)
}

type Server struct {
	pdf pdfRenderer
}

func NewServer() http.Handler {
	return newServer(report.NewPDFRenderer())
}

func newServer(pdf pdfRenderer) http.Handler {
	s := &Server{pdf: pdf}
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/v1/solve", s.handleSolve)
	mux.HandleFunc("/v1/export", s.handleExport)
	mux.HandleFunc("/v1/report", s.handleReport)
	mux.HandleFunc("/v1/report.pdf", s.handleReportPDF)
	mux.HandleFunc("/v1/health", s.handleHealth)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// writeCoreError maps the core's two error tiers onto HTTP: collected
// validation violations are a 400, a single infeasibility reason is a 422.
func writeCoreError(w http.ResponseWriter, err error) {
	var verr *activator.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok": false,
			"error": map[string]any{
				"tier":       "validation",
				"violations": verr.Violations,
				"message":    verr.Error(),
			},
		})
		return
	}
	var ierr *activator.InfeasibleError
	if errors.As(err, &ierr) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"ok": false,
			"error": map[string]any{
				"tier":    "infeasible",
				"reason":  ierr.Reason,
				"message": ierr.Message,
			},
		})
		return
	}
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"ok":    false,
		"error": map[string]any{"tier": "internal", "message": err.Error()},
	})
}

func methodOnly(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return false
	}
	return true
}

func rawFromValues(values url.Values) activator.RawFields {
	return activator.RawFields{
		SolidMass:         values.Get("solid_mass"),
		SilicaFraction:    values.Get("silica_fraction"),
		SodaFraction:      values.Get("soda_fraction"),
		TargetModulus:     values.Get("target_modulus"),
		TargetAlkali:      values.Get("target_alkali"),
		TargetSolidLiquid: values.Get("target_solid_liquid"),
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(pageHTML))
}

func (s *Server) handleSolve(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodPost) {
		return
	}
	var req struct {
		SolidMass         string `json:"solid_mass"`
		SilicaFraction    string `json:"silica_fraction"`
		SodaFraction      string `json:"soda_fraction"`
		TargetModulus     string `json:"target_modulus"`
		TargetAlkali      string `json:"target_alkali"`
		TargetSolidLiquid string `json:"target_solid_liquid"`
	}
	blob, err := io.ReadAll(r.Body)
	if err != nil {
		writeCoreError(w, fmt.Errorf("read body: %w", err))
		return
	}
	if len(blob) == 0 {
		blob = []byte("{}")
	}
	if err := json.Unmarshal(blob, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok":    false,
			"error": map[string]any{"tier": "validation", "message": "invalid json: " + err.Error()},
		})
		return
	}

	in, err := activator.Validate(activator.RawFields{
		SolidMass:         req.SolidMass,
		SilicaFraction:    req.SilicaFraction,
		SodaFraction:      req.SodaFraction,
		TargetModulus:     req.TargetModulus,
		TargetAlkali:      req.TargetAlkali,
		TargetSolidLiquid: req.TargetSolidLiquid,
	})
	if err != nil {
		writeCoreError(w, err)
		return
	}
	res, err := activator.Solve(in)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"ok": true,
		"key": map[string]string{
			"silicate_mass":     activator.FormatMass(res.SilicateMass),
			"hydroxide_mass":    activator.FormatMass(res.HydroxideMass),
			"water_mass":        activator.FormatMass(res.WaterMass),
			"modulus_back":      activator.FormatRatio(res.ModulusBack),
			"final_alkali":      activator.FormatRatio(res.FinalAlkali),
			"solid_liquid_back": activator.FormatRatio(res.SolidLiquidBack),
		},
		"process": map[string]string{
			"silica_fraction_new": activator.FormatPercent(res.SilicaFractionNew),
			"soda_fraction_new":   activator.FormatPercent(res.SodaFractionNew),
			"liquid_density":      activator.FormatDensity(res.LiquidDensity),
			"liquid_mass":         activator.FormatMass(res.LiquidMass),
			"silicate_modulus":    activator.FormatRatio(res.SilicateModulus),
			"silica_in_silicate":  activator.FormatMass(res.SilicaInSilicate),
			"soda_in_silicate":    activator.FormatMass(res.SodaInSilicate),
			"soda_from_hydroxide": activator.FormatMass(res.SodaFromHydroxide),
			"initial_alkali":      activator.FormatRatio(res.InitialAlkali),
		},
	})
}

// solveFromQuery validates and solves straight from URL query parameters,
// shared by the export and report endpoints.
func solveFromQuery(r *http.Request) (activator.Inputs, activator.Results, error) {
	in, err := activator.Validate(rawFromValues(r.URL.Query()))
	if err != nil {
		return activator.Inputs{}, activator.Results{}, err
	}
	res, err := activator.Solve(in)
	if err != nil {
		return activator.Inputs{}, activator.Results{}, err
	}
	return in, res, nil
}

func writeExportFailure(w http.ResponseWriter, err error) {
	// Export I/O failures are a category of their own and do not invalidate
	// the computed results.
	writeJSON(w, http.StatusInternalServerError, map[string]any{
		"ok":    false,
		"error": map[string]any{"tier": "export", "message": "export failed: " + err.Error()},
	})
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	in, res, err := solveFromQuery(r)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	tab := export.BuildTable(in, res)

	switch format := r.URL.Query().Get("format"); format {
	case "", "csv":
		w.Header().Set("Content-Type", "text/csv; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="batch-sheet.csv"`)
		if err := export.WriteCSV(tab, w); err != nil {
			writeExportFailure(w, err)
		}
	case "xlsx":
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", `attachment; filename="batch-sheet.xlsx"`)
		if err := export.WriteExcel(tab, w); err != nil {
			writeExportFailure(w, err)
		}
	case "sqlite":
		// The sqlite driver needs a file path, so stage the database in a
		// temp file and stream it back.
		dir, err := os.MkdirTemp("", "batch-sheet-")
		if err != nil {
			writeExportFailure(w, err)
			return
		}
		defer os.RemoveAll(dir)
		path := filepath.Join(dir, "batch-sheet.sqlite")
		if err := export.WriteSQLite(tab, path); err != nil {
			writeExportFailure(w, err)
			return
		}
		blob, err := os.ReadFile(path)
		if err != nil {
			writeExportFailure(w, err)
			return
		}
		w.Header().Set("Content-Type", "application/vnd.sqlite3")
		w.Header().Set("Content-Disposition", `attachment; filename="batch-sheet.sqlite"`)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(blob)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"ok":    false,
			"error": map[string]any{"tier": "validation", "message": "unknown export format: " + format},
		})
	}
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	in, res, err := solveFromQuery(r)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	htmlDoc, err := report.RenderHTML(report.BuildMarkdown(in, res))
	if err != nil {
		writeExportFailure(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(htmlDoc))
}

func (s *Server) handleReportPDF(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	in, res, err := solveFromQuery(r)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	htmlDoc, err := report.RenderHTML(report.BuildMarkdown(in, res))
	if err != nil {
		writeExportFailure(w, err)
		return
	}
	pdf, err := s.pdf.Render(r.Context(), htmlDoc)
	if err != nil {
		writeExportFailure(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="batch-sheet.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if !methodOnly(w, r, http.MethodGet) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}
