// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/labelstack/internal/inspect"
	"github.com/pdiddy/labelstack/internal/stack"
)

// errorDTO is the JSON error body returned to the UI.
type errorDTO struct {
	Error  string `json:"error"`
	Detail string `json:"detail,omitempty"`
}

func (s *Server) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(indexHTML))
}

// handleStack accepts a multipart upload (field "pdf" plus optional "page",
// "gap", and "box" fields), runs the duplicator exactly once, and responds
// with the composed PDF as an attachment.
func (s *Server) handleStack(w http.ResponseWriter, r *http.Request) {
	jobID := uuid.NewString()
	w.Header().Set("X-Stack-Job", jobID)
	logger := s.logger.With().Str("job_id", jobID).Logger()
	start := time.Now()

	pdfBytes, name, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	opts, err := optionsFromForm(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid form value", err)
		return
	}

	out, err := stack.Duplicate(pdfBytes, opts)
	if err != nil {
		logger.Warn().Err(err).Str("file", name).Msg("stack failed")
		s.writeError(w, statusForStackError(err), "stacking failed", err)
		return
	}

	logger.Info().
		Str("file", name).
		Int("input_bytes", len(pdfBytes)).
		Int("output_bytes", len(out)).
		Int("page", opts.Page).
		Float64("gap_in", opts.GapInches).
		Dur("elapsed", time.Since(start)).
		Msg("stacked")

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", outputName(name, opts.GapInches)))
	w.Write(out)
}

// handleInspect accepts a multipart upload and returns the page geometry
// report as JSON. The upload form calls it to populate the page selector.
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	pdfBytes, _, ok := s.readUpload(w, r)
	if !ok {
		return
	}

	info, err := inspect.Report(pdfBytes)
	if err != nil {
		s.writeError(w, statusForStackError(err), "inspection failed", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(info)
}

// readUpload reads the "pdf" form file, enforcing the configured size cap.
// On failure it writes the error response and returns ok=false.
func (s *Server) readUpload(w http.ResponseWriter, r *http.Request) (data []byte, name string, ok bool) {
	r.Body = http.MaxBytesReader(w, r.Body, s.maxUploadBytes())

	f, hdr, err := r.FormFile("pdf")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "upload too large", err)
			return nil, "", false
		}
		s.writeError(w, http.StatusBadRequest, "missing PDF upload", err)
		return nil, "", false
	}
	defer f.Close()

	data, err = io.ReadAll(f)
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			s.writeError(w, http.StatusRequestEntityTooLarge, "upload too large", err)
			return nil, "", false
		}
		s.writeError(w, http.StatusInternalServerError, "reading upload", err)
		return nil, "", false
	}
	return data, hdr.Filename, true
}

// optionsFromForm parses the optional page, gap, and box fields. Absent
// fields fall back to the standard defaults; range checking is left to the
// duplicator so the UI surfaces the same errors as the CLI.
func optionsFromForm(r *http.Request) (stack.Options, error) {
	opts := stack.DefaultOptions()

	if v := r.FormValue("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil {
			return opts, fmt.Errorf("page %q: %w", v, err)
		}
		opts.Page = page
	}
	if v := r.FormValue("gap"); v != "" {
		gap, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return opts, fmt.Errorf("gap %q: %w", v, err)
		}
		opts.GapInches = gap
	}
	switch r.FormValue("box") {
	case "", "mediabox":
	case "cropbox":
		opts.UseCropBox = true
	default:
		return opts, fmt.Errorf("box %q: want mediabox or cropbox", r.FormValue("box"))
	}
	return opts, nil
}

// statusForStackError maps the duplicator's error taxonomy onto HTTP status
// codes: bad client data is 400, everything else 500.
func statusForStackError(err error) int {
	switch {
	case errors.Is(err, stack.ErrInvalidInput),
		errors.Is(err, stack.ErrPageOutOfRange),
		errors.Is(err, stack.ErrInvalidGap):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// outputName derives the download filename from the uploaded one,
// e.g. "label.pdf" with a 0.12 in gap becomes "label_stacked_gap_0.12in.pdf".
func outputName(uploaded string, gapInches float64) string {
	base := filepath.Base(uploaded)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if base == "" || base == "." {
		base = "output"
	}
	return fmt.Sprintf("%s_stacked_gap_%.2fin.pdf", base, gapInches)
}

func (s *Server) writeError(w http.ResponseWriter, status int, msg string, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	dto := errorDTO{Error: msg}
	if err != nil {
		dto.Detail = err.Error()
	}
	json.NewEncoder(w).Encode(dto)
}
