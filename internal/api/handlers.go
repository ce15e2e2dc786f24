package api

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/tsawler/outliner/format"
	"github.com/tsawler/outliner/layout"
)

func (s *Server) handleOutline(w http.ResponseWriter, r *http.Request) {
	// Limit total request size, with headroom for form overhead.
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes+1024*1024)

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	file, header, err := r.FormFile("file")
	if err != nil {
		jsonError(w, "file is required: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer file.Close()

	filename := filepath.Base(header.Filename)
	if !strings.EqualFold(filepath.Ext(filename), ".pdf") {
		jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
		return
	}

	outputFormat := r.FormValue("format")
	if outputFormat == "" {
		outputFormat = format.FormatJSON
	}
	if !format.Supported(outputFormat) {
		jsonError(w, fmt.Sprintf("unsupported output format: %s", outputFormat), http.StatusBadRequest)
		return
	}

	data, err := io.ReadAll(io.LimitReader(file, s.cfg.MaxUploadBytes+1))
	if err != nil {
		jsonError(w, "failed to read file", http.StatusInternalServerError)
		return
	}
	if int64(len(data)) > s.cfg.MaxUploadBytes {
		jsonError(w, fmt.Sprintf("file exceeds max size (%d bytes)", s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
		return
	}

	doc, err := s.extract(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		s.log.Error("extraction failed", "file", filename, "error", err)
		jsonError(w, "could not extract text from pdf", http.StatusUnprocessableEntity)
		return
	}

	outline := layout.NewAnalyzer().Analyze(doc)
	if outline.Title == "" {
		outline.Title = strings.TrimSuffix(filename, filepath.Ext(filename))
	}

	body, err := format.Render(outline, outputFormat)
	if err != nil {
		jsonError(w, "failed to render outline", http.StatusInternalServerError)
		return
	}

	s.log.Info("outline produced",
		"file", filename,
		"pages", doc.PageCount,
		"entries", outline.EntryCount(),
	)

	w.Header().Set("Content-Type", format.ContentType(outputFormat))
	w.Write(body)
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	fmt.Fprintf(w, `{"error":%q}`, msg)
}
