package server

import (
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net/http"
	"os"
	"path/filepath"
)

var errResume = errors.New("failed to prepare resume")

func (s *Server) onDownloadResume(w http.ResponseWriter, r *http.Request) {
	if err := s.ensureResume(); err != nil {
		slog.Error("Failed to prepare resume", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to download resume")

		return
	}

	file, errOpen := os.Open(s.conf.ResumePath)
	if errOpen != nil {
		slog.Error("Failed to open resume", slog.String("error", errOpen.Error()))
		writeError(w, http.StatusInternalServerError, "Failed to download resume")

		return
	}
	defer file.Close()

	info, errStat := file.Stat()
	if errStat != nil {
		writeError(w, http.StatusInternalServerError, "Failed to download resume")

		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		mime.FormatMediaType("attachment", map[string]string{"filename": s.portfolio.ResumeFilename()}))

	http.ServeContent(w, r, s.portfolio.ResumeFilename(), info.ModTime(), file)
}

// ensureResume writes a placeholder document when no resume has been uploaded yet.
func (s *Server) ensureResume() error {
	if _, err := os.Stat(s.conf.ResumePath); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return errors.Join(err, errResume)
	}

	if err := os.MkdirAll(filepath.Dir(s.conf.ResumePath), 0o755); err != nil {
		return errors.Join(err, errResume)
	}

	if err := os.WriteFile(s.conf.ResumePath, placeholderPDF(s.portfolio.Profile.Name, s.conf.ResumePath), 0o600); err != nil {
		return errors.Join(err, errResume)
	}

	slog.Info("Created placeholder resume", slog.String("path", s.conf.ResumePath))

	return nil
}

func placeholderPDF(name string, path string) []byte {
	stream := fmt.Sprintf("BT\n/F1 12 Tf\n100 700 Td\n(%s - Resume) Tj\n0 -50 Td\n(Please upload your actual resume PDF to:) Tj\n0 -50 Td\n(%s) Tj\nET",
		pdfEscape(name), pdfEscape(path))

	objects := []string{
		"<<\n/Type /Catalog\n/Pages 2 0 R\n>>",
		"<<\n/Type /Pages\n/Kids [3 0 R]\n/Count 1\n>>",
		"<<\n/Type /Page\n/Parent 2 0 R\n/MediaBox [0 0 612 792]\n/Contents 4 0 R\n/Resources <<\n/Font <<\n/F1 5 0 R\n>>\n>>\n>>",
		fmt.Sprintf("<<\n/Length %d\n>>\nstream\n%s\nendstream", len(stream), stream),
		"<<\n/Type /Font\n/Subtype /Type1\n/BaseFont /Helvetica\n>>",
	}

	body := []byte("%PDF-1.4\n")
	offsets := make([]int, len(objects))

	for idx, object := range objects {
		offsets[idx] = len(body)
		body = fmt.Appendf(body, "%d 0 obj\n%s\nendobj\n", idx+1, object)
	}

	xref := len(body)
	body = fmt.Appendf(body, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)

	for _, offset := range offsets {
		body = fmt.Appendf(body, "%010d 00000 n \n", offset)
	}

	return fmt.Appendf(body, "trailer\n<<\n/Size %d\n/Root 1 0 R\n>>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
}

func pdfEscape(value string) string {
	out := make([]rune, 0, len(value))
	for _, char := range value {
		if char == '(' || char == ')' || char == '\\' {
			out = append(out, '\\')
		}

		out = append(out, char)
	}

	return string(out)
}
