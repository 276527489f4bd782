package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"net/http"
	"path"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/visnughosh/portfolio/internal/domain"
	"github.com/visnughosh/portfolio/internal/ports"
	"github.com/visnughosh/portfolio/internal/shared/middleware"
	"github.com/visnughosh/portfolio/internal/web/templates"
)

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	view, err := buildIndexView(ctx)
	if err != nil {
		s.logger.Error("build index view", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	fragment := middleware.IsHTMX(r)
	component := templates.IndexPage(view)
	if fragment {
		component = templates.IndexBody(view)
	}

	// Render into a buffer so a failed render still gets a clean 500.
	var buf bytes.Buffer
	if err := component.Render(ctx, &buf); err != nil {
		s.logger.Error("render index", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())

	pv := ports.PageView{Path: r.URL.Path, Fragment: fragment, RenderTime: time.Since(start)}
	if err := s.recorder.RecordPageView(ctx, pv); err != nil {
		s.logger.Warn("record page view", zap.Error(err))
	}
}

func (s *Server) handleAPIIndex(w http.ResponseWriter, r *http.Request) {
	data, err := domain.LoadIndexData(r.Context())
	if err != nil {
		s.logger.Error("load index data", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Warn("encode index data", zap.Error(err))
	}
}

// handleAsset serves files from the public directory without directory listings.
func (s *Server) handleAsset(w http.ResponseWriter, r *http.Request) {
	if s.opts.PublicDir == "" || strings.HasSuffix(r.URL.Path, "/") {
		http.NotFound(w, r)
		return
	}

	name := path.Clean("/" + r.URL.Path)
	f, err := http.Dir(s.opts.PublicDir).Open(name)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("open asset", zap.String("path", name), zap.Error(err))
		}
		http.NotFound(w, r)
		return
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil || info.IsDir() {
		http.NotFound(w, r)
		return
	}
	http.ServeContent(w, r, info.Name(), info.ModTime(), f)
}
