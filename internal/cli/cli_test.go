package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/visnughosh/portfolio/internal/adapters/otel"
	"github.com/visnughosh/portfolio/internal/infrastructure/config"
)

func TestExportCommand(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "site")
	t.Cleanup(func() { exportOut = "" })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"export", "--out", dir})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export: %v", err)
	}

	for _, name := range []string{"index.html", "index.json", "manifest.json", filepath.Join("static", "style.css")} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("expected %s: %v", name, err)
		}
	}
	if !strings.Contains(out.String(), "4 files") {
		t.Errorf("unexpected report %q", out.String())
	}
}

func TestApplyServeFlags(t *testing.T) {
	t.Cleanup(func() { servePort, servePublicDir = 0, "" })

	tests := []struct {
		name      string
		port      int
		public    string
		wantAddr  string
		wantPublc string
	}{
		{"no flags", 0, "", ":8080", "public"},
		{"port", 3000, "", ":3000", "public"},
		{"public dir", 0, "assets", ":8080", "assets"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			servePort, servePublicDir = tt.port, tt.public
			cfg := &config.Server{Addr: ":8080", PublicDir: "public"}
			applyServeFlags(cfg)
			if cfg.Addr != tt.wantAddr || cfg.PublicDir != tt.wantPublc {
				t.Errorf("got %+v", cfg)
			}
		})
	}
}

func TestListenPort(t *testing.T) {
	tests := map[string]string{
		":8080":          ":8080",
		"127.0.0.1:3000": ":3000",
		"9000":           ":9000",
	}
	for addr, want := range tests {
		if got := listenPort(addr); got != want {
			t.Errorf("listenPort(%q) = %q, want %q", addr, got, want)
		}
	}
}

func TestNewAppContext_NoOpRecorder(t *testing.T) {
	tests := []struct {
		name string
		cfg  otel.Config
	}{
		{"disabled", otel.Config{}},
		{"enabled without endpoint", otel.Config{Enabled: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := NewAppContext(context.Background(), &config.Server{OTEL: tt.cfg}, zap.NewNop())
			if _, ok := app.Recorder.(*otel.NoOpRecorder); !ok {
				t.Errorf("expected no-op recorder, got %T", app.Recorder)
			}
			if err := app.Close(context.Background()); err != nil {
				t.Errorf("Close: %v", err)
			}
		})
	}
}

func TestAppContextClose_NilRecorder(t *testing.T) {
	a := &AppContext{}
	if err := a.Close(context.Background()); err != nil {
		t.Errorf("Close() with nil recorder should not error, got: %v", err)
	}
}
