package web

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/visnughosh/portfolio/internal/web/templates"
)

const manifestVersion = 1

// Manifest describes one static export.
type Manifest struct {
	Version     int            `json:"version"`
	BuildID     string         `json:"buildId"`
	GeneratedAt time.Time      `json:"generatedAt"`
	Pages       []ManifestPage `json:"pages"`
	Files       []string       `json:"files"`
}

type ManifestPage struct {
	Path  string `json:"path"`
	File  string `json:"file"`
	Data  string `json:"data"`
	Title string `json:"title"`
}

// Export renders the site into dir so it can be served by any static host.
// Images from the public directory are not copied.
func Export(ctx context.Context, dir string) (*Manifest, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output directory %s: %w", dir, err)
	}

	view, err := buildIndexView(ctx)
	if err != nil {
		return nil, err
	}

	manifest := &Manifest{
		Version:     manifestVersion,
		BuildID:     uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Pages: []ManifestPage{
			{Path: "/", File: "index.html", Data: "index.json", Title: view.Meta.Title},
		},
	}

	var page bytes.Buffer
	if err := templates.IndexPage(view).Render(ctx, &page); err != nil {
		return nil, fmt.Errorf("render index: %w", err)
	}
	if err := writeFile(dir, "index.html", page.Bytes(), manifest); err != nil {
		return nil, err
	}

	data, err := json.MarshalIndent(view.Data, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode index data: %w", err)
	}
	if err := writeFile(dir, "index.json", append(data, '\n'), manifest); err != nil {
		return nil, err
	}

	if err := exportStatic(dir, manifest); err != nil {
		return nil, err
	}

	manifest.Files = append(manifest.Files, "manifest.json")
	raw, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode manifest: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "manifest.json"), append(raw, '\n'), 0o644); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	return manifest, nil
}

func exportStatic(dir string, manifest *Manifest) error {
	return fs.WalkDir(staticFiles, "static", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		content, err := staticFiles.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read embedded %s: %w", path, err)
		}
		return writeFile(dir, path, content, manifest)
	})
}

func writeFile(dir, name string, content []byte, manifest *Manifest) error {
	target := filepath.Join(dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return fmt.Errorf("create directory for %s: %w", name, err)
	}
	if err := os.WriteFile(target, content, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	manifest.Files = append(manifest.Files, name)
	return nil
}

