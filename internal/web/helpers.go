package web

import (
	"context"
	"fmt"

	"github.com/visnughosh/portfolio/internal/domain"
	"github.com/visnughosh/portfolio/internal/web/templates"
)

// buildIndexView calls the loader once and merges it with the gallery.
func buildIndexView(ctx context.Context) (templates.IndexView, error) {
	data, err := domain.LoadIndexData(ctx)
	if err != nil {
		return templates.IndexView{}, fmt.Errorf("load index data: %w", err)
	}
	return templates.NewIndexView(domain.IndexMeta(), domain.Biography(), data, domain.Projects()), nil
}
