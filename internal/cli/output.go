package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/visnughosh/portfolio/internal/web"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	fileStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
)

func renderExportReport(dir string, m *web.Manifest) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Exported "+dir) + "\n")
	b.WriteString(mutedStyle.Render("build "+m.BuildID) + "\n")
	for _, f := range m.Files {
		b.WriteString("  " + fileStyle.Render(filepath.ToSlash(filepath.Join(dir, f))) + "\n")
	}
	b.WriteString(mutedStyle.Render(fmt.Sprintf("%d files", len(m.Files))) + "\n")
	return b.String()
}

// listenPort returns the ":port" part of addr for display.
func listenPort(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[i:]
	}
	return ":" + addr
}
