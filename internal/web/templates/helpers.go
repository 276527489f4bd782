package templates

import (
	"io"
	"strings"
	"unicode"

	"github.com/a-h/templ"
)

func cardID(title string) string {
	var b strings.Builder
	b.WriteString("project-")
	dash := false
	for _, r := range strings.ToLower(title) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > len("project-") {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

// htmlWriter keeps the first write error so components can emit markup
// without checking every call.
type htmlWriter struct {
	w   io.Writer
	err error
}

func (hw *htmlWriter) raw(s string) {
	if hw.err != nil {
		return
	}
	_, hw.err = io.WriteString(hw.w, s)
}

func (hw *htmlWriter) text(s string) {
	hw.raw(templ.EscapeString(s))
}

func (hw *htmlWriter) attr(name, value string) {
	hw.raw(" " + name + `="`)
	hw.text(value)
	hw.raw(`"`)
}

func (hw *htmlWriter) element(tag, class, content string) {
	hw.raw("<" + tag)
	if class != "" {
		hw.attr("class", class)
	}
	hw.raw(">")
	hw.text(content)
	hw.raw("</" + tag + ">")
}
