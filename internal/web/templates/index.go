package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/visnughosh/portfolio/internal/domain"
)

// StylesheetPath is where the page expects its stylesheet to be served.
const StylesheetPath = "/static/style.css"

// Layout wraps body in the HTML document shell.
func Layout(meta domain.Meta, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		hw.raw("<meta charset=\"utf-8\">\n")
		hw.raw("<meta name=\"viewport\" content=\"width=device-width,initial-scale=1\">\n")
		hw.element("title", "", meta.Title)
		hw.raw("\n<meta name=\"description\"")
		hw.attr("content", meta.Description)
		hw.raw(">\n<link rel=\"stylesheet\"")
		hw.attr("href", StylesheetPath)
		hw.raw(">\n</head>\n<body>\n")
		if hw.err != nil {
			return hw.err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		hw.raw("\n</body>\n</html>\n")
		return hw.err
	})
}

// IndexPage renders the complete index document.
func IndexPage(view IndexView) templ.Component {
	return Layout(view.Meta, IndexBody(view))
}

// IndexBody renders the page content without the document shell. It is also
// the fragment returned to HTMX requests.
func IndexBody(view IndexView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<div class=\"remix__page\">\n")
		if hw.err != nil {
			return hw.err
		}
		if err := Biography(view.Bio).Render(ctx, w); err != nil {
			return err
		}
		if err := Gallery(view.Gallery).Render(ctx, w); err != nil {
			return err
		}
		hw.raw("</div>")
		return hw.err
	})
}

func Biography(bio BioBlock) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<section class=\"bio\">\n<main>\n")
		hw.element("h2", "", bio.Heading)
		hw.raw("\n")
		hw.element("h4", "", bio.Subheading)
		hw.raw("\n")
		for _, p := range bio.Paragraphs {
			hw.element("p", "", p)
			hw.raw("\n")
		}
		hw.raw("</main>\n<img")
		hw.attr("alt", bio.Image.Alt)
		hw.attr("class", "profilePicture")
		hw.attr("src", bio.Image.Src)
		hw.raw(">\n</section>\n")
		return hw.err
	})
}

// Gallery renders the project cards side by side, in the given order.
func Gallery(cards []ProjectCard) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		hw := &htmlWriter{w: w}
		hw.raw("<section class=\"gallery\">\n<ul class=\"projects\">\n")
		for _, c := range cards {
			hw.raw("<li")
			hw.attr("class", "project")
			hw.attr("id", c.ID)
			hw.raw("><figure><img")
			hw.attr("alt", c.Image.Alt)
			hw.attr("src", c.Image.Src)
			hw.raw(">")
			hw.element("figcaption", "", c.Caption)
			hw.raw("</figure></li>\n")
		}
		hw.raw("</ul>\n</section>\n")
		return hw.err
	})
}
