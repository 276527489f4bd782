package templates

import "github.com/visnughosh/portfolio/internal/domain"

// IndexView is the render tree for the index page.
type IndexView struct {
	Meta    domain.Meta
	Bio     BioBlock
	Gallery []ProjectCard
	Data    domain.PageData // loader payload, not displayed by the current layout
}

type BioBlock struct {
	Heading    string
	Subheading string
	Paragraphs []string
	Image      domain.Image
}

type ProjectCard struct {
	ID      string // DOM id derived from the title
	Image   domain.Image
	Caption string
}

// NewIndexView merges the loader payload with the biography and the gallery
// entries. Gallery order follows projects.
func NewIndexView(meta domain.Meta, bio domain.Bio, data domain.PageData, projects []domain.Project) IndexView {
	cards := make([]ProjectCard, 0, len(projects))
	for _, p := range projects {
		cards = append(cards, ProjectCard{
			ID:      cardID(p.Title),
			Image:   domain.Image{Src: p.Image, Alt: p.Title},
			Caption: p.Title,
		})
	}

	return IndexView{
		Meta: meta,
		Bio: BioBlock{
			Heading:    bio.Heading,
			Subheading: bio.Subheading,
			Paragraphs: append([]string(nil), bio.Paragraphs...),
			Image:      bio.Image,
		},
		Gallery: cards,
		Data:    data,
	}
}
