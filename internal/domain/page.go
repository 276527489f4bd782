package domain

import (
	"errors"
	"fmt"
)

// ErrEmptyField is returned when a content record carries an empty field.
var ErrEmptyField = errors.New("empty field")

// ResourceLink points at an external resource.
type ResourceLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

func (l ResourceLink) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("resource link name: %w", ErrEmptyField)
	}
	if l.URL == "" {
		return fmt.Errorf("resource link %q url: %w", l.Name, ErrEmptyField)
	}
	return nil
}

// DemoLink points at a page relative to the site root.
type DemoLink struct {
	Name string `json:"name"`
	To   string `json:"to"`
}

func (l DemoLink) Validate() error {
	if l.Name == "" {
		return fmt.Errorf("demo link name: %w", ErrEmptyField)
	}
	if l.To == "" {
		return fmt.Errorf("demo link %q target: %w", l.Name, ErrEmptyField)
	}
	return nil
}

// PageData is the loader payload for the index page.
type PageData struct {
	Resources []ResourceLink `json:"resources"`
	Demos     []DemoLink     `json:"demos"`
}

func (d PageData) Validate() error {
	for _, r := range d.Resources {
		if err := r.Validate(); err != nil {
			return err
		}
	}
	for _, dl := range d.Demos {
		if err := dl.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Meta holds the document head values.
type Meta struct {
	Title       string
	Description string
}

type Image struct {
	Src string
	Alt string
}

func (i Image) Validate() error {
	if i.Src == "" {
		return fmt.Errorf("image src: %w", ErrEmptyField)
	}
	if i.Alt == "" {
		return fmt.Errorf("image %q alt: %w", i.Src, ErrEmptyField)
	}
	return nil
}

// Bio is the biography block shown above the gallery.
type Bio struct {
	Heading    string
	Subheading string
	Paragraphs []string
	Image      Image
}

func (b Bio) Validate() error {
	if b.Heading == "" {
		return fmt.Errorf("bio heading: %w", ErrEmptyField)
	}
	if b.Subheading == "" {
		return fmt.Errorf("bio subheading: %w", ErrEmptyField)
	}
	for i, p := range b.Paragraphs {
		if p == "" {
			return fmt.Errorf("bio paragraph %d: %w", i, ErrEmptyField)
		}
	}
	return b.Image.Validate()
}
