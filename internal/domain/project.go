package domain

import "fmt"

// Project is a gallery entry. Title is unique within the gallery.
type Project struct {
	Image string
	Title string
}

func (p Project) Validate() error {
	if p.Title == "" {
		return fmt.Errorf("project title: %w", ErrEmptyField)
	}
	if p.Image == "" {
		return fmt.Errorf("project %q image: %w", p.Title, ErrEmptyField)
	}
	return nil
}
