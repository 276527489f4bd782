package domain

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIndexData_Literal(t *testing.T) {
	data, err := LoadIndexData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []ResourceLink{
		{Name: "Remix Docs", URL: "https://remix.run/docs"},
		{Name: "React Router Docs", URL: "https://reactrouter.com/docs"},
		{Name: "Remix Discord", URL: "https://discord.gg/VBePs6d"},
	}, data.Resources)

	assert.Equal(t, []DemoLink{
		{Name: "Actions", To: "demos/actions"},
		{Name: "Nested Routes, CSS loading/unloading", To: "demos/about"},
		{Name: "URL Params and Error Boundaries", To: "demos/params"},
	}, data.Demos)
}

func TestLoadIndexData_Deterministic(t *testing.T) {
	first, err := LoadIndexData(context.Background())
	require.NoError(t, err)

	// Callers mutating their copy must not affect later loads.
	first.Resources[0].Name = "changed"
	first.Demos = first.Demos[:1]

	second, err := LoadIndexData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Remix Docs", second.Resources[0].Name)
	assert.Len(t, second.Demos, 3)

	third, err := LoadIndexData(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second, third)
}

func TestProjects_Order(t *testing.T) {
	got := Projects()
	require.Len(t, got, 3)

	titles := make([]string, len(got))
	for i, p := range got {
		titles[i] = p.Title
		assert.NoError(t, p.Validate())
	}
	assert.Equal(t, []string{"MIO", "BridgeCare", "ABC7 Chicago News"}, titles)
	assert.Equal(t, "/projects/mio.png", got[0].Image)

	got[0].Title = "changed"
	assert.Equal(t, "MIO", Projects()[0].Title)
}

func TestProjects_UniqueTitles(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Projects() {
		assert.False(t, seen[p.Title], "duplicate title %q", p.Title)
		seen[p.Title] = true
	}
}

func TestBiography(t *testing.T) {
	bio := Biography()
	require.NoError(t, bio.Validate())
	assert.Len(t, bio.Paragraphs, 3)
	assert.Equal(t, "/me_profile.png", bio.Image.Src)
	assert.Equal(t, "Visnu Ghosh standing in front of Bay Bridge with dog, Bryn", bio.Image.Alt)
	assert.Equal(t, "Hi there, I’m Visnu!", bio.Subheading)

	bio.Paragraphs[0] = ""
	assert.NoError(t, Biography().Validate())
}

func TestIndexMeta(t *testing.T) {
	meta := IndexMeta()
	assert.Equal(t, "Visnu Ghosh", meta.Title)
	assert.Equal(t, "Visnu Ghosh Experience Designer", meta.Description)
}

func TestValidate_EmptyFields(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"resource without name", ResourceLink{URL: "https://example.com"}.Validate()},
		{"resource without url", ResourceLink{Name: "Docs"}.Validate()},
		{"demo without name", DemoLink{To: "demos/x"}.Validate()},
		{"demo without target", DemoLink{Name: "X"}.Validate()},
		{"project without title", Project{Image: "/p.png"}.Validate()},
		{"project without image", Project{Title: "P"}.Validate()},
		{"image without alt", Image{Src: "/a.png"}.Validate()},
		{"bio without heading", Bio{Subheading: "s", Image: Image{Src: "a", Alt: "b"}}.Validate()},
		{"page data with bad demo", PageData{Demos: []DemoLink{{Name: "X"}}}.Validate()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, ErrEmptyField) {
				t.Errorf("expected ErrEmptyField, got %v", tt.err)
			}
		})
	}
}

func TestLoadIndexData_Validates(t *testing.T) {
	data, err := LoadIndexData(context.Background())
	require.NoError(t, err)
	assert.NoError(t, data.Validate())
}
