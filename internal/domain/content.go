package domain

import "context"

var indexData = PageData{
	Resources: []ResourceLink{
		{Name: "Remix Docs", URL: "https://remix.run/docs"},
		{Name: "React Router Docs", URL: "https://reactrouter.com/docs"},
		{Name: "Remix Discord", URL: "https://discord.gg/VBePs6d"},
	},
	Demos: []DemoLink{
		{Name: "Actions", To: "demos/actions"},
		{Name: "Nested Routes, CSS loading/unloading", To: "demos/about"},
		{Name: "URL Params and Error Boundaries", To: "demos/params"},
	},
}

var projects = []Project{
	{Image: "/projects/mio.png", Title: "MIO"},
	{Image: "/projects/bridgecare.png", Title: "BridgeCare"},
	{Image: "/projects/abc7.png", Title: "ABC7 Chicago News"},
}

var biography = Bio{
	Heading:    "People, puzzles, and problem solving excite me. I’m delighted to have found my place in UX.",
	Subheading: "Hi there, I’m Visnu!",
	Paragraphs: []string{
		"I’m an experience designer with a background in data analysis and business strategy. My passion is solving complex problems and helping people accomplish what is important to them.",
		"I love UX because it encompasses many of the things that I’m passionate about and experienced with such as product strategy, data analysis, user research, psychology, and storytelling. I know how to leverage data to create simple and effective designs. I keep business needs in mind while being an advocate for the humans that I’m designing for. Accessibility and inclusion are always top of mind in my design approach.",
		"Outside of UX, I am obsessed with dogs, plants, and travel. On a rainy day, you will find me crafting or learning to DJ.",
	},
	Image: Image{
		Src: "/me_profile.png",
		Alt: "Visnu Ghosh standing in front of Bay Bridge with dog, Bryn",
	},
}

// LoadIndexData returns the index page loader payload. It never fails; the
// error is part of the loader signature so a real backend can replace it.
func LoadIndexData(_ context.Context) (PageData, error) {
	return PageData{
		Resources: append([]ResourceLink(nil), indexData.Resources...),
		Demos:     append([]DemoLink(nil), indexData.Demos...),
	}, nil
}

// Projects returns the gallery entries in display order.
func Projects() []Project {
	return append([]Project(nil), projects...)
}

func Biography() Bio {
	b := biography
	b.Paragraphs = append([]string(nil), biography.Paragraphs...)
	return b
}

func IndexMeta() Meta {
	return Meta{
		Title:       "Visnu Ghosh",
		Description: "Visnu Ghosh Experience Designer",
	}
}
