// Package content holds the static educational text shown beside the plan
// form. None of it depends on user input.
package content

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed exercises.yaml
var exercisesYAML []byte

// Section is one title/description blurb.
type Section struct {
	Title       string `yaml:"title"       json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Page is the full static content table.
type Page struct {
	Heading       string    `yaml:"heading"        json:"heading"`
	SectionsTitle string    `yaml:"sections_title" json:"sections_title"`
	MealTip       string    `yaml:"meal_tip"       json:"meal_tip"`
	Sections      []Section `yaml:"sections"       json:"sections"`
}

var load = sync.OnceValues(func() (Page, error) {
	return Parse(exercisesYAML)
})

// Load returns the embedded content. The YAML is decoded once; callers get
// their own copy of the section slice.
func Load() (Page, error) {
	p, err := load()
	if err != nil {
		return Page{}, err
	}
	p.Sections = append([]Section(nil), p.Sections...)
	return p, nil
}

// Parse decodes a content table and checks every section is filled in.
func Parse(b []byte) (Page, error) {
	var p Page
	if err := yaml.Unmarshal(b, &p); err != nil {
		return Page{}, fmt.Errorf("content: decode: %w", err)
	}
	if len(p.Sections) == 0 {
		return Page{}, fmt.Errorf("content: no sections")
	}
	for i, s := range p.Sections {
		if s.Title == "" || s.Description == "" {
			return Page{}, fmt.Errorf("content: section %d is missing a title or description", i+1)
		}
	}
	return p, nil
}
