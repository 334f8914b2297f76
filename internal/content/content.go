// Package content holds the static datasets rendered by the site. The data
// is embedded at build time and never changes while the server runs.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var raw []byte

// ErrNotFound is returned by lookups for ids that are not in the dataset.
var ErrNotFound = errors.New("content: not found")

type Stat struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

type Profile struct {
	Name     string   `yaml:"name"`
	Role     string   `yaml:"role"`
	Tagline  string   `yaml:"tagline"`
	Location string   `yaml:"location"`
	Email    string   `yaml:"email"`
	About    []string `yaml:"about"`
	Stats    []Stat   `yaml:"stats"`
}

// SEO is the page metadata.
type SEO struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

type NavLink struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type SocialLink struct {
	Name string `yaml:"name"`
	Href string `yaml:"href"`
	Icon string `yaml:"icon"`
}

// ExperienceType separates jobs from education.
type ExperienceType string

const (
	Work      ExperienceType = "work"
	Education ExperienceType = "education"
)

type Experience struct {
	ID          string         `yaml:"id"`
	Type        ExperienceType `yaml:"type"`
	Role        string         `yaml:"role"`
	Company     string         `yaml:"company"`
	Location    string         `yaml:"location"`
	Start       string         `yaml:"start"`
	End         string         `yaml:"end"`
	Logo        string         `yaml:"logo"`
	Description string         `yaml:"description"`
	Highlights  []string       `yaml:"highlights"`
}

type Skill struct {
	Name     string `yaml:"name"`
	Icon     string `yaml:"icon"`
	Color    string `yaml:"color"`
	Category string `yaml:"category"`
}

type SkillCategory struct {
	ID    string `yaml:"id"`
	Label string `yaml:"label"`
}

// SkillGroup is a category with its skills in dataset order.
type SkillGroup struct {
	SkillCategory
	Skills []Skill
}

type Project struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Summary     string   `yaml:"summary"`
	Description string   `yaml:"description"`
	Features    []string `yaml:"features"`
	Tech        []string `yaml:"tech"`
	Image       string   `yaml:"image"`
	GitHub      string   `yaml:"github"`
	LiveDemo    string   `yaml:"live_demo"`
	Featured    bool     `yaml:"featured"`
}

// Site is the whole dataset.
type Site struct {
	Profile         Profile         `yaml:"profile"`
	SEO             SEO             `yaml:"seo"`
	Nav             []NavLink       `yaml:"nav"`
	Social          []SocialLink    `yaml:"social"`
	Experience      []Experience    `yaml:"experience"`
	SkillCategories []SkillCategory `yaml:"skill_categories"`
	Skills          []Skill         `yaml:"skills"`
	Projects        []Project       `yaml:"projects"`
}

// Load decodes the embedded dataset.
func Load() (*Site, error) {
	return Parse(raw)
}

// Parse decodes a dataset and checks that referenced ids exist.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}
	if err := site.validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

func (s *Site) validate() error {
	cats := make(map[string]bool, len(s.SkillCategories))
	for _, c := range s.SkillCategories {
		cats[c.ID] = true
	}
	for _, sk := range s.Skills {
		if !cats[sk.Category] {
			return fmt.Errorf("skill %q: unknown category %q", sk.Name, sk.Category)
		}
	}
	for _, e := range s.Experience {
		if e.Type != Work && e.Type != Education {
			return fmt.Errorf("experience %q: unknown type %q", e.ID, e.Type)
		}
	}
	seen := make(map[string]bool, len(s.Projects))
	for _, p := range s.Projects {
		if p.ID == "" || seen[p.ID] {
			return fmt.Errorf("project %q: missing or duplicate id", p.ID)
		}
		seen[p.ID] = true
	}
	return nil
}

// ExperienceOf returns the entries of type t in dataset order.
func (s *Site) ExperienceOf(t ExperienceType) []Experience {
	var out []Experience
	for _, e := range s.Experience {
		if e.Type == t {
			out = append(out, e)
		}
	}
	return out
}

// SkillGroups returns skills grouped by category, in category order.
// Empty categories are dropped.
func (s *Site) SkillGroups() []SkillGroup {
	var groups []SkillGroup
	for _, c := range s.SkillCategories {
		g := SkillGroup{SkillCategory: c}
		for _, sk := range s.Skills {
			if sk.Category == c.ID {
				g.Skills = append(g.Skills, sk)
			}
		}
		if len(g.Skills) > 0 {
			groups = append(groups, g)
		}
	}
	return groups
}

// Project looks up a project by id.
func (s *Site) Project(id string) (Project, error) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, fmt.Errorf("%w: project %q", ErrNotFound, id)
}

// Featured returns the featured projects.
func (s *Site) Featured() []Project {
	var out []Project
	for _, p := range s.Projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Showcase lists featured projects first, then the rest, each in file order.
func (s *Site) Showcase() []Project {
	out := s.Featured()
	for _, p := range s.Projects {
		if !p.Featured {
			out = append(out, p)
		}
	}
	return out
}
