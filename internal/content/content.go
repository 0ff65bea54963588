// Package content loads the landing page copy from the embedded YAML file.
package content

import (
	_ "embed"
	"errors"
	"fmt"

	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

var Module = fx.Module("content",
	fx.Provide(Load),
)

//go:embed content.yaml
var siteYAML []byte

type Site struct {
	Brand        string       `yaml:"brand"`
	Title        string       `yaml:"title"`
	Description  string       `yaml:"description"`
	Tagline      string       `yaml:"tagline"`
	Nav          []Link       `yaml:"nav"`
	Hero         Hero         `yaml:"hero"`
	Features     Features     `yaml:"features"`
	Steps        Steps        `yaml:"steps"`
	Testimonials Testimonials `yaml:"testimonials"`
	Pricing      Pricing      `yaml:"pricing"`
	CTA          CTA          `yaml:"cta"`
	Contact      Contact      `yaml:"contact"`
	Footer       Footer       `yaml:"footer"`
}

type Link struct {
	Label string `yaml:"label"`
	Href  string `yaml:"href"`
}

type Hero struct {
	Headline  string `yaml:"headline"`
	Body      string `yaml:"body"`
	Primary   string `yaml:"primary"`
	Secondary Link   `yaml:"secondary"`
}

type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

type Features struct {
	Heading string    `yaml:"heading"`
	Items   []Feature `yaml:"items"`
}

type Steps struct {
	Heading string   `yaml:"heading"`
	Items   []string `yaml:"items"`
}

type Testimonial struct {
	ID      string `yaml:"id"`
	Author  string `yaml:"author"`
	Content string `yaml:"content"`
}

type Testimonials struct {
	Heading string        `yaml:"heading"`
	Items   []Testimonial `yaml:"items"`
}

type Plan struct {
	Name        string `yaml:"name"`
	Price       string `yaml:"price"`
	Description string `yaml:"description"`
	CTA         string `yaml:"cta"`
	Featured    bool   `yaml:"featured"`
}

type Pricing struct {
	Heading string `yaml:"heading"`
	Plans   []Plan `yaml:"plans"`
}

type CTA struct {
	Heading string `yaml:"heading"`
	Button  string `yaml:"button"`
}

type Contact struct {
	Heading string `yaml:"heading"`
	Body    string `yaml:"body"`
	Submit  string `yaml:"submit"`
}

type Footer struct {
	Legal []string `yaml:"legal"`
}

var (
	ErrMissingTestimonialID   = errors.New("testimonial id is empty")
	ErrDuplicateTestimonialID = errors.New("duplicate testimonial id")
)

// Load parses the embedded site copy.
func Load() (*Site, error) {
	return Parse(siteYAML)
}

// Parse decodes and validates site copy.
func Parse(data []byte) (*Site, error) {
	var site Site
	if err := yaml.Unmarshal(data, &site); err != nil {
		return nil, fmt.Errorf("failed to parse site content: %w", err)
	}
	if err := site.Validate(); err != nil {
		return nil, err
	}
	return &site, nil
}

// Validate checks the invariants the carousel relies on: every testimonial
// has an id and no two share one.
func (s *Site) Validate() error {
	seen := make(map[string]struct{}, len(s.Testimonials.Items))
	for i, t := range s.Testimonials.Items {
		if t.ID == "" {
			return fmt.Errorf("testimonial %d: %w", i, ErrMissingTestimonialID)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("testimonial %q: %w", t.ID, ErrDuplicateTestimonialID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}
