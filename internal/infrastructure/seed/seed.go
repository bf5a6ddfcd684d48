// Package seed loads portfolio content from a YAML file into the services.
package seed

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/wichananm65/portfolio-backend/internal/article"
	"github.com/wichananm65/portfolio-backend/internal/award"
	"github.com/wichananm65/portfolio-backend/internal/certification"
	"github.com/wichananm65/portfolio-backend/internal/content"
	"github.com/wichananm65/portfolio-backend/internal/education"
	"github.com/wichananm65/portfolio-backend/internal/experience"
	"github.com/wichananm65/portfolio-backend/internal/project"
	"github.com/wichananm65/portfolio-backend/internal/service"
	"github.com/wichananm65/portfolio-backend/internal/setting"
	"github.com/wichananm65/portfolio-backend/internal/testimonial"
)

// Content mirrors the seed file. Keys follow the JSON field names of each
// resource. Sections left out of the file are not touched by Apply.
type Content struct {
	Settings       *setting.Setting              `yaml:"settings"`
	Articles       []article.Article             `yaml:"articles"`
	Awards         []award.Award                 `yaml:"awards"`
	Certifications []certification.Certification `yaml:"certifications"`
	Education      []education.Education         `yaml:"education"`
	Experiences    []experience.Experience       `yaml:"experiences"`
	Services       []service.Service             `yaml:"services"`
	Testimonials   []testimonial.Testimonial     `yaml:"testimonials"`
	Projects       []project.Project             `yaml:"projects"`
}

func Load(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Content, error) {
	var c Content
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.Strict()); err != nil {
		return Content{}, fmt.Errorf("parse seed file: %w", err)
	}
	return c, nil
}

// Apply replaces every section present in c.
func Apply(c Content, s *content.Services) error {
	steps := []struct {
		name  string
		skip  bool
		apply func() error
	}{
		{"settings", c.Settings == nil, func() error { return s.Settings.Reset(*c.Settings) }},
		{"articles", c.Articles == nil, func() error { return s.Articles.Reset(c.Articles) }},
		{"awards", c.Awards == nil, func() error { return s.Awards.Reset(c.Awards) }},
		{"certifications", c.Certifications == nil, func() error { return s.Certifications.Reset(c.Certifications) }},
		{"education", c.Education == nil, func() error { return s.Education.Reset(c.Education) }},
		{"experiences", c.Experiences == nil, func() error { return s.Experiences.Reset(c.Experiences) }},
		{"services", c.Services == nil, func() error { return s.Services.Reset(c.Services) }},
		{"testimonials", c.Testimonials == nil, func() error { return s.Testimonials.Reset(c.Testimonials) }},
		{"projects", c.Projects == nil, func() error { return s.Projects.Reset(c.Projects) }},
	}
	for _, step := range steps {
		if step.skip {
			continue
		}
		if err := step.apply(); err != nil {
			return fmt.Errorf("seed %s: %w", step.name, err)
		}
	}
	return nil
}
