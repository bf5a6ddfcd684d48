// Package content assembles the resource services over a single storage backend.
package content

import (
	"database/sql"

	"github.com/wichananm65/portfolio-backend/internal/article"
	"github.com/wichananm65/portfolio-backend/internal/award"
	"github.com/wichananm65/portfolio-backend/internal/certification"
	"github.com/wichananm65/portfolio-backend/internal/education"
	"github.com/wichananm65/portfolio-backend/internal/experience"
	"github.com/wichananm65/portfolio-backend/internal/project"
	"github.com/wichananm65/portfolio-backend/internal/service"
	"github.com/wichananm65/portfolio-backend/internal/setting"
	"github.com/wichananm65/portfolio-backend/internal/testimonial"
	"github.com/wichananm65/portfolio-backend/internal/user"
)

type Services struct {
	Articles       *article.Service
	Awards         *award.Service
	Certifications *certification.Service
	Education      *education.Service
	Experiences    *experience.Service
	Services       *service.Manager
	Testimonials   *testimonial.Service
	Projects       *project.Service
	Settings       *setting.Service
	Users          *user.Service
}

// NewMemory keeps everything in process memory. Data is lost on restart.
func NewMemory() *Services {
	return &Services{
		Articles:       article.NewService(article.NewInMemoryRepository(nil)),
		Awards:         award.NewService(award.NewInMemoryRepository(nil)),
		Certifications: certification.NewService(certification.NewInMemoryRepository(nil)),
		Education:      education.NewService(education.NewInMemoryRepository(nil)),
		Experiences:    experience.NewService(experience.NewInMemoryRepository(nil)),
		Services:       service.NewManager(service.NewInMemoryRepository(nil)),
		Testimonials:   testimonial.NewService(testimonial.NewInMemoryRepository(nil)),
		Projects:       project.NewService(project.NewInMemoryRepository(nil)),
		Settings:       setting.NewService(setting.NewInMemoryRepository(nil)),
		Users:          user.NewService(user.NewInMemoryRepository(nil)),
	}
}

// NewPostgres backs every service with its Postgres repository.
func NewPostgres(db *sql.DB) *Services {
	return &Services{
		Articles:       article.NewService(article.NewPostgresRepository(db)),
		Awards:         award.NewService(award.NewPostgresRepository(db)),
		Certifications: certification.NewService(certification.NewPostgresRepository(db)),
		Education:      education.NewService(education.NewPostgresRepository(db)),
		Experiences:    experience.NewService(experience.NewPostgresRepository(db)),
		Services:       service.NewManager(service.NewPostgresRepository(db)),
		Testimonials:   testimonial.NewService(testimonial.NewPostgresRepository(db)),
		Projects:       project.NewService(project.NewPostgresRepository(db)),
		Settings:       setting.NewService(setting.NewPostgresRepository(db)),
		Users:          user.NewService(user.NewPostgresRepository(db)),
	}
}

// Counts is the number of records per resource, keyed by route name.
type Counts map[string]int

// Count tallies every listable resource.
func (s *Services) Count() (Counts, error) {
	counters := []struct {
		name  string
		count func() (int, error)
	}{
		{"articles", s.Articles.Count},
		{"awards", s.Awards.Count},
		{"certifications", s.Certifications.Count},
		{"education", s.Education.Count},
		{"experiences", s.Experiences.Count},
		{"services", s.Services.Count},
		{"testimonials", s.Testimonials.Count},
		{"projects", s.Projects.Count},
	}
	out := Counts{}
	for _, c := range counters {
		n, err := c.count()
		if err != nil {
			return nil, err
		}
		out[c.name] = n
	}
	return out, nil
}

// Empty reports whether no portfolio content has been stored yet.
func (s *Services) Empty() (bool, error) {
	counts, err := s.Count()
	if err != nil {
		return false, err
	}
	for _, n := range counts {
		if n > 0 {
			return false, nil
		}
	}
	return true, nil
}
