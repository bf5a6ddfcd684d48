package setting

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) Get() (Setting, error) {
	return s.repo.Get()
}

func (s *Service) Update(f Form, logo, resume *string) (Setting, error) {
	return s.repo.Save(Setting{
		SiteName:     strings.TrimSpace(f.SiteName),
		Tagline:      strings.TrimSpace(f.Tagline),
		Description:  strings.TrimSpace(f.Description),
		Email:        strings.TrimSpace(f.Email),
		Phone:        strings.TrimSpace(f.Phone),
		Location:     strings.TrimSpace(f.Location),
		ResumeURL:    resume,
		Logo:         logo,
		GithubURL:    strings.TrimSpace(f.GithubURL),
		LinkedinURL:  strings.TrimSpace(f.LinkedinURL),
		TwitterURL:   strings.TrimSpace(f.TwitterURL),
		InstagramURL: strings.TrimSpace(f.InstagramURL),
		UpdatedAt:    s.now().UTC().Format(time.RFC3339),
	})
}

func (s *Service) Reset(st Setting) error {
	if st.SiteName == "" {
		st.SiteName = Default().SiteName
	}
	if st.UpdatedAt == "" {
		st.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	}
	_, err := s.repo.Save(st)
	return err
}

// Shared is the "site" prop every page receives.
func (s *Service) Shared(*fiber.Ctx) (any, error) {
	st, err := s.repo.Get()
	if err != nil {
		return nil, err
	}
	return fiber.Map{
		"siteName":    st.SiteName,
		"tagline":     st.Tagline,
		"description": st.Description,
		"email":       st.Email,
		"phone":       st.Phone,
		"location":    st.Location,
		"resumeUrl":   st.ResumeURL,
		"logo":        st.Logo,
		"socials":     st.Socials(),
	}, nil
}
