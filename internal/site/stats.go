package site

import "github.com/wichananm65/portfolio-backend/internal/content"

// Stats feeds the count-up widget on the home page.
type Stats struct {
	YearsOfExperience int `json:"yearsOfExperience"`
	Projects          int `json:"projects"`
	Clients           int `json:"clients"`
	Achievements      int `json:"achievements"`
}

func collectStats(s *content.Services) (Stats, error) {
	var st Stats
	var err error
	if st.YearsOfExperience, err = s.Experiences.YearsOfExperience(); err != nil {
		return Stats{}, err
	}
	if st.Projects, err = s.Projects.Count(); err != nil {
		return Stats{}, err
	}
	if st.Clients, err = s.Testimonials.Clients(); err != nil {
		return Stats{}, err
	}
	awards, err := s.Awards.Count()
	if err != nil {
		return Stats{}, err
	}
	certs, err := s.Certifications.Count()
	if err != nil {
		return Stats{}, err
	}
	st.Achievements = awards + certs
	return st, nil
}
