package certification

import (
	"sort"
	"strings"
	"time"

	"github.com/wichananm65/portfolio-backend/internal/listing"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns certifications matching search, newest first.
func (s *Service) List(search string) ([]Certification, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	out := listing.Filter(all, func(c Certification) bool {
		return listing.Match(search, c.Name, c.Issuer, c.CredentialID)
	})
	sort.SliceStable(out, func(i, j int) bool { return out[i].IssueDate > out[j].IssueDate })
	return out, nil
}

// Active returns the certifications that have not expired yet.
func (s *Service) Active() ([]Certification, error) {
	all, err := s.List("")
	if err != nil {
		return nil, err
	}
	today := s.now().UTC().Format("2006-01-02")
	return listing.Filter(all, func(c Certification) bool { return !c.Expired(today) }), nil
}

func (s *Service) GetByID(id int) (Certification, error) {
	return s.repo.GetByID(id)
}

func (s *Service) Create(f Form, image *string) (Certification, error) {
	now := s.now().UTC().Format(time.RFC3339)
	c := fromForm(f, image)
	c.CreatedAt = now
	c.UpdatedAt = now
	return s.repo.Create(c)
}

func (s *Service) Update(id int, f Form, image *string) (Certification, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Certification{}, err
	}
	c := fromForm(f, image)
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, c)
}

func (s *Service) Delete(id int) (Certification, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Certification{}, err
	}
	if err := s.repo.Delete(id); err != nil {
		return Certification{}, err
	}
	return existing, nil
}

func (s *Service) Count() (int, error) {
	all, err := s.repo.List()
	if err != nil {
		return 0, err
	}
	return len(all), nil
}

func (s *Service) Reset(certs []Certification) error {
	now := s.now().UTC().Format(time.RFC3339)
	for i := range certs {
		if certs[i].CreatedAt == "" {
			certs[i].CreatedAt = now
		}
		if certs[i].UpdatedAt == "" {
			certs[i].UpdatedAt = certs[i].CreatedAt
		}
	}
	return s.repo.Reset(certs)
}

func fromForm(f Form, image *string) Certification {
	c := Certification{
		Name:         strings.TrimSpace(f.Name),
		Issuer:       strings.TrimSpace(f.Issuer),
		IssueDate:    f.IssueDate,
		CredentialID: strings.TrimSpace(f.CredentialID),
		Image:        image,
	}
	if f.ExpiryDate != "" {
		expiry := f.ExpiryDate
		c.ExpiryDate = &expiry
	}
	if u := strings.TrimSpace(f.CredentialURL); u != "" {
		c.CredentialURL = &u
	}
	return c
}
