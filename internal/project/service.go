package project

import (
	"sort"
	"strings"
	"time"

	"github.com/wichananm65/portfolio-backend/internal/listing"
	"github.com/wichananm65/portfolio-backend/internal/slug"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns matching projects, featured first then newest year.
func (s *Service) List(search string) ([]Project, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	out := listing.Filter(all, func(p Project) bool {
		return listing.Match(search, append([]string{p.Title, p.Description}, p.TechStack...)...)
	})
	sortProjects(out)
	return out, nil
}

// Public returns the projects using tech (any when empty).
func (s *Service) Public(tech string) ([]Project, error) {
	all, err := s.List("")
	if err != nil {
		return nil, err
	}
	if tech = strings.TrimSpace(tech); tech == "" {
		return all, nil
	}
	return listing.Filter(all, func(p Project) bool { return listing.HasTag(p.TechStack, tech) }), nil
}

// Featured returns at most limit featured projects.
func (s *Service) Featured(limit int) ([]Project, error) {
	all, err := s.List("")
	if err != nil {
		return nil, err
	}
	out := listing.Filter(all, func(p Project) bool { return p.Featured })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Technologies is the tag cloud over every project's tech stack.
func (s *Service) Technologies() ([]listing.TagCount, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	stacks := make([][]string, len(all))
	for i, p := range all {
		stacks[i] = p.TechStack
	}
	return listing.Cloud(stacks...), nil
}

func (s *Service) GetByID(id int) (Project, error) {
	return s.repo.GetByID(id)
}

func (s *Service) GetBySlug(slug string) (Project, error) {
	return s.repo.GetBySlug(slug)
}

// CheckSlug returns ErrSlugTaken when an explicitly chosen slug belongs to
// another project. Derived slugs never conflict, they get a numeric suffix.
func (s *Service) CheckSlug(requested string, exceptID int) error {
	requested = slug.Make(requested)
	if requested == "" {
		return nil
	}
	if s.slugTaken(requested, exceptID) {
		return ErrSlugTaken
	}
	return nil
}

func (s *Service) Create(f Form, image *string) (Project, error) {
	p := fromForm(f, image)
	resolved, err := s.resolveSlug(f, 0)
	if err != nil {
		return Project{}, err
	}
	p.Slug = resolved

	now := s.now().UTC().Format(time.RFC3339)
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.repo.Create(p)
}

func (s *Service) Update(id int, f Form, image *string) (Project, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Project{}, err
	}
	p := fromForm(f, image)
	resolved, err := s.resolveSlug(f, id)
	if err != nil {
		return Project{}, err
	}
	p.Slug = resolved
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now().UTC().Format(time.RFC3339)
	return s.repo.Update(id, p)
}

func (s *Service) Delete(id int) (Project, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Project{}, err
	}
	if err := s.repo.Delete(id); err != nil {
		return Project{}, err
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

func (s *Service) Reset(items []Project) error {
	now := s.now().UTC().Format(time.RFC3339)
	taken := map[string]bool{}
	for i := range items {
		base := slug.Make(items[i].Slug)
		if base == "" {
			base = slug.Make(items[i].Title)
		}
		items[i].Slug = slug.Unique(base, func(c string) bool { return taken[c] })
		taken[items[i].Slug] = true
		items[i].TechStack = listing.Tags(items[i].TechStack)
		if items[i].CreatedAt == "" {
			items[i].CreatedAt = now
		}
		if items[i].UpdatedAt == "" {
			items[i].UpdatedAt = items[i].CreatedAt
		}
	}
	return s.repo.Reset(items)
}

func (s *Service) resolveSlug(f Form, exceptID int) (string, error) {
	if requested := slug.Make(f.Slug); requested != "" {
		if s.slugTaken(requested, exceptID) {
			return "", ErrSlugTaken
		}
		return requested, nil
	}
	return slug.Unique(slug.Make(f.Title), func(c string) bool { return s.slugTaken(c, exceptID) }), nil
}

func (s *Service) slugTaken(candidate string, exceptID int) bool {
	p, err := s.repo.GetBySlug(candidate)
	if err != nil {
		return false
	}
	return p.ID != exceptID
}

func sortProjects(items []Project) {
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Featured != items[j].Featured {
			return items[i].Featured
		}
		if items[i].Year != items[j].Year {
			return items[i].Year > items[j].Year
		}
		return items[i].ID > items[j].ID
	})
}

func fromForm(f Form, image *string) Project {
	p := Project{
		Title:       strings.TrimSpace(f.Title),
		Description: strings.TrimSpace(f.Description),
		TechStack:   listing.Tags(f.TechStack),
		Image:       image,
		Year:        f.Year,
		Featured:    f.Featured,
	}
	if u := strings.TrimSpace(f.GithubURL); u != "" {
		p.GithubURL = &u
	}
	if u := strings.TrimSpace(f.LiveURL); u != "" {
		p.LiveURL = &u
	}
	return p
}
