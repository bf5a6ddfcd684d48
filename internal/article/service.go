package article

import (
	"sort"
	"strings"
	"time"

	"github.com/wichananm65/portfolio-backend/internal/listing"
	"github.com/wichananm65/portfolio-backend/internal/slug"
)

// PerPage is the page size of the public article list.
const PerPage = 9

// Status filters of the admin list.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// List returns matching articles, newest first. status narrows to published
// or draft articles when set.
func (s *Service) List(search, status string) ([]Article, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	out := listing.Filter(all, func(a Article) bool {
		switch status {
		case StatusPublished:
			if !a.Published {
				return false
			}
		case StatusDraft:
			if a.Published {
				return false
			}
		}
		return listing.Match(search, append([]string{a.Title, a.Excerpt, a.Body}, a.Tags...)...)
	})
	sortNewest(out)
	return out, nil
}

// Published returns one page of public articles filtered by search and tag.
func (s *Service) Published(search, tag string, page int) (listing.Page[Article], error) {
	list, err := s.List(search, StatusPublished)
	if err != nil {
		return listing.Page[Article]{}, err
	}
	if tag = strings.TrimSpace(tag); tag != "" {
		list = listing.Filter(list, func(a Article) bool { return listing.HasTag(a.Tags, tag) })
	}
	return listing.Paginate(list, page, PerPage), nil
}

// Latest returns the n most recently published articles.
func (s *Service) Latest(n int) ([]Article, error) {
	list, err := s.List("", StatusPublished)
	if err != nil {
		return nil, err
	}
	if len(list) > n {
		list = list[:n]
	}
	return list, nil
}

// RecentlyUpdated returns the n articles edited last, drafts included.
func (s *Service) RecentlyUpdated(n int) ([]Article, error) {
	all, err := s.repo.List()
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return all[i].UpdatedAt > all[j].UpdatedAt })
	if len(all) > n {
		all = all[:n]
	}
	return all, nil
}

// Tags is the tag cloud of published articles.
func (s *Service) Tags() ([]listing.TagCount, error) {
	list, err := s.List("", StatusPublished)
	if err != nil {
		return nil, err
	}
	tags := make([][]string, len(list))
	for i, a := range list {
		tags[i] = a.Tags
	}
	return listing.Cloud(tags...), nil
}

func (s *Service) GetByID(id int) (Article, error) {
	return s.repo.GetByID(id)
}

// PublishedBySlug hides drafts behind ErrNotFound.
func (s *Service) PublishedBySlug(slug string) (Article, error) {
	a, err := s.repo.GetBySlug(slug)
	if err != nil {
		return Article{}, err
	}
	if !a.Published {
		return Article{}, ErrNotFound
	}
	return a, nil
}

// CheckSlug returns ErrSlugTaken when an explicitly chosen slug belongs to
// another article.
func (s *Service) CheckSlug(requested string, exceptID int) error {
	requested = slug.Make(requested)
	if requested != "" && s.slugTaken(requested, exceptID) {
		return ErrSlugTaken
	}
	return nil
}

func (s *Service) Create(f Form, cover *string) (Article, error) {
	now := s.now().UTC()
	a := fromForm(f, cover, now)
	resolved, err := s.resolveSlug(f, 0)
	if err != nil {
		return Article{}, err
	}
	a.Slug = resolved
	a.CreatedAt = now.Format(time.RFC3339)
	a.UpdatedAt = a.CreatedAt
	return s.repo.Create(a)
}

func (s *Service) Update(id int, f Form, cover *string) (Article, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Article{}, err
	}
	now := s.now().UTC()
	if f.Published && f.PublishedAt == "" && existing.PublishedAt != nil {
		f.PublishedAt = *existing.PublishedAt
	}
	a := fromForm(f, cover, now)
	resolved, err := s.resolveSlug(f, id)
	if err != nil {
		return Article{}, err
	}
	a.Slug = resolved
	a.CreatedAt = existing.CreatedAt
	a.UpdatedAt = now.Format(time.RFC3339)
	return s.repo.Update(id, a)
}

func (s *Service) Delete(id int) (Article, error) {
	existing, err := s.repo.GetByID(id)
	if err != nil {
		return Article{}, err
	}
	if err := s.repo.Delete(id); err != nil {
		return Article{}, err
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

func (s *Service) Reset(items []Article) error {
	now := s.now().UTC()
	stamp := now.Format(time.RFC3339)
	taken := map[string]bool{}
	for i := range items {
		base := slug.Make(items[i].Slug)
		if base == "" {
			base = slug.Make(items[i].Title)
		}
		items[i].Slug = slug.Unique(base, func(c string) bool { return taken[c] })
		taken[items[i].Slug] = true
		items[i].Tags = listing.Tags(items[i].Tags)
		if items[i].Published && items[i].PublishedAt == nil {
			items[i].PublishedAt = &stamp
		}
		if items[i].CreatedAt == "" {
			items[i].CreatedAt = stamp
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
	a, err := s.repo.GetBySlug(candidate)
	if err != nil {
		return false
	}
	return a.ID != exceptID
}

func sortNewest(items []Article) {
	key := func(a Article) string {
		if a.PublishedAt != nil {
			return *a.PublishedAt
		}
		return a.CreatedAt
	}
	sort.SliceStable(items, func(i, j int) bool {
		ki, kj := key(items[i]), key(items[j])
		if ki != kj {
			return ki > kj
		}
		return items[i].ID > items[j].ID
	})
}

// fromForm stamps publishedAt with now when an article is published
// without a date. Drafts carry no publish date.
func fromForm(f Form, cover *string, now time.Time) Article {
	a := Article{
		Title:      strings.TrimSpace(f.Title),
		Excerpt:    strings.TrimSpace(f.Excerpt),
		Body:       f.Body,
		CoverImage: cover,
		Tags:       listing.Tags(f.Tags),
		Published:  f.Published,
	}
	if f.Published {
		at := f.PublishedAt
		if at == "" {
			at = now.Format(time.RFC3339)
		} else if t, err := time.Parse(time.RFC3339, at); err == nil {
			at = t.UTC().Format(time.RFC3339)
		}
		a.PublishedAt = &at
	}
	return a
}
