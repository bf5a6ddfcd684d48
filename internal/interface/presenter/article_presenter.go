package presenter

import (
	"github.com/wichananm65/portfolio-backend/internal/article"
	"github.com/wichananm65/portfolio-backend/internal/markdown"
)

const summaryLength = 180

// ArticlePresenter shapes articles for the public pages.
type ArticlePresenter struct {
	md *markdown.Renderer
}

func NewArticlePresenter(md *markdown.Renderer) *ArticlePresenter {
	return &ArticlePresenter{md: md}
}

type ArticleCard struct {
	ID             int      `json:"id"`
	Title          string   `json:"title"`
	Slug           string   `json:"slug"`
	Summary        string   `json:"summary"`
	CoverImage     *string  `json:"coverImage,omitempty"`
	Tags           []string `json:"tags"`
	PublishedAt    *string  `json:"publishedAt,omitempty"`
	ReadingMinutes int      `json:"readingMinutes"`
}

// ArticleResponse is a card plus the rendered body.
type ArticleResponse struct {
	ArticleCard
	HTML      string `json:"html"`
	UpdatedAt string `json:"updatedAt"`
}

func (p *ArticlePresenter) ToCard(a article.Article) ArticleCard {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return ArticleCard{
		ID:             a.ID,
		Title:          a.Title,
		Slug:           a.Slug,
		Summary:        a.Summary(summaryLength),
		CoverImage:     a.CoverImage,
		Tags:           tags,
		PublishedAt:    a.PublishedAt,
		ReadingMinutes: a.ReadingMinutes(),
	}
}

func (p *ArticlePresenter) ToList(articles []article.Article) []ArticleCard {
	result := make([]ArticleCard, 0, len(articles))
	for _, a := range articles {
		result = append(result, p.ToCard(a))
	}
	return result
}

func (p *ArticlePresenter) ToResponse(a article.Article) (ArticleResponse, error) {
	html, err := p.md.Render(a.Body)
	if err != nil {
		return ArticleResponse{}, err
	}
	return ArticleResponse{ArticleCard: p.ToCard(a), HTML: html, UpdatedAt: a.UpdatedAt}, nil
}
