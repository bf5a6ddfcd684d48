package article

import (
	"strings"
	"unicode/utf8"
)

// Article is a markdown blog post. Only published articles are public.
type Article struct {
	ID          int      `json:"id"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Body        string   `json:"body"`
	CoverImage  *string  `json:"coverImage,omitempty"`
	Tags        []string `json:"tags"`
	Published   bool     `json:"published"`
	PublishedAt *string  `json:"publishedAt,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

const wordsPerMinute = 200

// ReadingMinutes estimates the reading time of the body, at least one minute.
func (a Article) ReadingMinutes() int {
	words := len(strings.Fields(a.Body))
	minutes := (words + wordsPerMinute - 1) / wordsPerMinute
	if minutes < 1 {
		return 1
	}
	return minutes
}

// Summary returns the excerpt, or the start of the body when there is none.
func (a Article) Summary(max int) string {
	if a.Excerpt != "" {
		return a.Excerpt
	}
	text := strings.Join(strings.Fields(stripMarkdown(a.Body)), " ")
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	cut := strings.TrimSpace(string(runes[:max]))
	if i := strings.LastIndex(cut, " "); i > max/2 {
		cut = cut[:i]
	}
	return cut + "…"
}

func stripMarkdown(s string) string {
	return strings.NewReplacer("#", "", "*", "", "_", "", "`", "", ">", "", "[", "", "]", "").Replace(s)
}

type Form struct {
	Title            string   `json:"title" form:"title" validate:"required,max=255"`
	Slug             string   `json:"slug" form:"slug" validate:"omitempty,max=255"`
	Excerpt          string   `json:"excerpt" form:"excerpt" validate:"max=500"`
	Body             string   `json:"body" form:"body" validate:"required"`
	CoverImage       string   `json:"coverImage" form:"coverImage" validate:"omitempty,max=2048"`
	Tags             []string `json:"tags" form:"tags" validate:"max=20,dive,max=50"`
	Published        bool     `json:"published" form:"published"`
	PublishedAt      string   `json:"publishedAt" form:"publishedAt" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	RemoveCoverImage bool     `json:"removeCoverImage" form:"removeCoverImage"`
}
