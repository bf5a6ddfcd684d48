// Package listing holds the search and pagination helpers shared by index pages.
package listing

import (
	"sort"
	"strings"
)

// Match reports whether every whitespace separated term of query occurs,
// case-insensitively, in at least one of fields. An empty query matches.
func Match(query string, fields ...string) bool {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return true
	}
	haystack := strings.ToLower(strings.Join(fields, "\x00"))
	for _, term := range terms {
		if !strings.Contains(haystack, term) {
			return false
		}
	}
	return true
}

// Filter keeps the items for which keep returns true.
func Filter[T any](items []T, keep func(T) bool) []T {
	out := make([]T, 0, len(items))
	for _, item := range items {
		if keep(item) {
			out = append(out, item)
		}
	}
	return out
}

// Tags splits comma separated values, trims them and drops empty and
// case-insensitive duplicates, keeping the first spelling.
func Tags(values []string) []string {
	out := make([]string, 0, len(values))
	seen := map[string]bool{}
	for _, v := range values {
		for _, tag := range strings.Split(v, ",") {
			tag = strings.TrimSpace(tag)
			key := strings.ToLower(tag)
			if tag == "" || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, tag)
		}
	}
	return out
}

// HasTag reports whether tags contains tag, ignoring case.
func HasTag(tags []string, tag string) bool {
	for _, t := range tags {
		if strings.EqualFold(t, tag) {
			return true
		}
	}
	return false
}

// TagCount is one entry of a tag cloud.
type TagCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Cloud counts tag usage, most used first then alphabetically.
func Cloud(lists ...[]string) []TagCount {
	counts := map[string]*TagCount{}
	order := make([]*TagCount, 0)
	for _, tags := range lists {
		for _, tag := range tags {
			key := strings.ToLower(tag)
			tc, ok := counts[key]
			if !ok {
				tc = &TagCount{Name: tag}
				counts[key] = tc
				order = append(order, tc)
			}
			tc.Count++
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		if order[i].Count != order[j].Count {
			return order[i].Count > order[j].Count
		}
		return strings.ToLower(order[i].Name) < strings.ToLower(order[j].Name)
	})
	out := make([]TagCount, len(order))
	for i, tc := range order {
		out[i] = *tc
	}
	return out
}

// Page is one slice of a longer list plus the numbers a paginator needs.
type Page[T any] struct {
	Data        []T  `json:"data"`
	CurrentPage int  `json:"currentPage"`
	LastPage    int  `json:"lastPage"`
	PerPage     int  `json:"perPage"`
	Total       int  `json:"total"`
	HasMore     bool `json:"hasMore"`
}

// Paginate returns page number page (1-based) of items. Out of range pages
// are clamped.
func Paginate[T any](items []T, page, perPage int) Page[T] {
	if perPage <= 0 {
		perPage = 10
	}
	total := len(items)
	last := (total + perPage - 1) / perPage
	if last == 0 {
		last = 1
	}
	if page < 1 {
		page = 1
	}
	if page > last {
		page = last
	}

	start := (page - 1) * perPage
	end := start + perPage
	if end > total {
		end = total
	}

	data := make([]T, end-start)
	copy(data, items[start:end])
	return Page[T]{
		Data:        data,
		CurrentPage: page,
		LastPage:    last,
		PerPage:     perPage,
		Total:       total,
		HasMore:     page < last,
	}
}
