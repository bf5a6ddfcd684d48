package presenter

import (
	"github.com/wichananm65/portfolio-backend/internal/markdown"
	"github.com/wichananm65/portfolio-backend/internal/project"
)

// ProjectPresenter renders project descriptions, which accept markdown.
type ProjectPresenter struct {
	md *markdown.Renderer
}

func NewProjectPresenter(md *markdown.Renderer) *ProjectPresenter {
	return &ProjectPresenter{md: md}
}

type ProjectResponse struct {
	project.Project
	DescriptionHTML string `json:"descriptionHtml"`
}

func (p *ProjectPresenter) ToResponse(pr project.Project) (ProjectResponse, error) {
	if pr.TechStack == nil {
		pr.TechStack = []string{}
	}
	html, err := p.md.Render(pr.Description)
	if err != nil {
		return ProjectResponse{}, err
	}
	return ProjectResponse{Project: pr, DescriptionHTML: html}, nil
}

func (p *ProjectPresenter) ToList(projects []project.Project) ([]ProjectResponse, error) {
	result := make([]ProjectResponse, 0, len(projects))
	for _, pr := range projects {
		resp, err := p.ToResponse(pr)
		if err != nil {
			return nil, err
		}
		result = append(result, resp)
	}
	return result, nil
}
