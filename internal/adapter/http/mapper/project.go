package mapper

import (
	"strings"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:         project.ID,
		Identifier: project.Identifier,
		Name:       project.Name,
	}
	if project.Responsible != nil {
		value := *project.Responsible
		item.Responsible = &value
	}
	return item
}

func ToCreateProjectInput(form dto.ProjectForm) domain.CreateProjectInput {
	in := domain.CreateProjectInput{
		Name:       strings.TrimSpace(form.Name),
		Identifier: strings.TrimSpace(form.Identifier),
	}
	if responsible := strings.TrimSpace(form.Responsible); responsible != "" {
		in.Responsible = &responsible
	}
	return in
}
