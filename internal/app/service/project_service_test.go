package service

import (
	"context"
	"testing"

	"tasktracker/internal/core/domain"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_CreateProject_TrimsAndCreates(t *testing.T) {
	projects := new(projectRepoMock)
	svc := NewProjectService(projects, new(taskRepoMock))

	projects.On("Create", mock.Anything, domain.CreateProjectInput{Name: "Sample", Identifier: "SP"}).
		Return(domain.Project{ID: 1, Identifier: "SP", Name: "Sample"}, nil).Once()

	project, err := svc.CreateProject(context.Background(), domain.CreateProjectInput{
		Name:       "  Sample ",
		Identifier: " SP ",
	})
	require.NoError(t, err)
	require.Equal(t, int64(1), project.ID)
	projects.AssertExpectations(t)
}

func TestProjectService_CreateProject_RequiresNameAndIdentifier(t *testing.T) {
	svc := NewProjectService(new(projectRepoMock), new(taskRepoMock))

	_, err := svc.CreateProject(context.Background(), domain.CreateProjectInput{Name: "Sample"})
	require.ErrorIs(t, err, domain.ErrMissingArgument)

	_, err = svc.CreateProject(context.Background(), domain.CreateProjectInput{Identifier: "SP"})
	require.ErrorIs(t, err, domain.ErrMissingArgument)
}

func TestProjectService_CreateProject_DuplicateIdentifierPassesThrough(t *testing.T) {
	projects := new(projectRepoMock)
	svc := NewProjectService(projects, new(taskRepoMock))

	projects.On("Create", mock.Anything, mock.Anything).
		Return(domain.Project{}, domain.ErrDuplicateIdentifier).Once()

	_, err := svc.CreateProject(context.Background(), domain.CreateProjectInput{Name: "Sample", Identifier: "SP"})
	require.ErrorIs(t, err, domain.ErrDuplicateIdentifier)
}

func TestProjectService_GetProject_ReturnsProjectAndTasks(t *testing.T) {
	projects := new(projectRepoMock)
	tasks := new(taskRepoMock)
	svc := NewProjectService(projects, tasks)

	projects.On("Get", mock.Anything, int64(1)).
		Return(domain.Project{ID: 1, Identifier: "SP", Name: "Sample"}, nil).Once()
	tasks.On("ListByProject", mock.Anything, int64(1)).
		Return([]domain.Task{{ID: 7, ProjectID: 1, Title: "Setup DB"}}, nil).Once()

	project, projectTasks, err := svc.GetProject(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, "SP", project.Identifier)
	require.Len(t, projectTasks, 1)
}

func TestProjectService_GetProject_NotFound(t *testing.T) {
	projects := new(projectRepoMock)
	svc := NewProjectService(projects, new(taskRepoMock))

	projects.On("Get", mock.Anything, int64(99)).
		Return(domain.Project{}, domain.ErrProjectNotFound).Once()

	_, _, err := svc.GetProject(context.Background(), 99)
	require.ErrorIs(t, err, domain.ErrProjectNotFound)
}
