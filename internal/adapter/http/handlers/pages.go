package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/internal/core/domain"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/apierrors"
)

// PageHandler serves the HTML views. Storage failures render a generic
// failure page; the detail stays in the logs.
type PageHandler struct {
	taskService    ports.TaskService
	projectService ports.ProjectService
}

func NewPageHandler(taskService ports.TaskService, projectService ports.ProjectService) *PageHandler {
	return &PageHandler{taskService: taskService, projectService: projectService}
}

func (h *PageHandler) Index(c *gin.Context) {
	tasks, err := h.taskService.ListActive(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Tasks": mapper.ToTaskItems(tasks, time.Now()),
	})
}

func (h *PageHandler) Projects(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "projects.html", gin.H{
		"Projects": mapper.ToProjectItems(projects),
	})
}

func (h *PageHandler) ProjectDetail(c *gin.Context) {
	projectID, ok := pathID(c)
	if !ok {
		return
	}

	project, tasks, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "project_detail.html", gin.H{
		"Project": mapper.ToProjectItem(project),
		"Tasks":   mapper.ToTaskItems(tasks, time.Now()),
	})
}

func (h *PageHandler) TaskDetail(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "task_detail.html", gin.H{
		"Task": mapper.ToTaskItem(task, time.Now()),
	})
}

func (h *PageHandler) CreateProjectForm(c *gin.Context) {
	c.HTML(http.StatusOK, "create_project.html", gin.H{})
}

func (h *PageHandler) CreateProject(c *gin.Context) {
	var form dto.ProjectForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderErrorStatus(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	if _, err := h.projectService.CreateProject(c.Request.Context(), mapper.ToCreateProjectInput(form)); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, "/projects")
}

func (h *PageHandler) CreateTaskForm(c *gin.Context) {
	projectID, ok := pathParamID(c, "project_id")
	if !ok {
		return
	}

	project, _, err := h.projectService.GetProject(c.Request.Context(), projectID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "create_task.html", gin.H{
		"Project":     mapper.ToProjectItem(project),
		"PrefillDate": c.Query("date"),
	})
}

func (h *PageHandler) CreateTask(c *gin.Context) {
	projectID, ok := pathParamID(c, "project_id")
	if !ok {
		return
	}

	var form dto.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderErrorStatus(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}
	input, err := mapper.ToTaskInput(form)
	if err != nil {
		h.renderErrorStatus(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	if _, err := h.taskService.CreateTask(c.Request.Context(), projectID, input); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/project/%d", projectID))
}

func (h *PageHandler) EditTaskForm(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	task, err := h.taskService.GetTask(c.Request.Context(), taskID)
	if err != nil {
		h.renderError(c, err)
		return
	}
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "edit_task.html", gin.H{
		"Task":     mapper.ToTaskItem(task, time.Now()),
		"Projects": mapper.ToProjectItems(projects),
	})
}

func (h *PageHandler) EditTask(c *gin.Context) {
	taskID, ok := pathID(c)
	if !ok {
		return
	}

	var form dto.TaskForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderErrorStatus(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}
	input, err := mapper.ToTaskInput(form)
	if err != nil {
		h.renderErrorStatus(c, http.StatusBadRequest, apierrors.MsgInvalidPayload)
		return
	}

	if err := h.taskService.UpdateTask(c.Request.Context(), taskID, input); err != nil {
		h.renderError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/task/%d", taskID))
}

func (h *PageHandler) CompletedTasks(c *gin.Context) {
	tasks, err := h.taskService.ListRecentlyCompleted(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "completed_tasks.html", gin.H{
		"Tasks":   mapper.ToTaskItems(tasks, time.Now()),
		"ShowAll": false,
	})
}

func (h *PageHandler) AllCompletedTasks(c *gin.Context) {
	tasks, err := h.taskService.ListAllCompleted(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "completed_tasks.html", gin.H{
		"Tasks":   mapper.ToTaskItems(tasks, time.Now()),
		"ShowAll": true,
	})
}

func (h *PageHandler) Kanban(c *gin.Context) {
	tasks, err := h.taskService.ListKanban(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "kanban.html", gin.H{
		"Columns": kanbanColumns(mapper.ToTaskItems(tasks, time.Now())),
	})
}

func (h *PageHandler) Calendar(c *gin.Context) {
	events, err := h.taskService.CalendarEvents(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	payload, err := json.Marshal(events)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "calendar.html", gin.H{
		"Events": template.JS(payload),
	})
}

func (h *PageHandler) SelectProject(c *gin.Context) {
	projects, err := h.projectService.ListProjects(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.HTML(http.StatusOK, "select_project.html", gin.H{
		"Projects": mapper.ToProjectItems(projects),
		"Date":     c.Query("date"),
	})
}

type kanbanColumn struct {
	Status string
	Tasks  []dto.TaskItem
}

// kanbanColumns groups tasks by status, columns ordered by first
// appearance so the board layout is stable for a given listing.
func kanbanColumns(tasks []dto.TaskItem) []kanbanColumn {
	index := make(map[string]int)
	columns := make([]kanbanColumn, 0)
	for _, task := range tasks {
		i, ok := index[task.KanbanStatus]
		if !ok {
			i = len(columns)
			index[task.KanbanStatus] = i
			columns = append(columns, kanbanColumn{Status: task.KanbanStatus})
		}
		columns[i].Tasks = append(columns[i].Tasks, task)
	}
	return columns
}

func (h *PageHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrTaskNotFound):
		h.renderErrorStatus(c, http.StatusNotFound, apierrors.MsgTaskNotFound)
	case errors.Is(err, domain.ErrProjectNotFound):
		h.renderErrorStatus(c, http.StatusNotFound, apierrors.MsgProjectNotFound)
	case errors.Is(err, domain.ErrDuplicateIdentifier):
		h.renderErrorStatus(c, http.StatusBadRequest, apierrors.MsgDuplicateIdentifier)
	case errors.Is(err, domain.ErrMissingArgument):
		h.renderErrorStatus(c, http.StatusBadRequest, apierrors.MsgMissingArgument)
	default:
		zap.L().Error("page request failed", zap.String("path", c.Request.URL.Path), zap.Error(err))
		h.renderErrorStatus(c, http.StatusInternalServerError, apierrors.MsgStorageFailure)
	}
}

func (h *PageHandler) renderErrorStatus(c *gin.Context, status int, msgKey string) {
	lang := middleware.GetLang(c)
	c.HTML(status, "error.html", gin.H{
		"Status":  status,
		"Message": apierrors.GetTransErrorMsg(msgKey, lang),
	})
}

func pathID(c *gin.Context) (int64, bool) {
	return pathParamID(c, "id")
}

func pathParamID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		lang := middleware.GetLang(c)
		c.HTML(http.StatusBadRequest, "error.html", gin.H{
			"Status":  http.StatusBadRequest,
			"Message": apierrors.GetTransErrorMsg(apierrors.MsgInvalidID, lang),
		})
		return 0, false
	}
	return id, true
}
