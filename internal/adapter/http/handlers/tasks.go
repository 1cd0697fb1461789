package handlers

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"tasktracker/internal/adapter/http/dto"
	"tasktracker/internal/adapter/http/mapper"
	"tasktracker/internal/core/ports"
	"tasktracker/pkg/ipwhitelist"
)

type TaskHandler struct {
	taskService ports.TaskService
	whitelist   *ipwhitelist.Whitelist
}

func NewTaskHandler(taskService ports.TaskService, whitelist *ipwhitelist.Whitelist) *TaskHandler {
	return &TaskHandler{taskService: taskService, whitelist: whitelist}
}

// ListTasks serves the read-only JSON feed of every task, enriched with
// the display identifier.
func (h *TaskHandler) ListTasks(c *gin.Context) {
	tasks, err := h.taskService.ListAll(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, mapper.ToTaskItems(tasks, time.Now()))
}

func (h *TaskHandler) UpdateKanbanStatus(c *gin.Context) {
	var req dto.UpdateKanbanStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	if err := h.taskService.UpdateKanbanStatus(c.Request.Context(), req.TaskID, req.NewStatus); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *TaskHandler) UpdateTaskVisibility(c *gin.Context) {
	var req dto.UpdateTaskVisibilityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	if err := h.taskService.UpdateVisibility(c.Request.Context(), req.TaskID, *req.ShowInCalendar, *req.KanbanEnabled); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *TaskHandler) ToggleTaskCompleted(c *gin.Context) {
	var req dto.ToggleTaskCompletedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	if err := h.taskService.ToggleCompleted(c.Request.Context(), req.TaskID, *req.Completed); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

func (h *TaskHandler) MoveTaskToProject(c *gin.Context) {
	var req dto.MoveTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	if err := h.taskService.MoveTask(c.Request.Context(), req.TaskID, req.ProjectID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.SuccessResponse{Success: true})
}

// CreateTaskFromCalendar answers a calendar date click with the project
// selection URL, carrying the clicked date along.
func (h *TaskHandler) CreateTaskFromCalendar(c *gin.Context) {
	var req dto.CreateTaskFromCalendarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondInvalidPayload(c)
		return
	}

	redirect := "/select_project_for_task"
	if req.Date != "" {
		redirect += "?date=" + url.QueryEscape(req.Date)
	}
	c.JSON(http.StatusOK, dto.RedirectResponse{RedirectURL: redirect})
}

// CreateQuickTask files a placeholder task under the dump project and
// answers with the edit page URL.
func (h *TaskHandler) CreateQuickTask(c *gin.Context) {
	task, err := h.taskService.CreateQuickTask(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RedirectResponse{RedirectURL: fmt.Sprintf("/edit_task/%d", task.ID)})
}

// CreateQuickTaskRedirect is the GET flavor: create and go straight to the
// edit page.
func (h *TaskHandler) CreateQuickTaskRedirect(c *gin.Context) {
	task, err := h.taskService.CreateQuickTask(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.Redirect(http.StatusFound, fmt.Sprintf("/edit_task/%d", task.ID))
}

func (h *TaskHandler) ShareTask(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || taskID <= 0 {
		respondInvalidID(c)
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	c.JSON(http.StatusOK, dto.ShareTaskResponse{
		TaskID:  taskID,
		URL:     fmt.Sprintf("%s://%s/task/%d", scheme, c.Request.Host, taskID),
		Success: true,
	})
}

func (h *TaskHandler) EditAllowed(c *gin.Context) {
	taskID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || taskID <= 0 {
		respondInvalidID(c)
		return
	}

	clientIP := ipwhitelist.ClientIP(c.Request)
	c.JSON(http.StatusOK, dto.EditAllowedResponse{
		TaskID:   taskID,
		CanEdit:  h.whitelist.Allowed(clientIP),
		ClientIP: clientIP,
	})
}
