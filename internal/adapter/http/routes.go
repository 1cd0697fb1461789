package http

import (
	"github.com/gin-gonic/gin"

	"tasktracker/internal/adapter/http/handlers"
	"tasktracker/internal/adapter/http/middleware"
	"tasktracker/pkg/ipwhitelist"
)

func RegisterRoutes(
	r *gin.Engine,
	healthHandler *handlers.HealthHandler,
	pageHandler *handlers.PageHandler,
	taskHandler *handlers.TaskHandler,
	whitelist *ipwhitelist.Whitelist,
) {
	r.Use(middleware.LanguageMiddleware())
	gate := middleware.EditGate(whitelist)

	// HTML views.
	r.GET("/", pageHandler.Index)
	r.GET("/projects", pageHandler.Projects)
	r.GET("/project/:id", pageHandler.ProjectDetail)
	r.GET("/task/:id", pageHandler.TaskDetail)
	r.GET("/create_project", pageHandler.CreateProjectForm)
	r.POST("/create_project", gate, pageHandler.CreateProject)
	r.GET("/create_task/:project_id", pageHandler.CreateTaskForm)
	r.POST("/create_task/:project_id", gate, pageHandler.CreateTask)
	r.GET("/edit_task/:id", pageHandler.EditTaskForm)
	r.POST("/edit_task/:id", gate, pageHandler.EditTask)
	r.GET("/completed_tasks", pageHandler.CompletedTasks)
	r.GET("/all_completed_tasks", pageHandler.AllCompletedTasks)
	r.GET("/kanban", pageHandler.Kanban)
	r.GET("/calendar", pageHandler.Calendar)
	r.GET("/select_project_for_task", pageHandler.SelectProject)

	// Calendar click and quick-task flows. The GET flavor creates a task
	// too, so it goes behind the gate as well.
	r.POST("/create_task_from_calendar", gate, taskHandler.CreateTaskFromCalendar)
	r.POST("/create_task_without_project", gate, taskHandler.CreateQuickTask)
	r.GET("/create_task_without_project", gate, taskHandler.CreateQuickTaskRedirect)

	r.GET("/share_task/:id", taskHandler.ShareTask)
	r.GET("/task/:id/edit_allowed", taskHandler.EditAllowed)

	api := r.Group("/api")
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)
		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/update_kanban_status", gate, taskHandler.UpdateKanbanStatus)
		api.POST("/update_task_visibility", gate, taskHandler.UpdateTaskVisibility)
		api.POST("/toggle_task_completed", gate, taskHandler.ToggleTaskCompleted)
		api.POST("/move_task_to_project", gate, taskHandler.MoveTaskToProject)
	}
}
