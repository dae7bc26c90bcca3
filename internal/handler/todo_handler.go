package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"todoapi/internal/service"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	service *service.TaskService
}

func NewTodoHandler(svc *service.TaskService) *TodoHandler {
	return &TodoHandler{service: svc}
}

type TaskUpdateRequest struct {
	Status string `json:"status"`
}

// GetAllUsers returns every user. The owned task list is not part of the
// payload.
func (h *TodoHandler) GetAllUsers(c *gin.Context) {
	users, err := h.service.GetAllUsers(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while fetching users."})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetTasksByUserID returns the tasks owned by the user in the path. A user
// with no tasks (or an unknown user id) gets a message object rather than
// an empty array.
func (h *TodoHandler) GetTasksByUserID(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user id."})
		return
	}

	tasks, err := h.service.GetTasksForUser(c.Request.Context(), uint(userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request."})
		return
	}

	if len(tasks) == 0 {
		c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("No tasks found for this user id %d.", userID)})
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// UpdateTaskStatus applies a status change to a single task. Only blankness
// is checked here; all other validation lives in the service, which signals
// both an unrecognized value and a missing task the same way.
func (h *TodoHandler) UpdateTaskStatus(c *gin.Context) {
	taskID, err := strconv.ParseUint(c.Param("taskId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid task id."})
		return
	}

	var req TaskUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	if strings.TrimSpace(req.Status) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status value."})
		return
	}

	ok, err := h.service.UpdateTaskStatus(c.Request.Context(), uint(taskID), req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An error occurred while processing your request."})
		return
	}

	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"message": "Task not found."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Status updated successfully."})
}
