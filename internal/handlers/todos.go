package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"todo_service/internal/service"
)

// Static response texts; the wire contract the frontend matches on.
const (
	msgTodoNotFound = "Todo not found"
	msgTodoDeleted  = "Todo deleted successfully"

	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response. All error bodies are flat
// {"message": <text>}.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"message": userMsg})
}

// Request DTO for creating and replacing todos. isComplete is optional on
// create and zero-defaults to false.
type todoRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Severity    string `json:"severity" binding:"required"`
	IsComplete  bool   `json:"isComplete"`
}

// Request DTO for the completion-only update.
type completionRequest struct {
	IsComplete *bool `json:"isComplete" binding:"required"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// @Summary      List todos
// @Tags         todos
// @Produce      json
// @Success      200  {array}   models.Todo
// @Failure      500  {object}  map[string]string
// @Router       /todos [get]
func (h *Handler) listTodos(c *gin.Context) {
	todos, err := h.services.Todos.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "todo_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, todos)
}

// @Summary      Create todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        body  body      todoRequest  true  "Todo payload"
// @Success      201   {object}  models.Todo
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /todos [post]
func (h *Handler) createTodo(c *gin.Context) {
	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBodyPref + err.Error()})
		return
	}
	created, err := h.services.Todos.Create(c.Request.Context(), service.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		IsComplete:  req.IsComplete,
	})
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "todo_create_failed", err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// @Summary      Get todo by id
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo id"
// @Success      200  {object}  models.Todo
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todos/{id} [get]
func (h *Handler) getTodoByID(c *gin.Context) {
	found, err := h.services.Todos.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTodoNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "todo_get_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, found)
}

// @Summary      Replace todo
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      string       true  "Todo id"
// @Param        body  body      todoRequest  true  "Todo payload"
// @Success      200   {object}  models.Todo
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /todos/{id} [put]
func (h *Handler) replaceTodo(c *gin.Context) {
	var req todoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBodyPref + err.Error()})
		return
	}
	updated, err := h.services.Todos.Replace(c.Request.Context(), c.Param("id"), service.TodoInput{
		Title:       req.Title,
		Description: req.Description,
		Severity:    req.Severity,
		IsComplete:  req.IsComplete,
	})
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTodoNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "todo_replace_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Set todo completion
// @Tags         todos
// @Accept       json
// @Produce      json
// @Param        id    path      string             true  "Todo id"
// @Param        body  body      completionRequest  true  "Completion flag"
// @Success      200   {object}  models.Todo
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /todos/{id}/complete [put]
func (h *Handler) setTodoCompletion(c *gin.Context) {
	var req completionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": errInvalidBodyPref + err.Error()})
		return
	}
	updated, err := h.services.Todos.SetCompletion(c.Request.Context(), c.Param("id"), *req.IsComplete)
	if err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTodoNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "todo_complete_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, updated)
}

// @Summary      Delete todo
// @Tags         todos
// @Produce      json
// @Param        id   path      string  true  "Todo id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /todos/{id} [delete]
func (h *Handler) deleteTodo(c *gin.Context) {
	if err := h.services.Todos.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrTodoNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": msgTodoNotFound})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, err.Error(), "todo_delete_failed", err, "id", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": msgTodoDeleted})
}
