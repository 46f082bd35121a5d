package handlers

import (
	"todo_service/internal/logger"
	"todo_service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(cors.Default()) // allow all origins, like the frontend expects

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	h.registerTodoRoutes(router)
	h.registerUserRoutes(router)

	// Minimal WebSocket connection (HTTP upgrade) — same port
	router.GET("/ws", h.wsConnect)

	return router
}

// Token possession is not checked on any of these routes; protecting them is
// a deployment concern, not handled here.
func (h *Handler) registerTodoRoutes(r *gin.Engine) {
	todos := r.Group("/todos")
	{
		todos.GET("", h.listTodos)
		todos.POST("", h.createTodo)
		todos.GET("/:id", h.getTodoByID)
		todos.PUT("/:id", h.replaceTodo)
		todos.PUT("/:id/complete", h.setTodoCompletion)
		todos.DELETE("/:id", h.deleteTodo)
	}
}

func (h *Handler) registerUserRoutes(r *gin.Engine) {
	user := r.Group("/user")
	{
		user.POST("/register", h.register)
		user.POST("/login", h.login)
		user.DELETE("/delete/:id", h.deleteUser)
		user.POST("/update/account-details", h.updateAccountDetails)
		user.POST("/update/password", h.updatePassword)
	}
}
