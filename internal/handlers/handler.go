package handlers

import (
	"time"

	_ "todo_api/docs"
	"todo_api/internal/logger"
	"todo_api/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services       *service.Service
	log            *logger.Logger
	streamInterval time.Duration
}

// Option customizes a Handler.
type Option func(*Handler)

// WithStreamInterval sets the default poll interval of GET /todo/ws.
// Non-positive values keep the built-in default.
func WithStreamInterval(d time.Duration) Option {
	return func(h *Handler) {
		if d > 0 {
			h.streamInterval = clampInterval(d)
		}
	}
}

// NewHandler constructs a new HTTP handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger, opts ...Option) *Handler {
	h := &Handler{services: services, log: log, streamInterval: defaultInterval}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), h.requestLogger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.index)
	router.GET("/health", h.health)

	h.registerTodoRoutes(router)

	return router
}

func (h *Handler) registerTodoRoutes(r *gin.Engine) {
	todo := r.Group("/todo")
	{
		todo.GET("", h.listTodoItems)
		todo.POST("", requireJSON, h.createTodoItem)
		todo.DELETE("/:id", h.deleteTodoItem)
		// live item list, same port
		todo.GET("/ws", h.wsConnect)
	}
}
