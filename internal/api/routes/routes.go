package routes

import (
	"exam-scheduler-backend/internal/api/handlers"
	"exam-scheduler-backend/internal/api/middleware"
	"exam-scheduler-backend/internal/config"
	"exam-scheduler-backend/internal/repository"
	"exam-scheduler-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	supervisorRepo := repository.NewSupervisorRepository(db)
	windowRepo := repository.NewAvailabilityWindowRepository(db)
	examRepo := repository.NewExamRepository(db)
	sessionRepo := repository.NewExamSessionRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)

	// Initialize services
	supervisorService := service.NewSupervisorService(supervisorRepo, windowRepo, validator)
	examService := service.NewExamService(examRepo, validator)
	sessionService := service.NewExamSessionService(sessionRepo, examRepo, validator)
	assignmentService := service.NewAssignmentService(assignmentRepo, supervisorRepo, sessionRepo)
	availabilityService := service.NewAvailabilityService(assignmentRepo)
	selector := service.NewCandidateSelector(supervisorRepo, availabilityService)
	autoAssignService := service.NewAutoAssignService(sessionRepo, assignmentRepo, supervisorRepo, selector)
	suggestionService := service.NewSuggestionService(sessionRepo, selector, service.DefaultScore, cfg.SuggestionAlternatesFactor)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	supervisorHandler := handlers.NewSupervisorHandler(supervisorService, assignmentService)
	examHandler := handlers.NewExamHandler(examService, sessionService)
	sessionHandler := handlers.NewExamSessionHandler(sessionService, assignmentService, autoAssignService, suggestionService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Supervisor routes
		supervisors := v1.Group("/supervisors")
		{
			supervisors.GET("", supervisorHandler.ListSupervisors)
			supervisors.POST("", supervisorHandler.CreateSupervisor)
			supervisors.GET("/:id", supervisorHandler.GetSupervisor)
			supervisors.PUT("/:id", supervisorHandler.UpdateSupervisor)
			supervisors.DELETE("/:id", supervisorHandler.DeleteSupervisor)
			supervisors.PATCH("/:id/status", supervisorHandler.SetSupervisorStatus)
			supervisors.PUT("/:id/availability-windows", supervisorHandler.SetAvailabilityWindows)
			supervisors.GET("/:id/assignments", supervisorHandler.GetSupervisorAssignments)
		}

		// Exam routes
		exams := v1.Group("/exams")
		{
			exams.GET("", examHandler.ListExams)
			exams.POST("", examHandler.CreateExam)
			exams.GET("/:id", examHandler.GetExam)
			exams.PUT("/:id", examHandler.UpdateExam)
			exams.DELETE("/:id", examHandler.DeleteExam)
			exams.GET("/:id/sessions", examHandler.GetExamSessions)
		}

		// Exam session routes
		sessions := v1.Group("/exam-sessions")
		{
			sessions.GET("", sessionHandler.ListSessions)
			sessions.POST("", sessionHandler.CreateSession)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.PUT("/:id", sessionHandler.UpdateSession)
			sessions.DELETE("/:id", sessionHandler.DeleteSession)
			sessions.GET("/:id/assignments", sessionHandler.GetSessionAssignments)
			sessions.POST("/:id/auto-assign", sessionHandler.AutoAssign)
			sessions.GET("/:id/suggestions", sessionHandler.GetSuggestions)
		}

		// Assignment routes
		assignments := v1.Group("/assignments")
		{
			assignments.GET("/:id", assignmentHandler.GetAssignment)
			assignments.DELETE("/:id", assignmentHandler.DeleteAssignment)
			assignments.POST("/:id/confirm", assignmentHandler.ConfirmAssignment)
			assignments.POST("/:id/decline", assignmentHandler.DeclineAssignment)
			assignments.POST("/:id/replace", assignmentHandler.ReplaceAssignment)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
