package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// NewRouter configura el router de Gin con middlewares y rutas.
func NewRouter(
	logger *zap.Logger,
	employeeH *EmployeeHandler,
	matchH *MatchHandler,
	teamH *TeamHandler,
	assessmentH *AssessmentHandler,
) *gin.Engine {
	r := gin.New()

	// Middlewares basicos: logging, recovery y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), jsonContentTypeMiddleware())

	employees := r.Group("/employees")
	employees.GET("", employeeH.ListEmployees)
	employees.POST("/synthesize", employeeH.SynthesizeEmployee)
	employees.GET("/:id", employeeH.GetEmployee)
	employees.GET("/:id/insights", employeeH.GetInsights)
	employees.GET("/:id/matches", matchH.RankJobsForEmployee)

	jobs := r.Group("/jobs")
	jobs.GET("", matchH.ListJobs)
	jobs.GET("/:id", matchH.GetJob)
	jobs.GET("/:id/candidates", matchH.RankCandidatesForJob)

	r.GET("/matches/:employeeID/:jobID", matchH.GetMatch)
	r.POST("/personality/match", matchH.ScorePersonality)
	r.GET("/mbti/:type", matchH.GetMBTIDescription)

	teams := r.Group("/teams")
	teams.GET("", teamH.ListTeams)
	teams.GET("/:id/dynamics", teamH.GetDynamics)
	teams.GET("/:id/simulate/:employeeID", teamH.SimulateAddition)

	assessments := r.Group("/assessments")
	assessments.GET("/:framework/questions", assessmentH.GetQuestions)
	assessments.POST("/:framework", assessmentH.Submit)

	results := r.Group("/assessment-results")
	results.GET("/:id", assessmentH.GetResult)
	results.POST("/:id/merge", assessmentH.Merge)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
