package app

import (
	"net/http"

	"maths_point_backend/internal/config"
	"maths_point_backend/internal/middleware"
	"maths_point_backend/internal/model"
	"maths_point_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"message": "API is working"})
	})

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		user := api.Group("/user")
		{
			user.GET("/", c.user.ListUsers)
			user.POST("/signup", c.auth.SignUp)
			user.POST("/login", c.auth.SignIn)
			user.POST("/logout", c.auth.Logout)
			user.GET("/check-auth", c.auth.CheckAuth)
			user.POST("/forgot-password", c.auth.ForgotPassword)
			user.POST("/reset-password", c.auth.ResetPassword)
			user.PUT("/profile", middleware.AuthMiddleware(cfg), c.user.UpdateProfile)
		}

		tests := api.Group("/tests")
		{
			tests.GET("/", c.test.GetTests)
			tests.GET("/:id", c.test.GetTestByID)

			authorized := tests.Group("/")
			authorized.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Teacher))
			{
				authorized.POST("/", c.test.CreateTest)
				authorized.PUT("/:id", c.test.UpdateTest)
				authorized.DELETE("/:id", c.test.DeleteTest)
			}
		}

		questions := api.Group("/questions")
		{
			questions.GET("/", c.question.GetQuestions)

			authorized := questions.Group("/")
			authorized.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Teacher))
			{
				authorized.POST("/:testId", c.question.AddQuestion)
				authorized.PUT("/:testId/questions/:questionId", c.question.UpdateQuestion)
				authorized.DELETE("/:testId/questions/:questionId", c.question.DeleteQuestion)
			}
		}

		api.GET("/leaderboard/:examId", c.leaderboard.GetLeaderboard)

		testimonials := api.Group("/testimonials")
		{
			testimonials.GET("/", c.testimonial.GetTestimonials)
			testimonials.POST("/", middleware.AuthMiddleware(cfg), c.testimonial.SubmitTestimonial)
		}
	}

	attempt := router.Group("/attempt")
	attempt.Use(middleware.AuthMiddleware(cfg))
	{
		attempt.POST("/save", c.attempt.SaveAttempt)
		attempt.GET("/get-all-attempts", c.attempt.GetMyAttempts)
		attempt.GET("/:id", c.attempt.GetAttemptByID)
	}
}
