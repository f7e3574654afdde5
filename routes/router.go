package routes

import (
	"github.com/antonyth18/enigma-webgame/controllers"
	"github.com/antonyth18/enigma-webgame/middlewares"
	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.String(200, "Enigma backend is running")
	})

	api := r.Group("/api")
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/signup", controllers.Signup)
			authRoutes.POST("/login", controllers.Login)
			authRoutes.POST("/portal", middlewares.JWTAuthMiddleware(), controllers.SelectPortal)
		}

		gameRoutes := api.Group("/game")
		gameRoutes.Use(middlewares.JWTAuthMiddleware())
		{
			gameRoutes.GET("/questions", controllers.GetQuestions)
			gameRoutes.POST("/answers", controllers.SubmitAnswer)
			gameRoutes.POST("/hints", controllers.SubmitHint)
			gameRoutes.GET("/hints", controllers.GetHints)
		}

		teamRoutes := api.Group("/teams")
		{
			teamRoutes.GET("/leaderboard", controllers.GetLeaderboard)
			teamRoutes.GET("/me", middlewares.JWTAuthMiddleware(), controllers.GetMyTeam)
			teamRoutes.GET("/:id", controllers.GetTeam)
		}
	}

	return r
}
