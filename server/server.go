package server

import (
	"recipe-server/confs"
	"recipe-server/db"
	httpHandler "recipe-server/handlers/http"
	"recipe-server/repositories"
	"recipe-server/usecases"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Server struct {
	app *gin.Engine
	db  db.Database
}

func NewServer(database db.Database) *Server {
	return &Server{
		app: gin.Default(),
		db:  database,
	}
}

func (s *Server) Start() {
	s.setupRoutes()

	if err := s.app.Run(confs.ListenAddr()); err != nil {
		panic(err)
	}
}

func (s *Server) setupRoutes() {
	// Setup CORS middleware
	config := cors.DefaultConfig()
	config.AllowAllOrigins = true
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	s.app.Use(cors.New(config))

	// Setup healthcheck route
	s.app.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "OK",
		})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	tokenRepo := repositories.NewAuthTokenPgRepository(s.db)

	// Initialize use cases
	userUseCase := usecases.NewUserUseCase(userRepo, tokenRepo)
	tokenUseCase := usecases.NewTokenUseCase(userUseCase, tokenRepo)
	recipeUseCase := usecases.NewRecipeUseCase(s.db)

	// Initialize handlers
	userHandler := httpHandler.NewUserHandler(userUseCase)
	tokenHandler := httpHandler.NewTokenHandler(tokenUseCase)
	recipeHandler := httpHandler.NewRecipeHandler(recipeUseCase)
	tagHandler := httpHandler.NewTagHandler(recipeUseCase)

	authRequired := httpHandler.TokenAuthMiddleware(tokenUseCase)

	// Setup API routes
	api := s.app.Group("/api/v1")
	{
		// Public user routes
		users := api.Group("/users")
		{
			users.POST("", userHandler.CreateUser)
			users.POST("/token", tokenHandler.CreateToken)

			// Profile routes for the authenticated caller
			me := users.Group("/me", authRequired)
			{
				me.GET("", userHandler.Me)
				me.PATCH("", userHandler.UpdateMe)
			}
		}

		// Everything below is scoped to the authenticated caller
		authed := api.Group("", authRequired)
		{
			recipes := authed.Group("/recipes")
			{
				recipes.POST("", recipeHandler.CreateRecipe)
				recipes.GET("", recipeHandler.ListRecipes)
				recipes.GET("/:id", recipeHandler.GetRecipe)
				recipes.PUT("/:id", recipeHandler.ReplaceRecipe)
				recipes.PATCH("/:id", recipeHandler.UpdateRecipe)
				recipes.DELETE("/:id", recipeHandler.DeleteRecipe)
			}

			authed.GET("/tags", tagHandler.ListTags)
		}
	}
}
