package main

import (
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"notesapi/internal/config"
	"notesapi/internal/domain/sqlite"
	"notesapi/internal/domain/sqlite/repository"
	"notesapi/internal/http/handler"
	"notesapi/internal/service"
	"notesapi/internal/utils/apierror"
)

func main() {
	// Loads from .env when present; real env vars win either way
	_ = godotenv.Load()
	cfg := config.Load()

	validate := validator.New()

	// Init SQLite
	db, err := sqlite.Init(cfg.DatabasePath)
	if err != nil {
		panic(err)
	}

	// Getting repos
	counterRepo := repository.NewCounterRepository(db)
	userRepo := repository.NewUserRepository(db, counterRepo)
	noteRepo := repository.NewNoteRepository(db)

	// Getting services
	userService := service.NewUserService(userRepo, validate)
	noteService := service.NewNoteService(noteRepo, validate)

	// Getting handlers
	userRoutes := handler.NewUserDefault(userService)
	noteRoutes := handler.NewNoteDefault(noteService)

	e := echo.New()
	e.Use(middleware.CORS())
	e.Use(middleware.BodyLimit("1M"))

	// Users
	e.POST("/users", userRoutes.CreateUser)
	e.GET("/users", userRoutes.GetUsers)
	e.GET("/users/:user_id", userRoutes.GetUser)
	e.PUT("/users/:user_id", userRoutes.UpdateUser)
	e.DELETE("/users/:user_id", userRoutes.DeleteUser)

	// Notes
	e.POST("/notes", noteRoutes.CreateNote)
	e.GET("/notes/user/:user_id", noteRoutes.GetNotesByUser)
	e.GET("/notes/:note_id", noteRoutes.GetNote)
	e.PUT("/notes/:note_id", noteRoutes.UpdateNote)
	e.DELETE("/notes/:note_id", noteRoutes.DeleteNote)

	e.RouteNotFound("/*", func(c echo.Context) error {
		return c.JSON(apierror.EndpointNotFoundError.Code(), apierror.EndpointNotFoundError)
	})

	if err := e.Start(":" + cfg.Port); err != nil {
		panic(err)
	}
}
