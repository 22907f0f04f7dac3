package server

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/jfarje/usell-backend/internal/handler"
	"github.com/jfarje/usell-backend/internal/repository"
	"github.com/jfarje/usell-backend/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"
)

// requestTimeout bounds every handler; the store is the only slow collaborator.
const requestTimeout = 30 * time.Second

type Server struct {
	e *echo.Echo
}

func New(db *gorm.DB) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.ContextTimeout(requestTimeout))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Content-Type"},
	}))

	careerRepo := repository.NewCareerRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	postRepo := repository.NewPostRepository(db)
	txRepo := repository.NewTransactionRepository(db)
	wishRepo := repository.NewWishPostRepository(db)

	catalogSvc := service.NewCatalogService(careerRepo, categoryRepo)
	studentSvc := service.NewStudentService(studentRepo, careerRepo, postRepo, txRepo, wishRepo)
	postSvc := service.NewPostService(postRepo, categoryRepo, studentRepo, careerRepo)
	txSvc := service.NewTransactionService(txRepo, studentRepo)
	wishSvc := service.NewWishPostService(wishRepo, studentRepo, postRepo)

	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	postHandler := handler.NewPostHandler(postSvc)
	txHandler := handler.NewTransactionHandler(txSvc)
	wishHandler := handler.NewWishPostHandler(wishSvc)

	e.GET("/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, handler.NewMessageResponse("app running"))
	})

	e.GET("/student/:id", studentHandler.Get)
	e.GET("/all_students", studentHandler.List)
	e.GET("/delete_student/:id", studentHandler.Delete)
	e.POST("/register", studentHandler.Register)

	e.GET("/all_careers", catalogHandler.ListCareers)
	e.GET("/all_categories", catalogHandler.ListCategories)
	e.GET("/create_careers", catalogHandler.CreateCareers)
	e.GET("/create_categories", catalogHandler.CreateCategories)

	e.GET("/all_posts", postHandler.ListAll)
	e.GET("/single_post/:id", postHandler.GetSingle)
	e.GET("/active_posts/:student_id", postHandler.ActiveByStudent)
	e.GET("/all_posts_by_category/:category_id", postHandler.ByCategory)
	e.GET("/recent_posts/:student_id", postHandler.Recent)
	e.POST("/publish", postHandler.Publish)

	e.POST("/create_transaction", txHandler.Create)

	e.POST("/add_wish_post", wishHandler.Add)
	e.GET("/wish_posts/:student_id", wishHandler.ListByStudent)
	e.GET("/delete_wish_post/:id", wishHandler.Delete)

	return &Server{e: e}
}

func (s *Server) Start(addr string) error {
	return s.e.Start(addr)
}
