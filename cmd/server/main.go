package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/huellitas/shelter-backend/internal/config"
	"github.com/huellitas/shelter-backend/internal/crypto"
	"github.com/huellitas/shelter-backend/internal/database"
	"github.com/huellitas/shelter-backend/internal/email"
	"github.com/huellitas/shelter-backend/internal/handlers"
	"github.com/huellitas/shelter-backend/internal/middleware"
	"github.com/huellitas/shelter-backend/internal/types"
	"github.com/huellitas/shelter-backend/internal/utils"

	_ "github.com/huellitas/shelter-backend/docs/api" // Swagger docs
)

// @title Huellitas Shelter API
// @version 1.0.0
// @description Dog shelter management service: adoptions, follow-up visits and education courses
// @termsOfService http://swagger.io/terms/

// @contact.name API Support

// @host localhost:3000
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed the bootstrap admin account
	if err := database.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("Failed to seed admin account: %v", err)
	}

	cipher, err := crypto.NewCipher(cfg.PIIKey)
	if err != nil {
		log.Fatalf("Failed to initialize PII cipher: %v", err)
	}

	mailer, err := email.NewClient(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize SMTP client: %v", err)
	}
	if mailer == nil {
		log.Printf("SMTP not configured, outgoing email disabled")
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler:          customErrorHandler,
		DisableStartupMessage: false,
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(middleware.VersionMiddleware())

	// Prometheus metrics
	prometheus := fiberprometheus.New("shelter_backend")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Create handlers
	authHandler := &handlers.AuthHandler{DB: db, Config: cfg, Mailer: mailer}
	dogHandler := &handlers.DogHandler{DB: db, Cipher: cipher, MaxImageBytes: cfg.MaxImageBytes}
	ownerHandler := &handlers.OwnerHandler{DB: db, Cipher: cipher}
	visitHandler := &handlers.VisitHandler{DB: db, Cipher: cipher, MaxImageBytes: cfg.MaxImageBytes}
	courseHandler := &handlers.CourseHandler{DB: db}
	applicantHandler := &handlers.ApplicantHandler{
		DB:            db,
		Cipher:        cipher,
		MaxImageBytes: cfg.MaxImageBytes,
		APIURL:        cfg.APIURL,
	}
	healthHandler := &handlers.HealthHandler{DB: db, Config: cfg}

	authed := middleware.Auth(db, cfg.JWTSecret)
	staff := middleware.Require(middleware.ActionManageShelter)
	admin := middleware.Require(middleware.ActionManageUsers)
	applicantAdmin := middleware.Require(middleware.ActionViewApplicants)

	app.Get("/health", healthHandler.Health)

	// Authentication and account management
	auth := app.Group("/auth")
	auth.Post("/token", authHandler.Token)
	auth.Post("/", authed, admin, authHandler.CreateUser)
	auth.Post("/generate_user", authed, admin, authHandler.GenerateUser)
	auth.Get("/users/", authed, admin, authHandler.ListUsers)
	auth.Put("/update", authed, authHandler.UpdateUser)
	auth.Put("/update_password", authed, authHandler.UpdatePassword)
	auth.Delete("/delete/:user_id", authed, admin, authHandler.DeleteUser)
	auth.Post("/reset_password/send", authHandler.SendResetCode)
	auth.Post("/reset_password/verify", authHandler.VerifyResetCode)
	auth.Post("/reset_password/reset", authHandler.ResetPassword)

	// Dog collections (public reads, staff mutations)
	dog := app.Group("/dog")

	static := dog.Group("/static_dog")
	static.Get("/", dogHandler.ListStaticDogs)
	static.Get("/:dog_id/image", dogHandler.StaticDogImage)
	static.Get("/:dog_id", dogHandler.GetStaticDog)
	static.Post("/create/", authed, staff, dogHandler.CreateStaticDog)
	static.Put("/update/:dog_id", authed, staff, dogHandler.UpdateStaticDog)
	static.Delete("/delete/:dog_id", authed, staff, dogHandler.DeleteStaticDog)

	adoption := dog.Group("/adoption_dog")
	adoption.Get("/", dogHandler.ListAdoptionDogs)
	adoption.Get("/:dog_id/image", dogHandler.AdoptionDogImage)
	adoption.Get("/:dog_id", dogHandler.GetAdoptionDog)
	adoption.Post("/create/", authed, staff, dogHandler.CreateAdoptionDog)
	adoption.Put("/update/:dog_id", authed, staff, dogHandler.UpdateAdoptionDog)
	adoption.Delete("/delete/:dog_id", authed, staff, dogHandler.DeleteAdoptionDog)
	adoption.Post("/adopt/:dog_id/:adoption_date", authed, staff, dogHandler.AdoptDog)
	adoption.Post("/adopt_existing/:dog_id/:adoption_date/:owner_id", authed, staff, dogHandler.AdoptDogExistingOwner)

	adopted := dog.Group("/adopted_dog", authed, staff)
	adopted.Get("/", dogHandler.ListAdoptedDogs)
	adopted.Get("/:dog_id/image", dogHandler.AdoptedDogImage)
	adopted.Get("/:dog_id", dogHandler.GetAdoptedDog)
	adopted.Put("/update/:dog_id", dogHandler.UpdateAdoptedDog)
	adopted.Post("/unadopt/:dog_id/", dogHandler.UnadoptDog)

	// Owners (PII, staff only)
	owner := app.Group("/owner", authed, staff)
	owner.Get("/", ownerHandler.ListOwners)
	owner.Get("/:owner_id", ownerHandler.GetOwner)
	owner.Post("/create/", ownerHandler.CreateOwner)
	owner.Put("/update/:owner_id", ownerHandler.UpdateOwner)
	owner.Delete("/delete/:owner_id", ownerHandler.DeleteOwner)

	// Follow-up visits (staff only)
	visits := app.Group("/visits", authed, staff)
	visits.Post("/create/", visitHandler.CreateVisit)
	visits.Get("/", visitHandler.ListVisits)
	visits.Get("/dog/:dog_id/all/", visitHandler.ListVisitsByDog)
	visits.Get("/:visit_id/evidence", visitHandler.VisitEvidence)
	visits.Get("/:visit_id", visitHandler.GetVisit)
	visits.Put("/update/:visit_id", visitHandler.UpdateVisit)
	visits.Delete("/delete/:visit_id", visitHandler.DeleteVisit)

	// Education courses (public reads, staff mutations)
	course := app.Group("/course")
	course.Get("/", courseHandler.ListCourses)
	course.Get("/:course_id", courseHandler.GetCourse)
	course.Post("/create/", authed, staff, courseHandler.CreateCourse)
	course.Put("/update/:course_id", authed, staff, courseHandler.UpdateCourse)
	course.Delete("/delete/:course_id", authed, staff, courseHandler.DeleteCourse)

	// Course applicants (public signup, admin reads)
	applicant := app.Group("/applicant")
	applicant.Post("/create/", applicantHandler.CreateApplicant)
	applicant.Get("/course/:course_id/all/", authed, applicantAdmin, applicantHandler.ListApplicantsByCourse)
	applicant.Get("/:applicant_id/image", authed, applicantAdmin, applicantHandler.ApplicantImage)
	applicant.Get("/:applicant_id", authed, applicantAdmin, applicantHandler.GetApplicant)
	applicant.Delete("/delete/:applicant_id", authed, applicantAdmin, applicantHandler.DeleteApplicant)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return utils.NotFoundResponse(c, "[404] Resource Not Found")
	})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = app.Shutdown()
	}()

	// Start server
	port := cfg.Port
	log.Printf("Starting server on port %s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}

// customErrorHandler handles errors globally
func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := err.Error()
	errorType := "unknown"

	var ce *types.CustomError
	if errors.As(err, &ce) {
		code = ce.Code
		message = ce.Message
		errorType = ce.Type
	} else if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	return utils.ErrorResponse(c, message, code, errorType)
}
