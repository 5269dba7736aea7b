package main

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"time"

	"timetable/config"
	"timetable/domain"
	"timetable/services/scheduling/delivery"
	"timetable/services/scheduling/repository"
	"timetable/services/scheduling/usecase"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

const requestTimeout = 10 * time.Second

var log *logrus.Logger
var wg sync.WaitGroup

func main() {
	if err := godotenv.Load(); err != nil {
		logrus.Warn("No .env file found, relying on environment")
	}

	log = config.GetLogrusInstance()

	startHTTP()
}

func startHTTP() {
	log.Info("Starting HTTP")
	app := fiber.New(config.GetFiberConfig())

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	if _, err := config.BootDB(); err != nil {
		log.Fatalf("Failed to boot DB: %v", err)
		return
	}

	pool, err := config.BootPgxPool(context.Background())
	if err != nil {
		log.Fatalf("Failed to boot pgx pool: %v", err)
		return
	}
	defer pool.Close()

	gormDB, err := config.BootGorm()
	if err != nil {
		log.Fatalf("Failed to boot gorm: %v", err)
		return
	}

	// Core repositories run on pgx; reference CRUD and login on gorm.
	scheduleRepo := repository.NewScheduleRepository(pool)
	requestRepo := repository.NewChangeRequestRepository(pool)
	notifRepo := repository.NewNotificationRepository(pool)
	userRepo := repository.NewUserRepository(pool)
	authRepo := repository.NewAuthRepository(gormDB)

	institutionRepo := repository.NewReferenceRepository[domain.Institution](gormDB, "institution")
	groupRepo := repository.NewReferenceRepository[domain.Group](gormDB, "group")
	teacherRepo := repository.NewReferenceRepository[domain.Teacher](gormDB, "teacher")
	classroomRepo := repository.NewReferenceRepository[domain.Classroom](gormDB, "classroom")
	subjectRepo := repository.NewReferenceRepository[domain.Subject](gormDB, "subject")
	timeSlotRepo := repository.NewReferenceRepository[domain.TimeSlot](gormDB, "time slot")

	scheduleUC := usecase.NewScheduleUseCase(scheduleRepo, requestTimeout)
	changeRequestUC := usecase.NewChangeRequestUseCase(requestRepo, notifRepo, userRepo, requestTimeout)
	notifUC := usecase.NewNotificationUseCase(notifRepo, requestTimeout)
	userUC := usecase.NewUserUseCase(userRepo, requestTimeout)
	authUC := usecase.NewAuthUseCase(authRepo, requestTimeout)

	delivery.NewScheduleHandler(app, scheduleUC)
	delivery.NewChangeRequestHandler(app, changeRequestUC)
	delivery.NewNotificationHandler(app, notifUC)
	delivery.NewUserHandler(app, userUC)
	delivery.NewAuthHandler(app, authUC)

	delivery.NewReferenceHandler(app, "/institutions", "institution",
		usecase.NewReferenceUseCase(institutionRepo, requestTimeout))
	delivery.NewReferenceHandler(app, "/groups", "group",
		usecase.NewReferenceUseCase(groupRepo, requestTimeout))
	delivery.NewReferenceHandler(app, "/teachers", "teacher",
		usecase.NewReferenceUseCase(teacherRepo, requestTimeout))
	delivery.NewReferenceHandler(app, "/classrooms", "classroom",
		usecase.NewReferenceUseCase(classroomRepo, requestTimeout))
	delivery.NewReferenceHandler(app, "/subjects", "subject",
		usecase.NewReferenceUseCase(subjectRepo, requestTimeout))
	delivery.NewReferenceHandler(app, "/time-slots", "time slot",
		usecase.NewReferenceUseCase(timeSlotRepo, requestTimeout))

	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Infof("Starting HTTP server on port %s", config.GetFiberHttpPort())
		if err := app.Listen(config.GetFiberListenAddress()); err != nil {
			log.Fatalf("Error starting server: %v", err)
		}
	}()

	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt)

	<-signalChan

	log.Info("Shutting down the server...")

	if err := app.Shutdown(); err != nil {
		log.Errorf("Error during server shutdown: %v", err)
	}

	wg.Wait()
	log.Info("Server shut down gracefully")
}
