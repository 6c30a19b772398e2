package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/siga-edu/academic-service/internal/api/http"
	"github.com/siga-edu/academic-service/internal/api/http/handlers"
	"github.com/siga-edu/academic-service/internal/auth"
	"github.com/siga-edu/academic-service/internal/cache"
	"github.com/siga-edu/academic-service/internal/config"
	"github.com/siga-edu/academic-service/internal/events"
	"github.com/siga-edu/academic-service/internal/observability"
	"github.com/siga-edu/academic-service/internal/persistence"
	"github.com/siga-edu/academic-service/internal/repository"
	"github.com/siga-edu/academic-service/internal/service"
	"github.com/siga-edu/academic-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	professorRepo := repository.NewProfessorRepository(pool)
	staffRepo := repository.NewStaffRepository(pool)
	courseRepo := repository.NewCourseRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	summaryRepo := repository.NewSummaryRepository(pool)
	effectivenessRepo := repository.NewEffectivenessRepository(pool)
	permissionRepo := repository.NewPermissionRepository(pool)

	permCache := cache.NewPermissionCache(redis.Client, cfg.Redis.PermissionTTLSecond, logger)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	authService := service.NewAuthService(*cfg, userRepo, dispatcher)
	permissionService := service.NewPermissionService(permissionRepo, userRepo, permCache, dispatcher)
	peopleService := service.NewPeopleService(service.PeopleDependencies{
		Pool:            pool,
		UserRepo:        userRepo,
		ProfessorRepo:   professorRepo,
		StaffRepo:       staffRepo,
		PermissionCache: permCache,
		Dispatcher:      dispatcher,
		BcryptCost:      cfg.Auth.BcryptCost,
	})
	academicService := service.NewAcademicService(service.AcademicDependencies{
		CourseRepo:        courseRepo,
		AttendanceRepo:    attendanceRepo,
		SummaryRepo:       summaryRepo,
		EffectivenessRepo: effectivenessRepo,
		Dispatcher:        dispatcher,
	})

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), permissionService)
	metrics := observability.NewMetrics()

	app := fiber.New(fiber.Config{AppName: cfg.App.Name})
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout(), cfg.App.Development())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:         handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Auth:           handlers.NewAuthHandler(authService),
		Users:          handlers.NewUsersHandler(peopleService),
		Professors:     handlers.NewProfessorsHandler(peopleService),
		Staff:          handlers.NewStaffHandler(peopleService),
		Courses:        handlers.NewCoursesHandler(academicService),
		Attendance:     handlers.NewAttendanceHandler(academicService),
		Summaries:      handlers.NewSummariesHandler(academicService),
		Effectiveness:  handlers.NewEffectivenessHandler(academicService),
		Permissions:    handlers.NewPermissionsHandler(permissionService),
		AuthMiddleware: authMiddleware,
		Metrics:        metrics,
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
