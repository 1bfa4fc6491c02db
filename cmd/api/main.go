package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/marcriv/campushub-api/api/swagger"
	"github.com/marcriv/campushub-api/internal/handler"
	"github.com/marcriv/campushub-api/internal/middleware"
	"github.com/marcriv/campushub-api/internal/service"
	"github.com/marcriv/campushub-api/internal/store"
	"github.com/marcriv/campushub-api/pkg/config"
	"github.com/marcriv/campushub-api/pkg/kvstore"
	"github.com/marcriv/campushub-api/pkg/logger"
	corsmiddleware "github.com/marcriv/campushub-api/pkg/middleware/cors"
	reqidmiddleware "github.com/marcriv/campushub-api/pkg/middleware/requestid"
)

// @title CampusHub API
// @version 0.1.0
// @description Course, section and session backend for the CampusHub prototype
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()
	snapshots := newSnapshotStore(cfg, logr, metricsSvc)

	prefix := cfg.Persistence.KeyPrefix
	identity := store.NewIdentity(store.SeedUsers(), snapshots, prefix, logr)
	registry := store.NewSectionRegistry(store.SeedSections(), snapshots, prefix, logr)
	catalog := store.NewCourseCatalog(store.SeedCourses(), registry, identity)
	calendar := store.NewCalendar(store.SeedCalendarEvents(), identity)
	quizzes := store.NewQuizRoster(store.SeedTeacherQuizzes(), store.SeedStudentQuizzes(), identity)
	teacherProfiles := store.NewTeacherProfiles(store.SeedTeacherProfiles(), identity)
	studentProfiles := store.NewStudentProfiles(store.SeedStudentProfiles(), identity)

	authSvc := service.NewAuthService(identity, nil, logr)
	courseSvc := service.NewCourseService(catalog, identity, nil, logr)
	sectionSvc := service.NewSectionService(registry, catalog, nil, logr)
	calendarSvc := service.NewCalendarService(calendar, identity, nil, logr)
	quizSvc := service.NewQuizService(quizzes, identity, logr)
	profileSvc := service.NewProfileService(teacherProfiles, studentProfiles, identity, nil, logr)
	exportSvc := service.NewExportService(catalog, registry, nil, nil, logr)
	dashboardSvc := service.NewDashboardService(identity, catalog, quizzes, metricsSvc, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	sectionHandler := handler.NewSectionHandler(sectionSvc)
	calendarHandler := handler.NewCalendarHandler(calendarSvc)
	quizHandler := handler.NewQuizHandler(quizSvc)
	profileHandler := handler.NewProfileHandler(profileSvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		courses := api.Group("/courses")
		{
			courses.GET("", courseHandler.List)
			courses.POST("", courseHandler.Create)
			courses.GET("/:id", courseHandler.Get)
			courses.GET("/:id/sections", sectionHandler.ListForCourse)
			courses.POST("/:id/sections", sectionHandler.Create)
			courses.PUT("/:id/sections/:sectionId", sectionHandler.Link)
			courses.DELETE("/:id/sections/:sectionId", sectionHandler.Unlink)
			courses.GET("/:id/sections/:sectionId/schedule", sectionHandler.GetSchedule)
			courses.PUT("/:id/sections/:sectionId/schedule", sectionHandler.SetSchedule)
			courses.DELETE("/:id/sections/:sectionId/schedule", sectionHandler.RemoveSchedule)
			if cfg.Exports.Enabled {
				courses.GET("/:id/roster/export", exportHandler.Roster)
			}
		}

		sections := api.Group("/sections")
		{
			sections.PATCH("/:id", sectionHandler.Update)
			sections.DELETE("/:id", sectionHandler.Delete)
		}

		me := api.Group("/me")
		{
			me.GET("/classes", courseHandler.MyClasses)
			me.GET("/calendar", calendarHandler.MyEvents)
			me.POST("/calendar", calendarHandler.AddEvent)
			me.GET("/quizzes/teaching", quizHandler.Teaching)
			me.GET("/quizzes/assigned", quizHandler.Assigned)
			me.GET("/profile", profileHandler.Get)
			me.PUT("/profile", profileHandler.Update)
			me.PUT("/profile/photo", profileHandler.SetPhoto)
		}

		if cfg.Exports.Enabled {
			api.GET("/schedules/export", exportHandler.Schedules)
		}
		if cfg.Dashboard.Enabled {
			api.GET("/dashboard/stats", dashboardHandler.Stats)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "persistence", cfg.Persistence.Backend)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}

// newSnapshotStore dials the configured backend and wraps it so
// snapshot failures degrade to seed data instead of failing requests.
func newSnapshotStore(cfg *config.Config, logr *zap.Logger, metrics *service.MetricsService) kvstore.Store {
	var inner kvstore.Store = kvstore.NewMemory()
	if cfg.Persistence.Backend == config.BackendRedis {
		redisStore, err := kvstore.DialRedis(cfg.Redis, cfg.Persistence.DialTimeout)
		if err != nil {
			logr.Warn("redis unavailable, falling back to in-memory snapshots", zap.Error(err))
		} else {
			inner = redisStore
		}
	}
	return kvstore.NewBestEffort(inner, logr, metrics)
}
