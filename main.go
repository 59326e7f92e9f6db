package main

import (
	"context"
	"court_manager/config"
	"court_manager/database"
	"court_manager/handler"
	"court_manager/helper"
	"court_manager/logger"
	"court_manager/notify"
	"court_manager/repository"
	"court_manager/router"
	"court_manager/service"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	zlog, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatal(err)
	}
	defer zlog.Sync()

	db, err := database.Connect(cfg, zlog)
	if err != nil {
		zlog.Fatal("database", zap.Error(err))
	}

	surfaceTypeRepo := repository.NewSurfaceTypeRepository(db)
	courtRepo := repository.NewCourtRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	reservationRepo := repository.NewReservationRepository(db)

	var broker notify.Broker = notify.NopBroker{}
	if cfg.RedisEnabled {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		defer rdb.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := rdb.Ping(ctx).Err(); err != nil {
			zlog.Warn("redis unreachable, live feed will retry on demand", zap.String("addr", cfg.RedisAddr), zap.Error(err))
		}
		cancel()
		broker = notify.NewRedisBroker(rdb, zlog)
	}

	courts := service.NewCourtService(courtRepo, surfaceTypeRepo, zlog)
	surfaceTypes := service.NewSurfaceTypeService(surfaceTypeRepo, zlog)
	reservations := service.NewReservationService(reservationRepo, courtRepo, customerRepo, surfaceTypeRepo, broker, zlog)

	var scheduler gocron.Scheduler
	if cfg.ReportEnabled {
		scheduler, err = startReport(cfg, reservationRepo, zlog)
		if err != nil {
			zlog.Fatal("occupancy report", zap.Error(err))
		}
	}

	app := router.NewApp(cfg, zlog)
	router.SetupRoutes(app, handler.New(courts, surfaceTypes, reservations, broker, db, zlog))

	go func() {
		if err := app.Listen(cfg.AppPort); err != nil {
			zlog.Fatal("listen", zap.Error(err))
		}
	}()

	// graceful shutdown
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	<-ch
	zlog.Info("shutting down")

	if scheduler != nil {
		if err := scheduler.Shutdown(); err != nil {
			zlog.Warn("scheduler shutdown", zap.Error(err))
		}
	}
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		zlog.Warn("server shutdown", zap.Error(err))
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

func startReport(cfg config.Config, reservations helper.ReservationRange, zlog *zap.Logger) (gocron.Scheduler, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	hour, minute, err := cfg.ReportTime()
	if err != nil {
		return nil, err
	}
	return helper.StartOccupancyReportScheduler(helper.NewOccupancyReporter(reservations, zlog, loc), hour, minute)
}
