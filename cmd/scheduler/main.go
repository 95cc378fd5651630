package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/segyhp/loan-guide/internal/config"
	"github.com/segyhp/loan-guide/internal/repository"
	"github.com/segyhp/loan-guide/internal/service"
	"github.com/segyhp/loan-guide/pkg/logger"
)

// cacheWarmer is the part of the service the cron job drives
type cacheWarmer interface {
	WarmCache(ctx context.Context) (int, error)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}

	log := logger.New(cfg.Logging)
	log.Info("Starting loan guide scheduler...")

	db, err := sqlx.Connect("postgres", cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer redisClient.Close()

	svc := service.NewLoanGuideService(
		repository.NewLoanGuideRepository(db),
		repository.NewRedisCache(redisClient),
		cfg.Cache.TTL,
		log,
	)

	c := cron.New(
		cron.WithLocation(cfg.SchedulerLocation()),
		cron.WithChain(cron.SkipIfStillRunning(cron.DefaultLogger)),
	)

	if err := setupCronJobs(c, cfg, svc, log); err != nil {
		log.Fatalf("Failed to schedule jobs: %v", err)
	}

	c.Start()
	log.WithField("spec", cfg.Scheduler.Spec).Info("Scheduler started successfully")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down scheduler...")
	<-c.Stop().Done()
	log.Info("Scheduler stopped")
}

func setupCronJobs(c *cron.Cron, cfg *config.Config, warmer cacheWarmer, log logrus.FieldLogger) error {
	_, err := c.AddFunc(cfg.Scheduler.Spec, func() {
		warmLoanGuides(warmer, cacheJobTimeout(cfg), log)
	})
	return err
}

// A run never outlives its own interval when the spec is @every
func cacheJobTimeout(cfg *config.Config) time.Duration {
	schedule, err := cron.ParseStandard(cfg.Scheduler.Spec)
	if err != nil {
		return 30 * time.Minute
	}
	now := time.Now()
	next := schedule.Next(now)
	if interval := schedule.Next(next).Sub(next); interval > 0 {
		return interval
	}
	return 30 * time.Minute
}

func warmLoanGuides(warmer cacheWarmer, timeout time.Duration, log logrus.FieldLogger) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	start := time.Now()
	refreshed, err := warmer.WarmCache(ctx)
	entry := log.WithFields(logrus.Fields{
		"refreshed": refreshed,
		"duration":  time.Since(start).String(),
	})
	if err != nil {
		entry.WithError(err).Warn("loan guide cache warm finished with errors")
		return
	}
	entry.Info("loan guide cache warm finished")
}
