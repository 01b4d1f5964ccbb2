package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"manshurat/internal/adapters/fixtures"
	"manshurat/internal/adapters/httpapi"
	"manshurat/internal/adapters/memory"
	"manshurat/internal/adapters/metrics"
	redisadapter "manshurat/internal/adapters/redis"
	"manshurat/internal/config"
	followerapp "manshurat/internal/core/follower/service"
	"manshurat/internal/core/interaction"
	notificationapp "manshurat/internal/core/notification/service"
	postapp "manshurat/internal/core/post/service"
	"manshurat/internal/core/store"
	timelineapp "manshurat/internal/core/timeline/service"
	userapp "manshurat/internal/core/user/service"
	videoapp "manshurat/internal/core/video/service"
	"manshurat/internal/ports/events"
	"manshurat/internal/workers"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.InitLogger()
	defer func() { _ = config.Logger.Sync() }()
	settings := config.Init()

	if settings.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	initial, err := loadSeed(settings)
	if err != nil {
		config.Logger.Fatal("Error loading seed data", zap.Error(err))
	}
	config.Logger.Info("✅ Seed data loaded",
		zap.Int("users", len(initial.Users)),
		zap.Int("posts", len(initial.Posts)),
		zap.Int("videos", len(initial.Videos)),
		zap.Int64("viewerID", initial.ViewerID))

	useRedis, err := config.InitRedis(settings)
	if err != nil {
		config.Logger.Fatal("Error initializing Redis", zap.Error(err))
	}
	defer closeResources(config.Logger)

	var (
		publisher events.Publisher
		reader    httpapi.EventReader
	)
	if useRedis {
		publisher = redisadapter.NewEventPublisherRedis(config.RedisClient, settings.EventStream, settings.EventMaxLen)
	} else {
		log := memory.NewEventLog(0)
		publisher, reader = log, log
	}

	// آداپتر خروجی
	st := memory.NewSnapshotStore(initial)
	outbox := workers.NewOutbox(settings.OutboxSize, config.Logger)

	userSvc := userapp.NewUserService(st, outbox, settings.SuggestedLimit)
	postSvc := postapp.NewPostService(st, outbox)
	videoSvc := videoapp.NewVideoService(st, outbox)
	timelineSvc := timelineapp.NewTimelineService(st)
	followerSvc := followerapp.NewFollowerService(st, outbox)
	notificationSvc := notificationapp.NewNotificationService(st, outbox)

	readMarker := workers.NewReadMarker(notificationSvc, settings.ReadDelay, config.Logger)
	defer readMarker.Stop()

	r := httpapi.SetupRoutes(httpapi.UseCases{
		Users:         userSvc,
		Posts:         postSvc,
		Videos:        videoSvc,
		Timeline:      timelineSvc,
		Followers:     followerSvc,
		Notifications: notificationSvc,
		Panel:         readMarker,
		Events:        reader,
	}, config.Logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	fanout := workers.NewEventFanout(outbox, metrics.InstrumentPublisher(publisher), settings.BatchSize, config.Logger)
	done := make(chan struct{})
	go func() {
		defer close(done)
		fanout.Run(ctx)
	}()

	srv := &http.Server{Addr: ":" + settings.AppPort, Handler: r}
	go func() {
		config.Logger.Info("App is running...", zap.String("port", settings.AppPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			config.Logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	<-ctx.Done()
	config.Logger.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		config.Logger.Error("Error shutting down server", zap.Error(err))
	}
	<-done
}

// loadSeed builds the initial snapshot from SEED_FILE or the bundled demo data
// and selects VIEWER_ID as the current viewer.
func loadSeed(s *config.Settings) (*store.Snapshot, error) {
	now := time.Now()
	var (
		snap *store.Snapshot
		err  error
	)
	if s.SeedFile != "" {
		snap, err = fixtures.LoadFile(s.SeedFile, now)
	} else {
		snap, err = fixtures.Demo(now)
	}
	if err != nil {
		return nil, err
	}
	if s.ViewerID > 0 && s.ViewerID != snap.ViewerID {
		snap, _, err = interaction.SwitchViewer(snap, s.ViewerID)
		if err != nil {
			return nil, err
		}
	}
	return snap, nil
}

// closeResources closes the Redis connection if one was opened.
func closeResources(logger *zap.Logger) {
	if config.RedisClient == nil {
		return
	}
	if err := config.RedisClient.Close(); err != nil {
		logger.Error("Error closing Redis connection:", zap.Error(err))
	}
}
