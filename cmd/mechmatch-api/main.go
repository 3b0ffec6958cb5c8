// README: Entry point; loads config, wires modules, starts the HTTP server.
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mechmatch/internal/config"
	httptransport "mechmatch/internal/http"
	"mechmatch/internal/infra"
	"mechmatch/internal/modules/availability"
	"mechmatch/internal/modules/booking"
	"mechmatch/internal/modules/catalog"
	"mechmatch/internal/modules/dispatch"
	"mechmatch/internal/modules/mechanic"
	"mechmatch/internal/modules/rating"
	"mechmatch/internal/modules/report"
	"mechmatch/internal/modules/upload"
	"mechmatch/internal/modules/user"
	"mechmatch/internal/realtime"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer dbPool.Close()

	redisClient := infra.NewRedis(cfg.Redis.Addr)

	var uploadSvc *upload.Service
	if cfg.Firebase.StorageBucket != "" {
		bucket, err := infra.NewStorageBucket(ctx, cfg.Firebase.CredentialsFile, cfg.Firebase.StorageBucket)
		if err != nil {
			log.Fatalf("firebase init: %v", err)
		}
		uploadSvc = upload.NewService(bucket, cfg.Firebase.StorageBucket)
	} else {
		logger.Warn("MECH_FIREBASE_STORAGE_BUCKET unset, image uploads disabled")
	}

	registry := realtime.NewRegistry(logger)

	catalogStore := catalog.NewStore(dbPool)

	bookingStore := booking.NewStore(dbPool)
	ratingStore := rating.NewStore(dbPool)

	mechanicStore := mechanic.NewStore(dbPool)
	geoIndex := mechanic.NewGeoIndex(redisClient)
	mechanicSvc := mechanic.NewService(mechanicStore, geoIndex, bookingStore, ratingStore, logger)

	userStore := user.NewStore(dbPool)
	userSvc := user.NewService(userStore, mechanicStore)

	availabilityStore := availability.NewStore(dbPool)
	availabilitySvc := availability.NewService(availabilityStore, mechanicStore, logger)

	selector := dispatch.NewSelector(mechanicStore, availabilitySvc, nil)

	bookingSvc := booking.NewService(bookingStore, userStore, catalogStore, selector, registry, nil, logger)

	ratingSvc := rating.NewService(ratingStore, bookingStore)

	reportStore := report.NewStore(dbPool)

	handler := httptransport.NewServer(httptransport.ServerDeps{
		Users:        userSvc,
		Mechanics:    mechanicSvc,
		Catalog:      catalogStore,
		Availability: availabilitySvc,
		Bookings:     bookingSvc,
		BookingReads: bookingStore,
		Ratings:      ratingSvc,
		Reports:      reportStore,
		Upload:       uploadSvc,
		Registry:     registry,
		NearbyKm:     cfg.Dispatch.NearbyRadiusKm,
		Log:          logger,
	})

	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler.Routes()}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("shutdown", "err", err)
		}
	}()

	logger.Info("listening", "addr", cfg.HTTP.Addr)
	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
