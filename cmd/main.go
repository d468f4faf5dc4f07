package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Nainee99/bondeo/configs"
	"github.com/Nainee99/bondeo/internal/feed"
	"github.com/Nainee99/bondeo/internal/follow"
	"github.com/Nainee99/bondeo/internal/identity"
	"github.com/Nainee99/bondeo/internal/media"
	"github.com/Nainee99/bondeo/internal/migrate"
	"github.com/Nainee99/bondeo/internal/notification"
	"github.com/Nainee99/bondeo/internal/post"
	"github.com/Nainee99/bondeo/internal/ratelimit"
	"github.com/Nainee99/bondeo/internal/shared/db"
	"github.com/Nainee99/bondeo/internal/shared/httpx"
	"github.com/Nainee99/bondeo/internal/storage/s3"
	"github.com/Nainee99/bondeo/internal/user"
	"github.com/Nainee99/bondeo/pkg/kafka"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return func(context.Context) error { return nil }
	}
	exp, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("bondeo"),
		attribute.String("deployment.environment", "local"),
	))
	tp := trace.NewTracerProvider(trace.WithBatcher(exp), trace.WithResource(res))
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	ctx := context.Background()
	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	cfg := configs.LoadConfig()

	store := db.Open(cfg.DSN())
	if err := migrate.AutoMigrateAll(store.DB); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr, Password: cfg.RedisPass})
	}

	var events kafka.Writer
	if cfg.KafkaBrokerURL != "" {
		events = kafka.NewWriter(cfg.KafkaBrokerURL, cfg.KafkaTopic)
		defer events.Close()
	}

	var feedCache *feed.Cache
	if rdb != nil {
		feedCache = feed.NewCache(rdb)
	}

	userRepo := user.NewRepository(store)
	userSvc := user.NewService(userRepo)
	idSvc := identity.NewService(userRepo)

	notifRepo := notification.NewRepository(store)
	notifSvc := notification.NewService(notifRepo)
	notifHandler := notification.NewHandler(notifSvc)

	followRepo := follow.NewRepository(store, notifRepo)
	followSvc := follow.NewService(followRepo)
	followHandler := follow.NewHandler(followSvc)

	postRepo := post.NewRepository(store)
	var invalidator post.Invalidator
	if feedCache != nil {
		invalidator = feedCache
	}
	postSvc := post.NewService(postRepo, events, invalidator)
	postHandler := post.NewHandler(postSvc)

	feedSvc := feed.NewService(postSvc, userRepo, feedCache)
	feedHandler := feed.NewHandler(feedSvc)

	userHandler := user.NewHandler(userSvc, followSvc, postSvc)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	resolve := identity.Middleware(idSvc)

	public := func(name string, h httpx.HandlerFunc) http.Handler {
		return otelhttp.NewHandler(httpx.Wrap(h), name)
	}
	protected := func(name string, h httpx.HandlerFunc) http.Handler {
		return otelhttp.NewHandler(httpx.AuthMiddleware(cfg.JWTSecret, resolve(httpx.Wrap(h))), name)
	}
	mutating := protected
	if rdb != nil {
		limiter := ratelimit.New(rdb)
		mutating = func(name string, h httpx.HandlerFunc) http.Handler {
			inner := limiter.LimitHTTP(60, time.Minute, resolve(httpx.Wrap(h)))
			return otelhttp.NewHandler(httpx.AuthMiddleware(cfg.JWTSecret, inner), name)
		}
	}

	mux.Handle("GET /feed", public("feed.home", feedHandler.Home))
	mux.Handle("GET /suggestions", protected("feed.suggestions", feedHandler.Suggestions))

	mux.Handle("POST /posts", mutating("post.create", postHandler.Create))
	mux.Handle("DELETE /posts/{post_id}", mutating("post.delete", postHandler.Delete))
	mux.Handle("GET /posts/{post_id}", public("post.get", postHandler.GetByID))
	mux.Handle("GET /users/{user_id}/posts", public("post.list_by_user", postHandler.ListByUser))
	mux.Handle("POST /posts/{post_id}/like", mutating("post.like", postHandler.ToggleLike))
	mux.Handle("POST /posts/{post_id}/comments", mutating("post.comment", postHandler.AddComment))
	mux.Handle("GET /posts/{post_id}/comments", public("post.comments", postHandler.ListComments))

	mux.Handle("POST /users/{user_id}/follow", mutating("follow.toggle", followHandler.Toggle))
	mux.Handle("GET /users/{user_id}/follow", protected("follow.status", followHandler.Status))

	mux.Handle("GET /users/{handle}", public("user.get", userHandler.GetByHandle))
	mux.Handle("GET /me", protected("user.me", userHandler.Me))
	mux.Handle("PATCH /me", mutating("user.update", userHandler.UpdateMe))

	mux.Handle("GET /notifications", protected("notification.list", notifHandler.List))
	mux.Handle("POST /notifications/{notification_id}/read", protected("notification.read", notifHandler.MarkRead))

	if cfg.S3Endpoint != "" {
		objStore, err := s3.New(s3.Config{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Bucket:    cfg.S3Bucket,
			PublicURL: cfg.S3PublicURL,
		})
		if err != nil {
			log.Fatalf("s3: %v", err)
		}
		if err := objStore.EnsureBucket(ctx); err != nil {
			log.Fatalf("s3 ensure bucket: %v", err)
		}
		mediaHandler := media.NewHandler(media.NewService(objStore))
		mux.Handle("POST /media/upload", mutating("media.upload", mediaHandler.Upload))
	}

	srv := &http.Server{
		Addr:              cfg.AppPort,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	log.Printf("bondeo listening on %s", cfg.AppPort)
	log.Fatal(srv.ListenAndServe())
}
