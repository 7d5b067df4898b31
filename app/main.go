package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"example.com/cosmatic-storefront/app/internal/config"
	domcontact "example.com/cosmatic-storefront/app/internal/domain/contact"
	"example.com/cosmatic-storefront/app/internal/domain/storage"
	"example.com/cosmatic-storefront/app/internal/infra/catalog"
	"example.com/cosmatic-storefront/app/internal/infra/i18n"
	"example.com/cosmatic-storefront/app/internal/infra/logging"
	"example.com/cosmatic-storefront/app/internal/infra/mail"
	"example.com/cosmatic-storefront/app/internal/infra/persistence/memory"
	"example.com/cosmatic-storefront/app/internal/infra/persistence/mysql"
	"example.com/cosmatic-storefront/app/internal/infra/persistence/postgres"
	redisstore "example.com/cosmatic-storefront/app/internal/infra/persistence/redis"
	"example.com/cosmatic-storefront/app/internal/infra/security"
	httpapi "example.com/cosmatic-storefront/app/internal/interface/http"
	cartuc "example.com/cosmatic-storefront/app/internal/usecase/cart"
	categoryuc "example.com/cosmatic-storefront/app/internal/usecase/category"
	"example.com/cosmatic-storefront/app/internal/usecase/checkout"
	contactuc "example.com/cosmatic-storefront/app/internal/usecase/contact"
	productuc "example.com/cosmatic-storefront/app/internal/usecase/product"
	sessionuc "example.com/cosmatic-storefront/app/internal/usecase/session"
)

const (
	connectTimeout = 5 * time.Second
	sweepInterval  = time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	log, err := logging.New(cfg.LogLevel, os.Stdout)
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, closeBackend, err := openStorage(ctx, cfg)
	if err != nil {
		log.WithError(err).WithField("driver", cfg.StorageDriver).Fatal("storage unavailable")
	}
	defer closeBackend()

	cat, err := catalog.Load()
	if err != nil {
		log.WithError(err).Fatal("catalog")
	}
	translator, err := i18n.New()
	if err != nil {
		log.WithError(err).Fatal("dictionaries")
	}

	var notifier domcontact.Notifier
	if cfg.SMTPAddr == "" {
		notifier = mail.NewLogNotifier(log)
	} else {
		notifier = mail.NewSMTPNotifier(cfg.SMTPAddr, cfg.SMTPFrom, cfg.SupportEmail)
	}

	sessions := sessionuc.NewRegistry(backend, log)
	go sessions.Run(ctx, sweepInterval, cfg.SessionIdleTTL)

	api := httpapi.NewAPI(httpapi.Dependencies{
		ProductService:  productuc.NewService(catalog.NewProductRepository(cat)),
		CategoryService: categoryuc.NewService(catalog.NewCategoryRepository(cat)),
		ContactService:  contactuc.NewService(notifier, log),
		CheckoutService: checkout.NewService(log),
		Sessions:        sessions,
		Translator:      translator,
		TokenService:    security.NewJWTService(cfg.SessionSecret, cfg.SessionTTL),
		CartPolicy: cartuc.Policy{
			Currency:              cfg.Currency,
			FreeShippingThreshold: cfg.FreeShippingThreshold,
		},
		SessionTTL: cfg.SessionTTL,
		Logger:     log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           api.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("shutdown")
		}
	}()

	log.WithFields(logrus.Fields{"port": cfg.Port, "storage": cfg.StorageDriver}).Info("storefront listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.WithError(err).Fatal("server stopped")
	}
}

// openStorage connects the slot backend named by cfg.StorageDriver.
func openStorage(ctx context.Context, cfg *config.Config) (storage.Slots, func(), error) {
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	switch cfg.StorageDriver {
	case config.StorageRedis:
		client := goredis.NewClient(&goredis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		store := redisstore.NewSlotStore(client, redisstore.DefaultPrefix, cfg.RedisTTL)
		if err := store.Ping(ctx); err != nil {
			client.Close()
			return nil, nil, err
		}
		return store, func() { client.Close() }, nil

	case config.StorageMySQL:
		db, err := sql.Open("mysql", cfg.MySQLDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := db.PingContext(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		repo := mysql.NewSlotRepository(db)
		if err := repo.EnsureSchema(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}
		return repo, func() { db.Close() }, nil

	case config.StoragePostgres:
		pool, err := pgxpool.New(ctx, cfg.PGDSN)
		if err != nil {
			return nil, nil, err
		}
		if err := pool.Ping(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		repo := postgres.NewSlotRepository(pool)
		if err := repo.EnsureSchema(ctx); err != nil {
			pool.Close()
			return nil, nil, err
		}
		return repo, pool.Close, nil

	default:
		return memory.NewSlotStore(), func() {}, nil
	}
}
