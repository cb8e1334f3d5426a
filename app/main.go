package main

import (
	"context"
	"fmt"
	"net/http"

	"maintenance-system/internal/routes"
	"maintenance-system/internal/store"
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/customvalidator"
	"maintenance-system/pkg/database/postgresql"
	apperrors "maintenance-system/pkg/errors"
	applogger "maintenance-system/pkg/logger"
	"maintenance-system/pkg/utils"
	"maintenance-system/seeders"

	"github.com/go-playground/validator/v10"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
)

func main() {
	e := echo.New()
	logger := applogger.NewLogger()
	defer logger.Sync()

	cfg := config.New()

	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		DisableStackAll: true,
		StackSize:       1 << 10,
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			logger.Error("!!! ОБНАРУЖЕНА ПАНИКА (PANIC) !!!",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Error(err),
				zap.String("stack", string(stack)),
			)
			if !c.Response().Committed {
				httpErr := apperrors.NewHttpError(http.StatusInternalServerError, "Внутренняя ошибка сервера", err, nil)
				utils.ErrorResponse(c, httpErr, logger)
			}
			return err
		},
	}))

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:  []string{"*"},
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	v := validator.New()
	if err := customvalidator.RegisterCustomValidations(v); err != nil {
		logger.Fatal("Ошибка регистрации кастомных правил валидации", zap.Error(err))
	}
	e.Validator = utils.NewValidator(v)

	ctx := context.Background()
	storage, cleanup, err := newStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("не удалось инициализировать хранилище", zap.Error(err))
	}
	defer cleanup()

	if cfg.Store.SeedOnStart {
		if err := seeders.Run(ctx, storage); err != nil {
			logger.Fatal("не удалось наполнить хранилище демо-данными", zap.Error(err))
		}
	}

	routes.InitRouter(e, storage, logger)

	logger.Info("🚀 Сервер запущен", zap.String("port", cfg.Server.Port), zap.String("store", cfg.Store.Driver))
	if err := e.Start(":" + cfg.Server.Port); err != nil {
		logger.Fatal("Ошибка запуска сервера", zap.Error(err))
	}
}

// newStore собирает драйвер Record Store по конфигу:
// memory | file | redis | postgres.
func newStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (store.RecordStore, func(), error) {
	noop := func() {}

	switch cfg.Store.Driver {
	case "memory":
		return store.NewMemoryStore(), noop, nil

	case "file":
		s, err := store.NewFileStore(cfg.Store.DataFile)
		if err != nil {
			return nil, nil, err
		}
		return s, noop, nil

	case "redis":
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if _, err := client.Ping(ctx).Result(); err != nil {
			return nil, nil, fmt.Errorf("не удалось подключиться к Redis (%s): %w", cfg.Redis.Address, err)
		}
		return store.NewRedisStore(client), func() { client.Close() }, nil

	case "postgres":
		pool, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			return nil, nil, err
		}
		if err := postgresql.Migrate(pool); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("не удалось накатить миграции: %w", err)
		}
		logger.Info("Миграции успешно применены")
		return store.NewPostgresStore(pool), pool.Close, nil

	default:
		return nil, nil, fmt.Errorf("неизвестный драйвер хранилища: %q", cfg.Store.Driver)
	}
}
