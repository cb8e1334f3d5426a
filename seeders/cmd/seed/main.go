package main

import (
	"context"
	"flag"
	"log"

	"maintenance-system/internal/store"
	"maintenance-system/pkg/config"
	"maintenance-system/pkg/database/postgresql"
	"maintenance-system/seeders"
)

// Ручной запуск сидера поверх file- или postgres-хранилища:
//
//	go run ./seeders/cmd/seed -driver file
//	go run ./seeders/cmd/seed -driver postgres
func main() {
	log.Println("======================================================")
	log.Println("       🌱 СИДЕР ДЕМО-ДАННЫХ (GearGuard)               ")
	log.Println("======================================================")

	cfg := config.New()
	driver := flag.String("driver", cfg.Store.Driver, "Драйвер хранилища: file | postgres")
	flag.Parse()

	ctx := context.Background()

	var storage store.RecordStore
	switch *driver {
	case "file":
		log.Println("📦 Файл хранилища:", cfg.Store.DataFile)
		s, err := store.NewFileStore(cfg.Store.DataFile)
		if err != nil {
			log.Fatalf("❌ Не удалось открыть файловое хранилище: %v", err)
		}
		storage = s

	case "postgres":
		log.Println("📦 Используется DSN:", cfg.Postgres.DSN)
		pool, err := postgresql.Connect(ctx, cfg.Postgres.DSN)
		if err != nil {
			log.Fatalf("❌ Не удалось подключиться к PostgreSQL: %v", err)
		}
		defer pool.Close()
		if err := postgresql.Migrate(pool); err != nil {
			log.Fatalf("❌ Не удалось накатить миграции: %v", err)
		}
		storage = store.NewPostgresStore(pool)

	default:
		log.Fatalf("❌ Неизвестный драйвер: %q (поддерживаются file и postgres)", *driver)
	}

	if err := seeders.Run(ctx, storage); err != nil {
		log.Fatalf("❌ Ошибка сидера: %v", err)
	}
	log.Println("======================================================")
}
