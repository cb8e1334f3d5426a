package seeders

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"maintenance-system/internal/store"
)

// Run наполняет пустые коллекции демо-данными. Коллекция, в которой уже
// есть хоть одна запись, не трогается — поведение повторяет инициализацию
// исходных данных: сидер безопасно запускать на каждом старте.
func Run(ctx context.Context, storage store.RecordStore) error {
	log.Println("▶️  Запуск наполнения демо-данными...")

	now := time.Now()
	fixtures := map[string]interface{}{
		store.CollectionTeams:      demoTeams(),
		store.CollectionCategories: demoCategories(),
		store.CollectionEquipment:  demoEquipment(),
		store.CollectionRequests:   demoRequests(now),
	}

	for _, collection := range store.Collections {
		seeded, err := seedCollection(ctx, storage, collection, fixtures[collection])
		if err != nil {
			return fmt.Errorf("сидер коллекции %q: %w", collection, err)
		}
		if seeded {
			log.Printf("  - Коллекция %q наполнена демо-данными.", collection)
		} else {
			log.Printf("  - Коллекция %q уже содержит данные. Пропускаем.", collection)
		}
	}

	log.Println("✅ Наполнение демо-данными завершено!")
	return nil
}

func seedCollection(ctx context.Context, storage store.RecordStore, collection string, fixture interface{}) (bool, error) {
	doc, err := storage.GetAll(ctx, collection)
	if err != nil {
		return false, err
	}
	if len(doc) > 0 {
		var existing []json.RawMessage
		if err := json.Unmarshal(doc, &existing); err == nil && len(existing) > 0 {
			return false, nil
		}
	}

	raw, err := json.Marshal(fixture)
	if err != nil {
		return false, err
	}
	return true, storage.SetAll(ctx, collection, raw)
}
