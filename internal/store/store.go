package store

import "context"

// Коллекции Record Store.
const (
	CollectionEquipment  = "equipment"
	CollectionTeams      = "teams"
	CollectionCategories = "categories"
	CollectionRequests   = "requests"
)

var Collections = []string{
	CollectionEquipment,
	CollectionTeams,
	CollectionCategories,
	CollectionRequests,
}

// RecordStore — контракт хранилища: каждая коллекция целиком хранится как один
// JSON-документ (массив записей). Запись — всегда полная замена документа,
// частичных обновлений контракт не предусматривает.
//
// GetAll возвращает nil без ошибки, если коллекция еще не записывалась.
type RecordStore interface {
	GetAll(ctx context.Context, collection string) ([]byte, error)
	SetAll(ctx context.Context, collection string, document []byte) error
}
