package store

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const collectionsTable = "collections"

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// PostgresStore хранит каждую коллекцию одной строкой таблицы collections
// с JSONB-документом. Схему накатывает goose-миграция (см. migrations/).
type PostgresStore struct {
	pool *pgxpool.Pool
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

func (s *PostgresStore) GetAll(ctx context.Context, collection string) ([]byte, error) {
	query, args, err := psql.
		Select("document").
		From(collectionsTable).
		Where(sq.Eq{"name": collection}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var doc []byte
	if err := s.pool.QueryRow(ctx, query, args...).Scan(&doc); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return doc, nil
}

func (s *PostgresStore) SetAll(ctx context.Context, collection string, document []byte) error {
	query, args, err := psql.
		Insert(collectionsTable).
		Columns("name", "document").
		Values(collection, document).
		Suffix("ON CONFLICT (name) DO UPDATE SET document = EXCLUDED.document, updated_at = NOW()").
		ToSql()
	if err != nil {
		return err
	}

	_, err = s.pool.Exec(ctx, query, args...)
	return err
}
