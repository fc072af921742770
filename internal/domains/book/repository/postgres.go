package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"bookcatalog-backend/internal/domains/book"
	"bookcatalog-backend/pkg/cache"
	"bookcatalog-backend/pkg/logger"
)

const (
	cacheKeyPrefix = "book:id:"
	cachePattern   = "book:*"
	cacheTTL       = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.BookRepository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) Create(ctx context.Context, entity *book.Book) (*book.Book, error) {
	const query = `
		INSERT INTO books (id, title, isbn, category_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, title, isbn, category_id, created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Title,
		entity.ISBN,
		entity.CategoryID,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanBook(row)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "books_category_id_fkey" {
			return nil, book.ErrCategoryNotFound
		}
		logger.Error("book create: database error", err)
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	r.invalidate(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*book.Book, error) {
	key := cacheKeyPrefix + id.String()

	var cached book.Book
	if hit, err := r.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	const query = `
		SELECT id, title, isbn, category_id, created_at, updated_at
		FROM books
		WHERE id = $1
	`

	entity, err := scanBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		logger.Error("book get: database error", err)
		return nil, fmt.Errorf("failed to get book: %w", err)
	}

	if err := r.cache.Set(ctx, key, entity, cacheTTL); err != nil {
		logger.Error("book cache set failed", err)
	}
	return entity, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]book.Book, error) {
	const query = `
		SELECT id, title, isbn, category_id, created_at, updated_at
		FROM books
		ORDER BY created_at, id
	`

	return r.queryBooks(ctx, query)
}

func (r *postgresRepository) GetByCategoryID(ctx context.Context, categoryID uuid.UUID) ([]book.Book, error) {
	// Exact owner match only; books in subcategories belong to those
	// subcategories, not to the parent.
	const query = `
		SELECT id, title, isbn, category_id, created_at, updated_at
		FROM books
		WHERE category_id = $1
		ORDER BY created_at, id
	`

	return r.queryBooks(ctx, query, categoryID)
}

func (r *postgresRepository) Update(ctx context.Context, entity *book.Book) (*book.Book, error) {
	const query = `
		UPDATE books
		SET title = $2, isbn = $3, category_id = $4, updated_at = $5
		WHERE id = $1
		RETURNING id, title, isbn, category_id, created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Title,
		entity.ISBN,
		entity.CategoryID,
		entity.UpdatedAt,
	)

	updated, err := scanBook(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.ConstraintName == "books_category_id_fkey" {
			return nil, book.ErrCategoryNotFound
		}
		logger.Error("book update: database error", err)
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	r.invalidate(ctx)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM books WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		logger.Error("book delete: database error", err)
		return fmt.Errorf("failed to delete book: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) queryBooks(ctx context.Context, query string, args ...interface{}) ([]book.Book, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		logger.Error("book list: database error", err)
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer rows.Close()

	var entities []book.Book
	for rows.Next() {
		entity, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		entities = append(entities, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read books: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, cachePattern); err != nil {
		logger.Error("book cache invalidation failed", err)
	}
}

func scanBook(row pgx.Row) (*book.Book, error) {
	entity := &book.Book{}
	err := row.Scan(
		&entity.ID,
		&entity.Title,
		&entity.ISBN,
		&entity.CategoryID,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}
