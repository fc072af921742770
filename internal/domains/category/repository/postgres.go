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

	"bookcatalog-backend/internal/domains/category"
	"bookcatalog-backend/pkg/cache"
	"bookcatalog-backend/pkg/logger"
)

const (
	cacheKeyPrefix = "category:id:"
	cachePattern   = "category:*"
	cacheTTL       = 5 * time.Minute
)

type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) category.CategoryRepository {
	return &postgresRepository{pool: pool, cache: cache}
}

func (r *postgresRepository) Create(ctx context.Context, entity *category.Category) (*category.Category, error) {
	const query = `
		INSERT INTO categories (id, name, slug, parent_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, slug, parent_id, created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Slug,
		entity.ParentID,
		entity.CreatedAt,
		entity.UpdatedAt,
	)

	created, err := scanCategory(row)
	if err != nil {
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		logger.Error("category create: database error", err)
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	r.invalidate(ctx)
	return created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*category.Category, error) {
	key := cacheKeyPrefix + id.String()

	var cached category.Category
	if hit, err := r.cache.Get(ctx, key, &cached); err == nil && hit {
		return &cached, nil
	}

	const query = `
		SELECT id, name, slug, parent_id, created_at, updated_at
		FROM categories
		WHERE id = $1
	`

	entity, err := scanCategory(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		logger.Error("category get: database error", err)
		return nil, fmt.Errorf("failed to get category: %w", err)
	}

	if err := r.cache.Set(ctx, key, entity, cacheTTL); err != nil {
		logger.Error("category cache set failed", err)
	}
	return entity, nil
}

func (r *postgresRepository) GetAll(ctx context.Context) ([]category.Category, error) {
	const query = `
		SELECT id, name, slug, parent_id, created_at, updated_at
		FROM categories
		ORDER BY created_at, id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		logger.Error("category list: database error", err)
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	var entities []category.Category
	for rows.Next() {
		entity, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		entities = append(entities, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read categories: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) Update(ctx context.Context, entity *category.Category) (*category.Category, error) {
	const query = `
		UPDATE categories
		SET name = $2, slug = $3, parent_id = $4, updated_at = $5
		WHERE id = $1
		RETURNING id, name, slug, parent_id, created_at, updated_at
	`

	row := r.pool.QueryRow(ctx, query,
		entity.ID,
		entity.Name,
		entity.Slug,
		entity.ParentID,
		entity.UpdatedAt,
	)

	updated, err := scanCategory(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, category.ErrCategoryNotFound
		}
		if mapped := mapConstraintError(err); mapped != nil {
			return nil, mapped
		}
		logger.Error("category update: database error", err)
		return nil, fmt.Errorf("failed to update category: %w", err)
	}

	r.invalidate(ctx)
	return updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	const query = `DELETE FROM categories WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		// Backstop: the service checks dependents first, but a concurrent
		// write can still trip the foreign keys.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.ConstraintName {
			case "books_category_id_fkey":
				return category.ErrHasBooks
			case "categories_parent_id_fkey":
				return category.ErrHasChildren
			}
		}
		logger.Error("category delete: database error", err)
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return category.ErrCategoryNotFound
	}

	r.invalidate(ctx)
	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM categories WHERE id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category existence: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) ExistsByName(ctx context.Context, name string, excludeID *uuid.UUID) (bool, error) {
	const query = `
		SELECT EXISTS(
			SELECT 1 FROM categories
			WHERE lower(name) = lower($1) AND ($2::uuid IS NULL OR id <> $2)
		)
	`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, name, excludeID).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check category name: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) GetAncestors(ctx context.Context, id uuid.UUID) ([]category.Category, error) {
	const query = `
		WITH RECURSIVE ancestors AS (
			SELECT c.id, c.name, c.slug, c.parent_id, c.created_at, c.updated_at, 1 AS depth
			FROM categories c
			WHERE c.id = (SELECT parent_id FROM categories WHERE id = $1)
			UNION ALL
			SELECT c.id, c.name, c.slug, c.parent_id, c.created_at, c.updated_at, a.depth + 1
			FROM categories c
			INNER JOIN ancestors a ON c.id = a.parent_id
		)
		SELECT id, name, slug, parent_id, created_at, updated_at
		FROM ancestors
		ORDER BY depth
	`

	rows, err := r.pool.Query(ctx, query, id)
	if err != nil {
		logger.Error("category ancestors: database error", err)
		return nil, fmt.Errorf("failed to load ancestors: %w", err)
	}
	defer rows.Close()

	var entities []category.Category
	for rows.Next() {
		entity, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ancestor: %w", err)
		}
		entities = append(entities, *entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read ancestors: %w", err)
	}

	return entities, nil
}

func (r *postgresRepository) HasChildren(ctx context.Context, id uuid.UUID) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM categories WHERE parent_id = $1)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, id).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check subcategories: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) CountBooks(ctx context.Context, id uuid.UUID) (int64, error) {
	const query = `SELECT COUNT(*) FROM books WHERE category_id = $1`

	var count int64
	if err := r.pool.QueryRow(ctx, query, id).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books in category: %w", err)
	}
	return count, nil
}

func (r *postgresRepository) invalidate(ctx context.Context) {
	if err := r.cache.DeletePattern(ctx, cachePattern); err != nil {
		logger.Error("category cache invalidation failed", err)
	}
}

// scanCategory reads one category row from either a Row or Rows.
func scanCategory(row pgx.Row) (*category.Category, error) {
	entity := &category.Category{}
	err := row.Scan(
		&entity.ID,
		&entity.Name,
		&entity.Slug,
		&entity.ParentID,
		&entity.CreatedAt,
		&entity.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return entity, nil
}

// mapConstraintError translates unique/foreign-key violations raised by the
// schema into domain errors. Returns nil for anything else.
func mapConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return nil
	}
	switch pgErr.ConstraintName {
	case "idx_categories_name", "idx_categories_slug":
		return category.ErrDuplicateName
	case "categories_parent_id_fkey":
		return category.ErrParentNotFound
	}
	return nil
}
