package postgres

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"coinpulse/internal/core/domain"
	"coinpulse/internal/core/port"
)

// ArticleRepository implements port.ArticleRepository. Tags live in their
// own table and are joined in on every read.
type ArticleRepository struct {
	pool *pgxpool.Pool
}

func NewArticleRepository(pool *pgxpool.Pool) *ArticleRepository {
	return &ArticleRepository{pool: pool}
}

const articleSelect = `SELECT a.id, a.title, a.slug, a.content_type, a.excerpt, a.body, a.author,
a.cover_path, COALESCE(array_agg(t.slug ORDER BY t.slug) FILTER (WHERE t.slug IS NOT NULL), '{}'),
a.view_count, a.is_featured, a.featured_at, a.published_at, a.created_at, a.updated_at
FROM articles a
LEFT JOIN article_tags atg ON atg.article_id = a.id
LEFT JOIN tags t ON t.id = atg.tag_id`

func scanArticle(row pgx.Row) (domain.Article, error) {
	var a domain.Article
	err := row.Scan(
		&a.ID, &a.Title, &a.Slug, &a.ContentType, &a.Excerpt, &a.Body, &a.Author,
		&a.CoverPath, &a.Tags, &a.ViewCount, &a.IsFeatured, &a.FeaturedAt, &a.PublishedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
	return a, err
}

// Create inserts the article and attaches its tags in one transaction.
func (r *ArticleRepository) Create(ctx context.Context, a *domain.Article) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = tx.QueryRow(ctx, `INSERT INTO articles
    (title, slug, content_type, excerpt, body, author, cover_path, published_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING id, created_at, updated_at`,
		a.Title, a.Slug, a.ContentType, a.Excerpt, a.Body, a.Author, a.CoverPath, a.PublishedAt,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return wrapErr("create article", err)
	}

	for _, tag := range a.Tags {
		var tagID int64
		err = tx.QueryRow(ctx, `INSERT INTO tags (slug) VALUES ($1)
ON CONFLICT (slug) DO UPDATE SET slug = EXCLUDED.slug RETURNING id`, tag).Scan(&tagID)
		if err != nil {
			return wrapErr("upsert tag", err)
		}
		if _, err = tx.Exec(ctx, `INSERT INTO article_tags (article_id, tag_id) VALUES ($1, $2)
ON CONFLICT DO NOTHING`, a.ID, tagID); err != nil {
			return wrapErr("attach tag", err)
		}
	}
	return nil
}

func (r *ArticleRepository) Get(ctx context.Context, id int64) (*domain.Article, error) {
	a, err := scanArticle(r.pool.QueryRow(ctx,
		articleSelect+` WHERE a.id = $1 AND a.deleted_at IS NULL GROUP BY a.id`, id))
	if err != nil {
		return nil, wrapErr("get article", err)
	}
	return &a, nil
}

func (r *ArticleRepository) GetBySlug(ctx context.Context, slug string) (*domain.Article, error) {
	a, err := scanArticle(r.pool.QueryRow(ctx,
		articleSelect+` WHERE a.slug = $1 AND a.deleted_at IS NULL GROUP BY a.id ORDER BY a.id DESC LIMIT 1`, slug))
	if err != nil {
		return nil, wrapErr("get article by slug", err)
	}
	return &a, nil
}

// List filters by content type, tag and featured flag, newest first.
func (r *ArticleRepository) List(ctx context.Context, f port.ArticleFilter) ([]domain.Article, error) {
	var (
		where = []string{"a.deleted_at IS NULL"}
		args  []any
	)
	if f.ContentType != "" {
		args = append(args, f.ContentType)
		where = append(where, fmt.Sprintf("a.content_type = $%d", len(args)))
	}
	if f.Tag != "" {
		args = append(args, f.Tag)
		where = append(where, fmt.Sprintf(`EXISTS (SELECT 1 FROM article_tags x JOIN tags y ON y.id = x.tag_id
WHERE x.article_id = a.id AND y.slug = $%d)`, len(args)))
	}
	if f.FeaturedOnly {
		where = append(where, "a.is_featured")
	}
	limit, offset := limitOffset(f.ListParams)
	args = append(args, limit, offset)
	query := fmt.Sprintf(`%s WHERE %s GROUP BY a.id
ORDER BY COALESCE(a.published_at, a.created_at) DESC, a.id DESC LIMIT $%d OFFSET $%d`,
		articleSelect, strings.Join(where, " AND "), len(args)-1, len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, wrapErr("list articles", err)
	}
	list, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Article, error) {
		return scanArticle(row)
	})
	return list, wrapErr("list articles", err)
}

func (r *ArticleRepository) MarkFeatured(ctx context.Context, id int64, at time.Time) error {
	return markFeatured(ctx, r.pool, "articles", id, at)
}

func (r *ArticleRepository) Delete(ctx context.Context, id int64, at time.Time) error {
	return softDelete(ctx, r.pool, "articles", id, at)
}
