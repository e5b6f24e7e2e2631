package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/publishing/post-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/post-service/domain/errors"
	"inkwell/contexts/publishing/post-service/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const enrichedSelect = "posts.*, users.name AS author_name, users.role AS author_role, categories.name AS category_name"

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) List(ctx context.Context, filter ports.ListFilter) ([]ports.EnrichedPost, int64, error) {
	counter := r.db.WithContext(ctx).Model(&postModel{})
	if !filter.IncludeSuspended {
		counter = counter.Where("posts.status = ?", string(entities.StatusActive))
	}
	var total int64
	if err := counter.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	tx := r.enrichedQuery(ctx)
	if !filter.IncludeSuspended {
		tx = tx.Where("posts.status = ?", string(entities.StatusActive))
	}
	var rows []enrichedRow
	if err := tx.Order("posts.created_at ASC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Scan(&rows).
		Error; err != nil {
		return nil, 0, err
	}

	items := make([]ports.EnrichedPost, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEnriched())
	}
	return items, total, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (ports.EnrichedPost, error) {
	var row enrichedRow
	tx := r.enrichedQuery(ctx).Where("posts.id = ?", id).Limit(1).Scan(&row)
	if tx.Error != nil {
		return ports.EnrichedPost{}, tx.Error
	}
	if tx.RowsAffected == 0 {
		return ports.EnrichedPost{}, domainerrors.ErrPostNotFound
	}
	return row.toEnriched(), nil
}

// Create inserts then reads back the enriched record; the two round trips
// are not wrapped in a transaction.
func (r *Repository) Create(ctx context.Context, post entities.Post) (ports.EnrichedPost, error) {
	row := fromEntity(post)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return ports.EnrichedPost{}, mapForeignKey(err)
	}
	return r.GetByID(ctx, post.ID)
}

func (r *Repository) Update(ctx context.Context, id string, patch entities.PostPatch) (ports.EnrichedPost, error) {
	assignments := map[string]any{}
	if patch.Title != nil {
		assignments["title"] = *patch.Title
	}
	if patch.Content != nil {
		assignments["content"] = *patch.Content
	}
	if patch.ImageURL != nil {
		assignments["image_url"] = *patch.ImageURL
	}
	if patch.Status != nil {
		assignments["status"] = *patch.Status
	}
	if patch.CategoryID != nil {
		assignments["category_id"] = *patch.CategoryID
	}

	result := r.db.WithContext(ctx).
		Model(&postModel{}).
		Where("id = ?", id).
		Updates(assignments)
	if result.Error != nil {
		return ports.EnrichedPost{}, mapForeignKey(result.Error)
	}
	if result.RowsAffected == 0 {
		return ports.EnrichedPost{}, domainerrors.ErrPostNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&postModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrPostNotFound
	}
	return nil
}

func (r *Repository) IncrementLikes(ctx context.Context, id string) (ports.EnrichedPost, error) {
	return r.increment(ctx, id, "likes_count")
}

func (r *Repository) IncrementShares(ctx context.Context, id string) (ports.EnrichedPost, error) {
	return r.increment(ctx, id, "share_count")
}

func (r *Repository) increment(ctx context.Context, id string, column string) (ports.EnrichedPost, error) {
	result := r.db.WithContext(ctx).
		Model(&postModel{}).
		Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return ports.EnrichedPost{}, result.Error
	}
	if result.RowsAffected == 0 {
		return ports.EnrichedPost{}, domainerrors.ErrPostNotFound
	}
	return r.GetByID(ctx, id)
}

// GetAccount implements ports.AccountDirectory against the users table,
// so creation checks the stored status rather than the token claims.
func (r *Repository) GetAccount(ctx context.Context, id string) (ports.AccountRecord, bool, error) {
	var row struct {
		ID     string
		Name   string
		Role   string
		Status string
	}
	tx := r.db.WithContext(ctx).
		Table("users").
		Select("id, name, role, status").
		Where("id = ?", id).
		Limit(1).
		Scan(&row)
	if tx.Error != nil {
		return ports.AccountRecord{}, false, tx.Error
	}
	if tx.RowsAffected == 0 {
		return ports.AccountRecord{}, false, nil
	}
	return ports.AccountRecord{
		ID:     row.ID,
		Name:   row.Name,
		Role:   row.Role,
		Status: row.Status,
	}, true, nil
}

func (r *Repository) enrichedQuery(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("posts").
		Select(enrichedSelect).
		Joins("JOIN users ON users.id = posts.author_id").
		Joins("JOIN categories ON categories.id = posts.category_id")
}

type postModel struct {
	ID         string    `gorm:"column:id;primaryKey"`
	Title      string    `gorm:"column:title"`
	Content    string    `gorm:"column:content"`
	ImageURL   string    `gorm:"column:image_url"`
	AuthorID   string    `gorm:"column:author_id"`
	CategoryID string    `gorm:"column:category_id"`
	Status     string    `gorm:"column:status"`
	LikesCount int       `gorm:"column:likes_count"`
	ShareCount int       `gorm:"column:share_count"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (postModel) TableName() string {
	return "posts"
}

func fromEntity(post entities.Post) postModel {
	return postModel{
		ID:         post.ID,
		Title:      post.Title,
		Content:    post.Content,
		ImageURL:   post.ImageURL,
		AuthorID:   post.AuthorID,
		CategoryID: post.CategoryID,
		Status:     string(post.Status),
		LikesCount: post.LikesCount,
		ShareCount: post.ShareCount,
		CreatedAt:  post.CreatedAt,
	}
}

type enrichedRow struct {
	postModel
	AuthorName   string `gorm:"column:author_name"`
	AuthorRole   string `gorm:"column:author_role"`
	CategoryName string `gorm:"column:category_name"`
}

func (row enrichedRow) toEnriched() ports.EnrichedPost {
	return ports.EnrichedPost{
		Post: entities.Post{
			ID:         row.ID,
			Title:      row.Title,
			Content:    row.Content,
			ImageURL:   row.ImageURL,
			AuthorID:   row.AuthorID,
			CategoryID: row.CategoryID,
			Status:     entities.Status(row.Status),
			LikesCount: row.LikesCount,
			ShareCount: row.ShareCount,
			CreatedAt:  row.CreatedAt,
		},
		Author: ports.AuthorSummary{
			ID:   row.AuthorID,
			Name: row.AuthorName,
			Role: row.AuthorRole,
		},
		Category: ports.CategorySummary{
			ID:   row.CategoryID,
			Name: row.CategoryName,
		},
	}
}

func mapForeignKey(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		if strings.Contains(pgErr.ConstraintName, "category") {
			return domainerrors.ErrCategoryNotFound
		}
		return domainerrors.ErrAuthorNotFound
	}
	return err
}
