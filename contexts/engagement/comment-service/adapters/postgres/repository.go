package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"inkwell/contexts/engagement/comment-service/domain/entities"
	domainerrors "inkwell/contexts/engagement/comment-service/domain/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

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

func (r *Repository) List(ctx context.Context) ([]entities.Comment, error) {
	var rows []commentModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) ListByPost(ctx context.Context, postID string) ([]entities.Comment, error) {
	var rows []commentModel
	if err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return toEntities(rows), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (entities.Comment, error) {
	var row commentModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Comment{}, domainerrors.ErrCommentNotFound
		}
		return entities.Comment{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) Create(ctx context.Context, comment entities.Comment) (entities.Comment, error) {
	row := fromEntity(comment)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.Comment{}, mapForeignKey(err)
	}
	return row.toEntity(), nil
}

func (r *Repository) Update(ctx context.Context, id string, patch entities.CommentPatch) (entities.Comment, error) {
	assignments := map[string]any{}
	if patch.Content != nil {
		assignments["content"] = *patch.Content
	}
	if patch.PostID != nil {
		assignments["post_id"] = *patch.PostID
	}
	if patch.UserID != nil {
		assignments["user_id"] = *patch.UserID
	}

	result := r.db.WithContext(ctx).
		Model(&commentModel{}).
		Where("id = ?", id).
		Updates(assignments)
	if result.Error != nil {
		return entities.Comment{}, mapForeignKey(result.Error)
	}
	if result.RowsAffected == 0 {
		return entities.Comment{}, domainerrors.ErrCommentNotFound
	}
	return r.GetByID(ctx, id)
}

func (r *Repository) Delete(ctx context.Context, id string) (entities.Comment, error) {
	comment, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Comment{}, err
	}
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&commentModel{}).
		Error; err != nil {
		return entities.Comment{}, err
	}
	return comment, nil
}

type commentModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	PostID    string    `gorm:"column:post_id"`
	UserID    string    `gorm:"column:user_id"`
	Content   string    `gorm:"column:content"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (commentModel) TableName() string {
	return "comments"
}

func (m commentModel) toEntity() entities.Comment {
	return entities.Comment{
		ID:        m.ID,
		PostID:    m.PostID,
		UserID:    m.UserID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
	}
}

func fromEntity(comment entities.Comment) commentModel {
	return commentModel{
		ID:        comment.ID,
		PostID:    comment.PostID,
		UserID:    comment.UserID,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}
}

func toEntities(rows []commentModel) []entities.Comment {
	comments := make([]entities.Comment, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, row.toEntity())
	}
	return comments
}

func mapForeignKey(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		if strings.Contains(pgErr.ConstraintName, "post") {
			return domainerrors.ErrPostNotFound
		}
		return domainerrors.ErrUserNotFound
	}
	return err
}
