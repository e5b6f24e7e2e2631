package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"inkwell/contexts/publishing/category-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/category-service/domain/errors"

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

func (r *Repository) List(ctx context.Context) ([]entities.Category, error) {
	var rows []categoryModel
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	categories := make([]entities.Category, 0, len(rows))
	for _, row := range rows {
		categories = append(categories, row.toEntity())
	}
	return categories, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (entities.Category, error) {
	var row categoryModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Category{}, domainerrors.ErrCategoryNotFound
		}
		return entities.Category{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) Create(ctx context.Context, category entities.Category) (entities.Category, error) {
	row := categoryModel{ID: category.ID, Name: category.Name}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Category{}, domainerrors.ErrNameTaken
		}
		return entities.Category{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) Rename(ctx context.Context, id string, name string) (entities.Category, error) {
	result := r.db.WithContext(ctx).
		Model(&categoryModel{}).
		Where("id = ?", id).
		Update("name", name)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return entities.Category{}, domainerrors.ErrNameTaken
		}
		return entities.Category{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Category{}, domainerrors.ErrCategoryNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete surfaces a restrict violation as ErrCategoryInUse: posts keep
// their category, there is no cascade on this edge.
func (r *Repository) Delete(ctx context.Context, id string) (entities.Category, error) {
	category, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Category{}, err
	}
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&categoryModel{}).
		Error; err != nil {
		if isForeignKeyViolation(err) {
			return entities.Category{}, domainerrors.ErrCategoryInUse
		}
		return entities.Category{}, err
	}
	return category, nil
}

type categoryModel struct {
	ID   string `gorm:"column:id;primaryKey"`
	Name string `gorm:"column:name"`
}

func (categoryModel) TableName() string {
	return "categories"
}

func (m categoryModel) toEntity() entities.Category {
	return entities.Category{ID: m.ID, Name: m.Name}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23503"
}
