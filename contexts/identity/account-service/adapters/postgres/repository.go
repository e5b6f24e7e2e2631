package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"inkwell/contexts/identity/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity/account-service/domain/errors"

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

func (r *Repository) Create(ctx context.Context, account entities.Account) (entities.Account, error) {
	row := fromEntity(account)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.Account{}, domainerrors.ErrEmailTaken
		}
		return entities.Account{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (entities.Account, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Account{}, domainerrors.ErrAccountNotFound
		}
		return entities.Account{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (entities.Account, error) {
	var row accountModel
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.Account{}, domainerrors.ErrAccountNotFound
		}
		return entities.Account{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) List(ctx context.Context) ([]entities.Account, error) {
	var rows []accountModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	accounts := make([]entities.Account, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, row.toEntity())
	}
	return accounts, nil
}

func (r *Repository) Update(ctx context.Context, id string, patch entities.AccountPatch) (entities.Account, error) {
	assignments := map[string]any{}
	if patch.Name != nil {
		assignments["name"] = *patch.Name
	}
	if patch.Email != nil {
		assignments["email"] = *patch.Email
	}
	if patch.PasswordHash != nil {
		assignments["password_hash"] = *patch.PasswordHash
	}
	if patch.Role != nil {
		assignments["role"] = *patch.Role
	}
	if patch.Status != nil {
		assignments["status"] = *patch.Status
	}

	result := r.db.WithContext(ctx).
		Model(&accountModel{}).
		Where("id = ?", id).
		Updates(assignments)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return entities.Account{}, domainerrors.ErrEmailTaken
		}
		return entities.Account{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.Account{}, domainerrors.ErrAccountNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete relies on the schema's ON DELETE CASCADE to remove the account's
// posts and comments.
func (r *Repository) Delete(ctx context.Context, id string) (entities.Account, error) {
	account, err := r.GetByID(ctx, id)
	if err != nil {
		return entities.Account{}, err
	}
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&accountModel{}).
		Error; err != nil {
		return entities.Account{}, err
	}
	return account, nil
}

type accountModel struct {
	ID           string    `gorm:"column:id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	Status       string    `gorm:"column:status"`
	CreatedAt    time.Time `gorm:"column:created_at"`
}

func (accountModel) TableName() string {
	return "users"
}

func (m accountModel) toEntity() entities.Account {
	return entities.Account{
		ID:           m.ID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         entities.Role(m.Role),
		Status:       entities.Status(m.Status),
		CreatedAt:    m.CreatedAt,
	}
}

func fromEntity(account entities.Account) accountModel {
	return accountModel{
		ID:           account.ID,
		Name:         account.Name,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Role:         string(account.Role),
		Status:       string(account.Status),
		CreatedAt:    account.CreatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
