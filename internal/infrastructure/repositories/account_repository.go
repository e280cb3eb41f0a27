package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/you/authnsvc/domain"
	"gorm.io/gorm"
)

// AccountRepositoryImpl implements domain.AccountRepository using GORM
type AccountRepositoryImpl struct {
	db *gorm.DB
}

// DBAccount represents the database model for Account (with GORM tags)
type DBAccount struct {
	ID           string    `gorm:"primaryKey;size:36"`
	Username     string    `gorm:"uniqueIndex;size:255"`
	Email        string    `gorm:"uniqueIndex;size:255"`
	PasswordHash string    `gorm:"column:password"`
	Role         string    `gorm:"size:64;default:USER"`
	IsEnabled    bool      `gorm:"index"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName returns the table name for GORM
func (DBAccount) TableName() string {
	return "identity.accounts"
}

// credentialsRow is the scan target for the login projection
type credentialsRow struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string `gorm:"column:password"`
	IsEnabled    bool
	Token        *string
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *gorm.DB) domain.AccountRepository {
	return &AccountRepositoryImpl{db: db}
}

// Create implements domain.AccountRepository. The opaque account id is
// assigned here; the database-level unique constraints remain the authority
// on duplicates even though callers pre-check.
func (r *AccountRepositoryImpl) Create(ctx context.Context, account *domain.Account) error {
	if account.ID == "" {
		account.ID = uuid.NewString()
	}
	dbAccount := r.domainToDB(account)
	if err := r.db.WithContext(ctx).Create(dbAccount).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// FindCredentialsByIdentifier implements domain.AccountRepository. The
// identifier matches username OR email; the current session token rides along
// via a LEFT JOIN so login needs a single round trip.
func (r *AccountRepositoryImpl) FindCredentialsByIdentifier(ctx context.Context, identifier string) (*domain.AccountCredentials, error) {
	var row credentialsRow
	err := r.db.WithContext(ctx).
		Table("identity.accounts AS a").
		Select("a.id, a.username, a.email, a.password, a.is_enabled, t.token").
		Joins("LEFT JOIN identity.tokens AS t ON t.account_id = a.id").
		Where("a.username = ? OR a.email = ?", identifier, identifier).
		Take(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}

	creds := &domain.AccountCredentials{
		ID:           row.ID,
		Username:     row.Username,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		IsEnabled:    row.IsEnabled,
	}
	if row.Token != nil {
		creds.Token = *row.Token
	}
	return creds, nil
}

// EmailExists implements domain.AccountRepository
func (r *AccountRepositoryImpl) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBAccount{}).Where("email = ?", email).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindByID implements domain.AccountRepository
func (r *AccountRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Account, error) {
	var dbAccount DBAccount
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbAccount).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbAccount), nil
}

// GetRole implements domain.AccountRepository
func (r *AccountRepositoryImpl) GetRole(ctx context.Context, accountID string) (string, error) {
	var role string
	err := r.db.WithContext(ctx).Model(&DBAccount{}).
		Select("role").
		Where("id = ?", accountID).
		Take(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", domain.ErrAccountNotFound
		}
		return "", err
	}
	return role, nil
}

// EnableAndSetToken implements domain.AccountRepository: flips the enabled
// flag and replaces the session token row in one transaction, all-or-nothing.
func (r *AccountRepositoryImpl) EnableAndSetToken(ctx context.Context, accountID, token string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&DBAccount{}).Where("id = ?", accountID).Update("is_enabled", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrAccountNotFound
		}
		if err := tx.Where("account_id = ?", accountID).Delete(&DBToken{}).Error; err != nil {
			return err
		}
		return tx.Create(&DBToken{AccountID: accountID, Token: token}).Error
	})
}

// domainToDB converts domain account to database account
func (r *AccountRepositoryImpl) domainToDB(account *domain.Account) *DBAccount {
	return &DBAccount{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Role:         account.Role,
		IsEnabled:    account.IsEnabled,
	}
}

// dbToDomain converts database account to domain account
func (r *AccountRepositoryImpl) dbToDomain(dbAccount *DBAccount) *domain.Account {
	return &domain.Account{
		ID:           dbAccount.ID,
		Username:     dbAccount.Username,
		Email:        dbAccount.Email,
		PasswordHash: dbAccount.PasswordHash,
		Role:         dbAccount.Role,
		IsEnabled:    dbAccount.IsEnabled,
		CreatedAt:    dbAccount.CreatedAt,
		UpdatedAt:    dbAccount.UpdatedAt,
	}
}
