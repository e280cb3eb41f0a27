package repositories

import (
	"context"
	"errors"
	"log"

	"github.com/you/authnsvc/domain"
	"gorm.io/gorm"
)

// TokenRepositoryImpl implements domain.TokenRepository using GORM
type TokenRepositoryImpl struct {
	db *gorm.DB
}

// DBToken represents the database model for the session token row
type DBToken struct {
	ID        uint   `gorm:"primaryKey"`
	AccountID string `gorm:"uniqueIndex;size:36"`
	Token     string
}

// TableName returns the table name for GORM
func (DBToken) TableName() string {
	return "identity.tokens"
}

// NewTokenRepository creates a new session token repository
func NewTokenRepository(db *gorm.DB) domain.TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

// FindByAccountID implements domain.TokenRepository. An absent row returns an
// empty token, not an error; only store failures propagate.
func (r *TokenRepositoryImpl) FindByAccountID(ctx context.Context, accountID string) (string, error) {
	var dbToken DBToken
	err := r.db.WithContext(ctx).Where("account_id = ?", accountID).Take(&dbToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", err
	}
	return dbToken.Token, nil
}

// Replace implements domain.TokenRepository: delete-then-insert in one
// transaction so there is never a window with two live tokens for an account.
// Failures are swallowed to false, which callers treat as a degraded but
// non-fatal outcome. Concurrent replacements for the same account race at the
// store; the last writer wins, which is the intended single-active-session
// semantics.
func (r *TokenRepositoryImpl) Replace(ctx context.Context, accountID, token string) bool {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("account_id = ?", accountID).Delete(&DBToken{}).Error; err != nil {
			return err
		}
		return tx.Create(&DBToken{AccountID: accountID, Token: token}).Error
	})
	if err != nil {
		log.Printf("token replace failed for account %s: %v", accountID, err)
		return false
	}
	return true
}

// DeleteByAccountID implements domain.TokenRepository; deleting an account
// with no token row is a no-op.
func (r *TokenRepositoryImpl) DeleteByAccountID(ctx context.Context, accountID string) error {
	return r.db.WithContext(ctx).Where("account_id = ?", accountID).Delete(&DBToken{}).Error
}
