package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/you/authnsvc/domain"
)

const activationCodeBytes = 16

// JWTServiceImpl implements domain.TokenService
type JWTServiceImpl struct {
	secretKey []byte
	issuer    string
	tokenTTL  time.Duration
}

// NewJWTService creates a new JWT service
func NewJWTService(secretKey, issuer string, ttl time.Duration) domain.TokenService {
	return &JWTServiceImpl{
		secretKey: []byte(secretKey),
		issuer:    issuer,
		tokenTTL:  ttl,
	}
}

// GenerateSessionToken implements domain.TokenService. The account id doubles
// as the token subject.
func (j *JWTServiceImpl) GenerateSessionToken(accountID, role string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id": accountID,
		"role":    role,
		"sub":     accountID,
		"iss":     j.issuer,
		"iat":     now.Unix(),
		"exp":     now.Add(j.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.secretKey)
}

// DecodeSessionToken implements domain.TokenService. The three failure modes
// stay distinguishable: expiry, not-yet-valid, and everything else as
// malformed/invalid.
func (j *JWTServiceImpl) DecodeSessionToken(tokenString string) (*domain.TokenClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrTokenMalformed
		}
		return j.secretKey, nil
	})

	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, domain.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenNotValidYet):
			return nil, domain.ErrTokenNotYetValid
		default:
			return nil, domain.ErrTokenMalformed
		}
	}

	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	accountID, ok := claims["user_id"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	role, ok := claims["role"].(string)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	iat, ok := claims["iat"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, domain.ErrTokenMalformed
	}

	return &domain.TokenClaims{
		AccountID: accountID,
		Role:      role,
		IssuedAt:  int64(iat),
		ExpiresAt: int64(exp),
	}, nil
}

// IsSessionTokenStillValid implements domain.TokenService
func (j *JWTServiceImpl) IsSessionTokenStillValid(token string) bool {
	_, err := j.DecodeSessionToken(token)
	return err == nil
}

// GenerateActivationCode implements domain.TokenService: 16 random bytes,
// hex encoded.
func (j *JWTServiceImpl) GenerateActivationCode() (string, error) {
	bytes := make([]byte, activationCodeBytes)
	if _, err := rand.Read(bytes); err != nil {
		return "", fmt.Errorf("failed to generate activation code: %w", err)
	}
	return hex.EncodeToString(bytes), nil
}

// GenerateOTP implements domain.TokenService: a 6-digit decimal code drawn
// uniformly from [100000, 999999], so no leading zeros.
func (j *JWTServiceImpl) GenerateOTP() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate OTP: %w", err)
	}
	return fmt.Sprintf("%06d", n.Int64()+100000), nil
}
