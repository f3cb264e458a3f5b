package lib

import (
	"context"
	"errors"
	"time"

	"github.com/chrisnov-it/feathershare/lib/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// formTokenTTL bounds how long a rendered form stays submittable.
const formTokenTTL = 12 * time.Hour

type formTokens struct {
	log *zap.Logger
	db  *gorm.DB
}

// IssueFormToken mints a fresh single-use nonce for a form render.
func (t *formTokens) IssueFormToken(ctx context.Context) (string, error) {
	token := &models.FormToken{
		Nonce:  uuid.NewString(),
		Expiry: time.Now().UTC().Add(formTokenTTL),
	}
	if err := t.db.WithContext(ctx).Create(token).Error; err != nil {
		return "", err
	}
	return token.Nonce, nil
}

// VerifyFormToken consumes the nonce. Unknown, expired and missing tokens
// all come back as ErrBadToken so responses stay opaque.
func (t *formTokens) VerifyFormToken(ctx context.Context, nonce string) error {
	if nonce == "" {
		return ErrBadToken
	}

	token := models.FormToken{}
	tx := t.db.WithContext(ctx).Where("nonce = ?", nonce).First(&token)
	if err := tx.Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrBadToken
	} else if err != nil {
		return err
	}

	// Single use: burn the nonce whether or not it is still fresh.
	if err := t.db.WithContext(ctx).Delete(&models.FormToken{}, "nonce = ?", nonce).Error; err != nil {
		return err
	}

	if time.Now().UTC().After(token.Expiry) {
		return ErrBadToken
	}
	return nil
}
