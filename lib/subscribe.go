package lib

import (
	"context"
	"errors"

	"github.com/chrisnov-it/feathershare/config"
	"github.com/chrisnov-it/feathershare/lib/models"
	"github.com/chrisnov-it/feathershare/senders"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type subscribe struct {
	cfg     *config.Config
	log     *zap.Logger
	db      *gorm.DB
	tokens  *formTokens
	senders senders.Registry
}

// Subscribe runs the submission pipeline: anti-forgery check, email
// validation, idempotent upsert. The created flag tells callers whether a
// new record was written; the HTTP layer deliberately responds identically
// either way.
func (op *subscribe) Subscribe(ctx context.Context, token, rawEmail string) (created bool, err error) {
	if err := op.tokens.VerifyFormToken(ctx, token); err != nil {
		return false, err
	}

	email, err := ValidateEmail(rawEmail)
	if err != nil {
		return false, err
	}

	sub, created, err := op.upsertSubscriber(ctx, email)
	if err != nil {
		return false, err
	}

	if created {
		op.sendWelcomeEmail(ctx, sub.Email)
		op.log.Sugar().Infof("Created subscriber %v (%s)", sub.ID, sub.Email)
	}
	return created, nil
}

func (op *subscribe) upsertSubscriber(ctx context.Context, email string) (*models.Subscriber, bool, error) {
	existing := models.Subscriber{}
	tx := op.db.WithContext(ctx).Where("email = ?", email).First(&existing)
	if err := tx.Error; err == nil {
		return &existing, false, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	sub := &models.Subscriber{Email: email, Status: models.StatusActive}
	if err := op.db.WithContext(ctx).Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			// Lost a race against a concurrent submission of the same
			// address; the unique index turns that into an idempotent hit.
			return sub, false, nil
		}
		return nil, false, err
	}
	return sub, true, nil
}

// sendWelcomeEmail is best-effort: a delivery failure never fails the
// subscription that triggered it.
func (op *subscribe) sendWelcomeEmail(ctx context.Context, email string) {
	if !op.cfg.WelcomeEmailEnabled() {
		return
	}

	format := senders.WelcomeEmailFormat{}
	sender := op.senders["email"]
	id, err := sender.Send(ctx, format.Subject(), format.Body(), email)
	if err != nil {
		op.log.Sugar().Infow("Failed to send welcome email", "err", err)
	} else {
		op.log.Sugar().Infow("Sent welcome email to "+email, "message_id", id)
	}
}
