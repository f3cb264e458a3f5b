package lib

import (
	"context"
	"testing"
	"time"

	"github.com/chrisnov-it/feathershare/lib/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormTokenRoundTrip(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestDB(t))

	token, err := svc.IssueFormToken(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	require.NoError(t, svc.VerifyFormToken(ctx, token))
}

func TestFormTokenIsSingleUse(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestDB(t))

	token, err := svc.IssueFormToken(ctx)
	require.NoError(t, err)

	require.NoError(t, svc.VerifyFormToken(ctx, token))
	assert.ErrorIs(t, svc.VerifyFormToken(ctx, token), ErrBadToken)
}

func TestFormTokenRejectsUnknownAndEmpty(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, newTestDB(t))

	assert.ErrorIs(t, svc.VerifyFormToken(ctx, ""), ErrBadToken)
	assert.ErrorIs(t, svc.VerifyFormToken(ctx, "not-a-real-nonce"), ErrBadToken)
}

func TestFormTokenRejectsExpired(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	svc := newTestService(t, db)

	stale := models.FormToken{
		Nonce:  "stale-nonce",
		Expiry: time.Now().UTC().Add(-time.Minute),
	}
	require.NoError(t, db.Create(&stale).Error)

	assert.ErrorIs(t, svc.VerifyFormToken(ctx, stale.Nonce), ErrBadToken)

	// Burned even though expired.
	count := int64(0)
	require.NoError(t, db.Model(&models.FormToken{}).Where("nonce = ?", stale.Nonce).Count(&count).Error)
	assert.Zero(t, count)
}
