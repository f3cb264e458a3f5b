package lib

import (
	"fmt"
	"testing"

	"github.com/chrisnov-it/feathershare/config"
	"github.com/chrisnov-it/feathershare/lib/models"
	"github.com/chrisnov-it/feathershare/senders"
	"github.com/chrisnov-it/feathershare/settings"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Subscriber{}, &models.FormToken{}, &models.Option{}))
	return db
}

func newTestService(t *testing.T, db *gorm.DB) *Service {
	t.Helper()
	log := zap.NewNop()
	store := settings.NewStore(nil, log, db)
	return NewService(nil, &config.Config{}, log, db, store, senders.Registry{})
}
