package lib

import (
	"github.com/chrisnov-it/feathershare/config"
	"github.com/chrisnov-it/feathershare/senders"
	"github.com/chrisnov-it/feathershare/settings"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Service struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB

	*formTokens
	*subscribe
	*exporter
	*widgets
}

func NewService(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger, db *gorm.DB, store *settings.Store, senders senders.Registry) *Service {
	tokens := &formTokens{log, db}
	return &Service{
		cfg, log, db,
		tokens,
		&subscribe{cfg, log, db, tokens, senders},
		&exporter{log, db},
		&widgets{log, store, tokens},
	}
}
