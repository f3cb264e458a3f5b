// Package settings persists widget configuration as key/value options with
// default-valued reads. Core logic never reads options ambiently; it asks
// the Store and gets fully-populated settings values back.
package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/chrisnov-it/feathershare/lib/models"
	"github.com/chrisnov-it/feathershare/render"
	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	optionShareButtons     = "feathershare_share_buttons"
	optionSubscriptionForm = "feathershare_subscription_form"
)

type Store struct {
	log      *zap.Logger
	db       *gorm.DB
	sanitize *bluemonday.Policy
}

func NewStore(lc fx.Lifecycle, log *zap.Logger, db *gorm.DB) *Store {
	return &Store{log, db, bluemonday.UGCPolicy()}
}

// ShareButtons returns the stored share-button settings, or the defaults
// when nothing has been saved yet. Saved settings replace the defaults
// wholesale; they are not merged.
func (s *Store) ShareButtons(ctx context.Context) (render.ShareSettings, error) {
	out := render.ShareSettings{}
	found, err := s.read(ctx, optionShareButtons, &out)
	if err != nil {
		return out, err
	}
	if !found {
		return render.DefaultShareSettings(), nil
	}
	return out, nil
}

func (s *Store) SaveShareButtons(ctx context.Context, v render.ShareSettings) error {
	return s.write(ctx, optionShareButtons, v)
}

func (s *Store) SubscriptionForm(ctx context.Context) (render.FormSettings, error) {
	out := render.FormSettings{}
	found, err := s.read(ctx, optionSubscriptionForm, &out)
	if err != nil {
		return out, err
	}
	if !found {
		return render.DefaultFormSettings(), nil
	}
	return out, nil
}

// SaveSubscriptionForm sanitizes the rich-text description before it is
// stored, so everything the renderer reads back is trusted markup.
func (s *Store) SaveSubscriptionForm(ctx context.Context, v render.FormSettings) error {
	v.Description = s.sanitize.Sanitize(v.Description)
	return s.write(ctx, optionSubscriptionForm, v)
}

func (s *Store) read(ctx context.Context, key string, out any) (bool, error) {
	opt := models.Option{}
	tx := s.db.WithContext(ctx).Where("key = ?", key).First(&opt)
	if err := tx.Error; errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	} else if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(opt.Value), out); err != nil {
		return false, fmt.Errorf("corrupt option %s: %w", key, err)
	}
	return true, nil
}

func (s *Store) write(ctx context.Context, key string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	tx := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(&models.Option{Key: key, Value: string(b)})
	return tx.Error
}
