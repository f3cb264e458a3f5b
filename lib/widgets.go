package lib

import (
	"context"

	"github.com/chrisnov-it/feathershare/render"
	"github.com/chrisnov-it/feathershare/settings"
	"go.uber.org/zap"
)

type widgets struct {
	log    *zap.Logger
	store  *settings.Store
	tokens *formTokens
}

// RenderSubscriptionForm mints a fresh anti-forgery token on every render
// and embeds it in the form.
func (op *widgets) RenderSubscriptionForm(ctx context.Context) (string, error) {
	cfg, err := op.store.SubscriptionForm(ctx)
	if err != nil {
		return "", err
	}
	token, err := op.tokens.IssueFormToken(ctx)
	if err != nil {
		return "", err
	}
	return render.SubscriptionForm(cfg, token)
}

// RenderShareButtons renders the share bar for the given post. The caller
// supplies the post URL/title and decides whether the current view should
// carry share buttons at all.
func (op *widgets) RenderShareButtons(ctx context.Context, postURL, postTitle string) (string, error) {
	cfg, err := op.store.ShareButtons(ctx)
	if err != nil {
		return "", err
	}
	return render.ShareButtons(cfg, postURL, postTitle)
}
