package app

import (
	"time"

	"github.com/chrisnov-it/feathershare/lib/models"
)

type SubscriberView struct {
	Email        string `json:"email"`
	Status       string `json:"status"`
	SubscribedAt string `json:"subscribed_at"`
}

func (view SubscriberView) From(entity models.Subscriber) SubscriberView {
	return SubscriberView{
		Email:        entity.Email,
		Status:       entity.Status,
		SubscribedAt: isoformat(entity.CreatedAt),
	}
}

type Fromable[Entity any, Repr any] interface {
	From(Entity) Repr
}

func FromMany[T any, U Fromable[T, U]](elems []T) []U {
	out := make([]U, len(elems))
	for i, t := range elems {
		var u U
		out[i] = u.From(t)
	}
	return out
}

func isoformat(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}
