package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/chrisnov-it/feathershare/config"
	"github.com/chrisnov-it/feathershare/lib"
	"github.com/chrisnov-it/feathershare/lib/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// Client-facing messages. Validation keeps a single generic message for
// missing and malformed emails, and success reads the same whether the
// address was new or already subscribed.
const (
	msgSubscribed    = "Thank you for subscribing!"
	msgSecurityCheck = "Security check failed"
	msgInvalidEmail  = "Please enter a valid email address"
	msgInternalError = "An error occurred. Please try again."
)

func NewAPI(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger, svc *lib.Service) *http.Server {
	addr := fmt.Sprintf(":%d", cfg.ServerPort)
	srv := &http.Server{Addr: addr, Handler: router(cfg, log, svc)}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go srv.ListenAndServe()
			return nil
		},
		OnStop: srv.Shutdown,
	})

	return srv
}

func router(cfg *config.Config, log *zap.Logger, svc *lib.Service) http.Handler {
	ctrl := &controller{log, svc}

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Get("/widgets/subscription-form", ctrl.subscriptionForm)
	r.Get("/widgets/share-buttons", ctrl.shareButtons)
	r.Post("/subscribe", ctrl.subscribe)

	r.Route("/admin", func(r chi.Router) {
		if creds := cfg.GetCreds(); len(creds) > 0 {
			r.Use(middleware.BasicAuth("feathershare", creds))
		} else {
			log.Sugar().Info("Admin auth is disabled since no credentials are defined")
		}

		r.Get("/subscribers", ctrl.listSubscribers)
		r.Get("/subscribers/export", ctrl.exportSubscribers)
	})

	return r
}

type controller struct {
	log *zap.Logger
	svc *lib.Service
}

type submitResponse struct {
	OK      bool   `json:"ok"`
	Message string `json:"message"`
}

func (ctrl *controller) resolve(w http.ResponseWriter, status int, body any) {
	b, err := json.Marshal(body)
	if err != nil {
		ctrl.log.Sugar().Errorw("Request failed", "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(b)
}

func (ctrl *controller) subscribe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := r.FormValue("token")
	email := r.FormValue("email")

	_, err := ctrl.svc.Subscribe(ctx, token, email)
	switch {
	case err == nil:
		ctrl.resolve(w, http.StatusOK, submitResponse{OK: true, Message: msgSubscribed})
	case errors.Is(err, lib.ErrBadToken):
		ctrl.resolve(w, http.StatusForbidden, submitResponse{Message: msgSecurityCheck})
	case errors.Is(err, lib.ErrInvalidEmail):
		ctrl.resolve(w, http.StatusBadRequest, submitResponse{Message: msgInvalidEmail})
	default:
		// Full detail stays in the log; the client gets a generic message.
		ctrl.log.Sugar().Errorw("Subscription failed", "err", err)
		ctrl.resolve(w, http.StatusInternalServerError, submitResponse{Message: msgInternalError})
	}
}

func (ctrl *controller) subscriptionForm(w http.ResponseWriter, r *http.Request) {
	html, err := ctrl.svc.RenderSubscriptionForm(r.Context())
	if err != nil {
		ctrl.log.Sugar().Errorw("Form render failed", "err", err)
		http.Error(w, msgInternalError, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func (ctrl *controller) shareButtons(w http.ResponseWriter, r *http.Request) {
	postURL := r.URL.Query().Get("url")
	postTitle := r.URL.Query().Get("title")
	if postURL == "" || postTitle == "" {
		http.Error(w, "url and title are required", http.StatusBadRequest)
		return
	}

	html, err := ctrl.svc.RenderShareButtons(r.Context(), postURL, postTitle)
	if err != nil {
		ctrl.log.Sugar().Errorw("Share buttons render failed", "err", err)
		http.Error(w, msgInternalError, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(html))
}

func (ctrl *controller) listSubscribers(w http.ResponseWriter, r *http.Request) {
	subs, err := ctrl.svc.ListSubscribers(r.Context())
	if err != nil {
		ctrl.log.Sugar().Errorw("Subscriber listing failed", "err", err)
		http.Error(w, msgInternalError, http.StatusInternalServerError)
		return
	}
	ctrl.resolve(w, http.StatusOK, FromMany[models.Subscriber, SubscriberView](subs))
}

func (ctrl *controller) exportSubscribers(w http.ResponseWriter, r *http.Request) {
	filename := lib.ExportFilename(time.Now().UTC())
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := ctrl.svc.ExportCSV(r.Context(), w); err != nil {
		// Headers are already on the wire; log and cut the stream short.
		ctrl.log.Sugar().Errorw("Subscriber export failed", "err", err)
	}
}
