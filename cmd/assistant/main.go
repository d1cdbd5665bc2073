package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"health-assistant/internal/app"
	"health-assistant/internal/assistant"
	"health-assistant/internal/httputil"
	"health-assistant/internal/web"
)

type answerRequest struct {
	Question string `json:"question"`
}

type answerResponse struct {
	Answer string `json:"answer"`
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps, err := app.Build(ctx)
	if err != nil {
		slog.Default().Error("failed to build dependencies", "err", err)
		os.Exit(1)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", deps.Config.Port),
		Handler:           newRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ln, err := net.Listen("tcp", srv.Addr)
	if err != nil {
		deps.Log.Error("failed to listen", "addr", srv.Addr, "err", err)
		os.Exit(1)
	}
	deps.Log.Info("assistant listening",
		"addr", ln.Addr().String(),
		"provider", deps.Config.LLMProvider,
		"model", deps.Assistant.Model(),
	)

	if err := serve(ctx, srv, ln, deps.Config.LLMTimeout+5*time.Second, stop); err != nil {
		deps.Log.Error("assistant service stopped", "err", err)
		os.Exit(1)
	}
}

// serve runs srv on ln until ctx is done, then lets in-flight generations
// finish for up to grace. release runs as soon as shutdown begins so a
// second signal terminates the process instead of waiting out the drain.
func serve(ctx context.Context, srv *http.Server, ln net.Listener, grace time.Duration, release func()) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		release()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func newRouter(deps app.Deps) chi.Router {
	r := httputil.NewRouter(deps.Log)

	r.Get("/", pageHandler(deps))
	r.Post("/", askHandler(deps))
	r.Post("/api/answer", answerHandler(deps))
	r.Get("/healthz", httputil.HealthHandler(deps.Log))

	return r
}

func pageHandler(deps app.Deps) http.HandlerFunc {
	provider := web.ProviderName(deps.Config.LLMProvider)

	return func(w http.ResponseWriter, r *http.Request) {
		if err := web.Render(w, http.StatusOK, web.PageData{Provider: provider}); err != nil {
			deps.Log.Error("failed to render page", "err", err)
		}
	}
}

// askHandler serves the HTML form submission.
func askHandler(deps app.Deps) http.HandlerFunc {
	provider := web.ProviderName(deps.Config.LLMProvider)

	return func(w http.ResponseWriter, r *http.Request) {
		question := r.PostFormValue("question")
		data := web.PageData{Question: question, Provider: provider}
		status := http.StatusOK

		answer, err := deps.Assistant.Answer(r.Context(), question)
		switch {
		case err == nil:
			data.Answer = answer
		case errors.Is(err, assistant.ErrEmptyInput):
			data.Warning = web.EmptyInputWarning
		default:
			data.Error = err.Error()
			status = statusFor(err)
		}

		if err := web.Render(w, status, data); err != nil {
			deps.Log.Error("failed to render page", "err", err)
		}
	}
}

func answerHandler(deps app.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req answerRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httputil.Fail(deps.Log, w, "invalid request body", "invalid_request", err, http.StatusBadRequest)
			return
		}

		answer, err := deps.Assistant.Answer(r.Context(), req.Question)
		if err != nil {
			httputil.Fail(deps.Log, w, err.Error(), assistant.Kind(err), err, statusFor(err))
			return
		}

		httputil.WriteJSON(w, http.StatusOK, answerResponse{Answer: answer})
	}
}

func statusFor(err error) int {
	switch assistant.Kind(err) {
	case assistant.KindEmptyInput:
		return http.StatusBadRequest
	case assistant.KindRemoteFailure:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
