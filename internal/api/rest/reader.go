package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/nDmitry/rssreader/internal/app"
)

var (
	errMissingLink = errors.New("link is required")
	errUnknownPost = errors.New("post not found")
)

// Actions are the user actions available on the page
type Actions interface {
	Submit(ctx context.Context, url string) error
	SwitchLanguage(lng string) error
	OpenPost(link string) bool
	PreviewPost(link string) bool
	ClosePreview()
}

// Page serializes the rendered page
type Page interface {
	HTML() (string, error)
}

// ReaderHandler serves the page and the forms posted from it
type ReaderHandler struct {
	actions Actions
	page    Page
	logger  *slog.Logger
}

// NewReaderHandler creates a new ReaderHandler and sets up routes
func NewReaderHandler(mux *http.ServeMux, actions Actions, page Page) *ReaderHandler {
	h := &ReaderHandler{
		actions: actions,
		page:    page,
		logger:  app.Logger(),
	}

	mux.HandleFunc("GET /{$}", h.GetPage)
	mux.HandleFunc("POST /feeds", h.AddFeed)
	mux.HandleFunc("POST /language", h.SwitchLanguage)
	mux.HandleFunc("GET /posts/open", h.OpenPost)
	mux.HandleFunc("POST /posts/preview", h.PreviewPost)
	mux.HandleFunc("POST /posts/close", h.ClosePreview)

	return h
}

// GetPage renders the current page
func (h *ReaderHandler) GetPage(w http.ResponseWriter, _ *http.Request) {
	content, err := h.page.HTML()

	if err != nil {
		handleError(h.logger, w, fmt.Errorf("could not render page: %w", err), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)

	if _, err := w.Write([]byte(content)); err != nil {
		h.logger.Error("Could not write page", "error", err)
	}
}

// AddFeed subscribes to the submitted URL. The outcome is shown on the page, so the
// response is always a redirect back to it.
func (h *ReaderHandler) AddFeed(w http.ResponseWriter, r *http.Request) {
	if err := h.actions.Submit(r.Context(), r.PostFormValue("url")); err != nil {
		h.logger.Debug("Submission rejected", "error", err)
	}

	backToPage(w, r)
}

// SwitchLanguage changes the interface language
func (h *ReaderHandler) SwitchLanguage(w http.ResponseWriter, r *http.Request) {
	if err := h.actions.SwitchLanguage(r.PostFormValue("lng")); err != nil {
		handleError(h.logger, w, err, http.StatusBadRequest)
		return
	}

	backToPage(w, r)
}

// OpenPost marks the post as viewed and redirects to its article
func (h *ReaderHandler) OpenPost(w http.ResponseWriter, r *http.Request) {
	link := r.URL.Query().Get("link")

	if link == "" {
		handleError(h.logger, w, errMissingLink, http.StatusBadRequest)
		return
	}

	if !h.actions.OpenPost(link) {
		handleError(h.logger, w, fmt.Errorf("%s: %w", link, errUnknownPost), http.StatusNotFound)
		return
	}

	http.Redirect(w, r, link, http.StatusFound)
}

// PreviewPost opens the post in the modal
func (h *ReaderHandler) PreviewPost(w http.ResponseWriter, r *http.Request) {
	link := r.PostFormValue("link")

	if link == "" {
		handleError(h.logger, w, errMissingLink, http.StatusBadRequest)
		return
	}

	if !h.actions.PreviewPost(link) {
		handleError(h.logger, w, fmt.Errorf("%s: %w", link, errUnknownPost), http.StatusNotFound)
		return
	}

	backToPage(w, r)
}

// ClosePreview hides the modal
func (h *ReaderHandler) ClosePreview(w http.ResponseWriter, r *http.Request) {
	h.actions.ClosePreview()
	backToPage(w, r)
}

func backToPage(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
