// Package render keeps the reader page in sync with the application state.
// Every method rewrites one region of the document and is safe to call repeatedly.
package render

import (
	_ "embed"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/nDmitry/rssreader/internal/entity"
	"github.com/nDmitry/rssreader/internal/state"
	"golang.org/x/net/html"
)

//go:embed index.html
var page string

const (
	feedIDAttr      = "data-feed-id"
	i18nAttr        = "data-i18n"
	linkMessageAttr = "data-link-message"
)

// Translator resolves message keys for a language
type Translator interface {
	T(lng, key string) string
}

// Renderer owns the page document
type Renderer struct {
	mu   sync.RWMutex
	doc  *goquery.Document
	i18n Translator
	lng  string
}

// New parses the page and renders its static text in lng
func New(t Translator, lng string) (*Renderer, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(page))

	if err != nil {
		return nil, fmt.Errorf("could not parse page template: %w", err)
	}

	r := &Renderer{doc: doc, i18n: t, lng: lng}
	r.Language(lng, "")

	return r, nil
}

// HTML serializes the current document
func (r *Renderer) HTML() (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.doc.Html()
}

// Render redraws every region from st
func (r *Renderer) Render(st state.State) {
	r.Language(st.Language, r.language())
	r.FormAccessibility(st)
	r.Feedback(st)
	r.Feeds(st)
	r.Posts(st)
	r.Modal(st)
}

// FormAccessibility disables the form while a submission is loading
func (r *Renderer) FormAccessibility(st state.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	controls := r.doc.Find("#url-input, .rss-form button[type=submit]")

	if st.LoadingProcess == state.ProcessLoading {
		controls.SetAttr("disabled", "")
	} else {
		controls.RemoveAttr("disabled")
	}
}

// Feedback shows the outcome of the last submission under the form. A rejected URL
// stays in the field so it can be corrected.
func (r *Renderer) Feedback(st state.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	feedback := r.doc.Find(".feedback")
	input := r.doc.Find("#url-input")

	if st.Input != "" {
		input.SetAttr("value", st.Input)
	} else {
		input.RemoveAttr("value")
	}

	switch {
	case st.LoadingProcess == state.ProcessLoading:
		feedback.SetText("")
		feedback.RemoveAttr(linkMessageAttr)
	case !st.Valid && st.Error != entity.ErrorNone:
		key := st.Error.MessageKey()
		feedback.SetText(r.t(key))
		feedback.SetAttr(linkMessageAttr, key)
	case st.LoadingProcess == state.ProcessSuccess:
		key := "validation.valid.success"
		feedback.SetText(r.t(key))
		feedback.SetAttr(linkMessageAttr, key)
	}

	switch {
	case st.LoadingProcess == state.ProcessLoading:
		input.RemoveClass("is-invalid")
	case !st.Valid && st.Error != entity.ErrorNone:
		if st.Error.MarksInput() {
			input.AddClass("is-invalid")
		} else {
			input.RemoveClass("is-invalid")
		}

		replaceClass(feedback, "text-success", "text-danger")
	case st.LoadingProcess == state.ProcessSuccess:
		input.RemoveClass("is-invalid")
		replaceClass(feedback, "text-danger", "text-success")
	}
}

// Feeds inserts the feeds that are not rendered yet, newest on top
func (r *Renderer) Feeds(st state.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.card(r.doc.Find(".feeds"), "interface.feeds")

	rendered := make(map[string]bool)

	list.Children().Each(func(_ int, li *goquery.Selection) {
		if id, ok := li.Attr(feedIDAttr); ok {
			rendered[id] = true
		}
	})

	// st.Feeds is newest-first, so prepending oldest-first keeps the order
	for i := len(st.Feeds) - 1; i >= 0; i-- {
		feed := st.Feeds[i]

		if rendered[feed.ID] {
			continue
		}

		list.PrependNodes(r.feedItem(feed))
		rendered[feed.ID] = true
	}
}

func (r *Renderer) feedItem(feed entity.Feed) *html.Node {
	li := element("li", "list-group-item border-0 border-end-0", feedIDAttr, feed.ID)

	title := element("h3", "h6 m-0")
	if feed.Title != "" {
		title.AppendChild(text(feed.Title))
	} else {
		title.Attr = append(title.Attr, html.Attribute{Key: i18nAttr, Val: "feeds.noTitle"})
		title.AppendChild(text(r.t("feeds.noTitle")))
	}

	description := element("p", "m-0 small text-black-50")
	if feed.Description != "" {
		description.AppendChild(text(feed.Description))
	} else {
		description.Attr = append(description.Attr, html.Attribute{Key: i18nAttr, Val: "feeds.noDescription"})
		description.AppendChild(text(r.t("feeds.noDescription")))
	}

	return appendChildren(li, title, description)
}

// Posts redraws the post list, marking viewed links
func (r *Renderer) Posts(st state.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	list := r.card(r.doc.Find(".posts"), "interface.posts")
	list.Empty()

	for _, post := range st.Posts {
		list.AppendNodes(r.postItem(post, st.IsViewed(post.Link)))
	}
}

func (r *Renderer) postItem(post entity.Post, viewed bool) *html.Node {
	li := element("li", "list-group-item d-flex justify-content-between align-items-start border-0 border-end-0")

	linkClass := "fw-bold"
	if viewed {
		linkClass = "fw-normal link-secondary"
	}

	a := element("a", linkClass,
		"href", "/posts/open?link="+url.QueryEscape(post.Link),
		"data-link", post.Link,
		"data-id", post.ID,
		"target", "_blank",
		"rel", "noopener noreferrer",
	)
	a.AppendChild(text(post.Title))

	form := element("form", "", "method", "post", "action", "/posts/preview")
	button := element("button", "btn btn-outline-primary btn-sm",
		"type", "submit",
		"data-bs-toggle", "modal",
		"data-bs-target", "#modal",
		i18nAttr, "interface.view",
	)
	button.AppendChild(text(r.t("interface.view")))
	appendChildren(form, element("input", "", "type", "hidden", "name", "link", "value", post.Link), button)

	return appendChildren(li, a, form)
}

// Modal shows the clicked post, or hides the modal when there is none
func (r *Renderer) Modal(st state.State) {
	r.mu.Lock()
	defer r.mu.Unlock()

	modal := r.doc.Find("#modal")
	post, ok := st.PostByLink(st.UI.ClickedPostLink)

	if !ok {
		modal.RemoveClass("show")
		modal.RemoveAttr("aria-modal")
		modal.SetAttr("aria-hidden", "true")

		return
	}

	modal.Find(".modal-title").SetText(post.Title)
	modal.Find(".modal-body").SetText(post.Description)
	modal.Find(".full-article").SetAttr("href", post.Link)

	modal.AddClass("show")
	modal.RemoveAttr("aria-hidden")
	modal.SetAttr("aria-modal", "true")
}

// Language switches the active locale and redraws every translated text,
// including the feedback message currently shown.
func (r *Renderer) Language(lng, previous string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lng = lng

	r.doc.Find("html").SetAttr("lang", lng)

	if previous != "" {
		replaceClass(r.doc.Find(fmt.Sprintf("[data-lng=%q]", previous)), "btn-primary", "btn-outline-primary")
	}

	replaceClass(r.doc.Find(fmt.Sprintf("[data-lng=%q]", lng)), "btn-outline-primary", "btn-primary")

	r.doc.Find("[" + i18nAttr + "]").Each(func(_ int, s *goquery.Selection) {
		s.SetText(r.t(s.AttrOr(i18nAttr, "")))
	})

	r.doc.Find("#url-input").SetAttr("placeholder", r.t("interface.placeholder"))

	feedback := r.doc.Find(".feedback")

	if key, ok := feedback.Attr(linkMessageAttr); ok && key != "" {
		feedback.SetText(r.t(key))
	}
}

func (r *Renderer) language() string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.lng
}

// card returns the list of the card inside container, creating the card on first use
func (r *Renderer) card(container *goquery.Selection, titleKey string) *goquery.Selection {
	if list := container.Find(".card > ul.list-group"); list.Length() > 0 {
		return list
	}

	container.Empty()

	title := element("h2", "card-title h4", i18nAttr, titleKey)
	title.AppendChild(text(r.t(titleKey)))

	card := appendChildren(element("div", "card border-0"),
		appendChildren(element("div", "card-body"), title),
		element("ul", "list-group border-0 rounded-0"),
	)

	container.AppendNodes(card)

	return container.Find(".card > ul.list-group")
}

func (r *Renderer) t(key string) string {
	return r.i18n.T(r.lng, key)
}

// replaceClass swaps from for to on the elements that have from
func replaceClass(s *goquery.Selection, from, to string) {
	s.Each(func(_ int, el *goquery.Selection) {
		if el.HasClass(from) {
			el.RemoveClass(from).AddClass(to)
		}
	})
}
