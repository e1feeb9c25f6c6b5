package render

import "github.com/nDmitry/rssreader/internal/state"

// Bind subscribes r to store following the dispatch table below and returns a
// function that removes every subscription.
//
//	LoadingProcessChanged, ErrorChanged -> form accessibility, feedback
//	FeedsChanged                        -> feed list
//	PostsChanged, ViewedLinksChanged    -> post list
//	ClickedPostChanged                  -> modal
//	LanguageChanged                     -> every translated text
func Bind(store *state.Store, r *Renderer) func() {
	unsubscribe := []func(){
		store.Subscribe(func(e state.Event) {
			r.FormAccessibility(e.Current)
			r.Feedback(e.Current)
		}, state.LoadingProcessChanged, state.ErrorChanged),

		store.Subscribe(func(e state.Event) {
			r.Feeds(e.Current)
		}, state.FeedsChanged),

		store.Subscribe(func(e state.Event) {
			r.Posts(e.Current)
		}, state.PostsChanged, state.ViewedLinksChanged),

		store.Subscribe(func(e state.Event) {
			r.Modal(e.Current)
		}, state.ClickedPostChanged),

		store.Subscribe(func(e state.Event) {
			r.Language(e.Current.Language, e.Previous.Language)
		}, state.LanguageChanged),
	}

	return func() {
		for _, u := range unsubscribe {
			u()
		}
	}
}
