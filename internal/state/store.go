package state

import (
	"fmt"
	"slices"
	"sync"

	"github.com/nDmitry/rssreader/internal/entity"
)

// Change tags which part of the state an event is about
type Change uint8

const (
	LanguageChanged Change = iota + 1
	LoadingProcessChanged
	ErrorChanged
	FeedsChanged
	PostsChanged
	ViewedLinksChanged
	ClickedPostChanged
)

func (c Change) String() string {
	switch c {
	case LanguageChanged:
		return "lng"
	case LoadingProcessChanged:
		return "loadingProcess"
	case ErrorChanged:
		return "error"
	case FeedsChanged:
		return "parsedFeeds"
	case PostsChanged:
		return "parsedPosts"
	case ViewedLinksChanged:
		return "uiState.viewedLinks"
	case ClickedPostChanged:
		return "uiState.clickedPostLink"
	default:
		return fmt.Sprintf("change(%d)", uint8(c))
	}
}

// Event is delivered to subscribers after a mutation
type Event struct {
	Change   Change
	Current  State
	Previous State
}

// Listener receives events synchronously. It may read the store but must not mutate it.
type Listener func(Event)

type subscription struct {
	id       int
	listener Listener
	changes  []Change
}

// Store is the single state container. Mutations are serialized and every applied
// mutation is dispatched to the subscribers of its Change in mutation order.
type Store struct {
	mu    sync.Mutex
	state State
	subs  []subscription
	next  int

	// held while listeners run; acquired before mu is released
	dispatchMu sync.Mutex
}

// NewStore creates a store in the ready state
func NewStore(lng string) *Store {
	return &Store{
		state: State{
			Language:       lng,
			LoadingProcess: ProcessReady,
		},
	}
}

// Subscribe registers listener for the given changes, or all changes if none given.
// The returned function removes the subscription.
func (s *Store) Subscribe(listener Listener, changes ...Change) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.next++
	id := s.next
	s.subs = append(s.subs, subscription{id: id, listener: listener, changes: changes})

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()

		s.subs = slices.DeleteFunc(s.subs, func(sub subscription) bool {
			return sub.id == id
		})
	}
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state.clone()
}

// FeedURLs lists the URLs of known feeds
func (s *Store) FeedURLs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	urls := make([]string, 0, len(s.state.Feeds))

	for _, f := range s.state.Feeds {
		urls = append(urls, f.URL)
	}

	return urls
}

// SetLanguage switches the interface language
func (s *Store) SetLanguage(lng string) {
	s.update(func(st *State) []Change {
		if st.Language == lng {
			return nil
		}

		st.Language = lng

		return []Change{LanguageChanged}
	})
}

// SetLoadingProcess moves the submission lifecycle
func (s *Store) SetLoadingProcess(p Process) {
	s.update(func(st *State) []Change {
		if st.LoadingProcess == p {
			return nil
		}

		st.LoadingProcess = p

		return []Change{LoadingProcessChanged}
	})
}

// SetValid records whether the last submission was accepted. Nothing subscribes to it:
// the feedback is re-rendered by the loading process or error change that follows.
func (s *Store) SetValid(valid bool) {
	s.update(func(st *State) []Change {
		st.Valid = valid
		return nil
	})
}

// SetInput records the text typed into the URL field. Like SetValid it dispatches
// nothing; the loading process change that follows re-renders the form.
func (s *Store) SetInput(input string) {
	s.update(func(st *State) []Change {
		st.Input = input
		return nil
	})
}

// SetError records the last submission error, entity.ErrorNone to clear it
func (s *Store) SetError(kind entity.ErrorKind) {
	s.update(func(st *State) []Change {
		if st.Error == kind {
			return nil
		}

		st.Error = kind

		return []Change{ErrorChanged}
	})
}

// AddFeed prepends a newly subscribed feed and its posts.
// It fails with entity.ErrDuplication if a feed with the same URL is known.
func (s *Store) AddFeed(feed entity.Feed, posts []entity.Post) error {
	var err error

	s.update(func(st *State) []Change {
		if slices.ContainsFunc(st.Feeds, func(f entity.Feed) bool { return f.URL == feed.URL }) {
			err = fmt.Errorf("%s: %w", feed.URL, entity.ErrDuplication)
			return nil
		}

		st.Feeds = slices.Insert(st.Feeds, 0, feed)

		changes := []Change{FeedsChanged}

		if len(posts) > 0 {
			st.Posts = slices.Insert(st.Posts, 0, posts...)
			changes = append(changes, PostsChanged)
		}

		return changes
	})

	return err
}

// PrependNewPosts prepends the posts whose title is not present yet and returns them.
// Titles are compared across all feeds, so a post is dropped when any feed already
// has a post with the same title.
func (s *Store) PrependNewPosts(posts []entity.Post) []entity.Post {
	var added []entity.Post

	s.update(func(st *State) []Change {
		added = NewByTitle(posts, st.Posts)

		if len(added) == 0 {
			return nil
		}

		st.Posts = slices.Insert(st.Posts, 0, added...)

		return []Change{PostsChanged}
	})

	return added
}

// MarkViewed adds link to the viewed links unless already there
func (s *Store) MarkViewed(link string) {
	s.update(func(st *State) []Change {
		if link == "" || slices.Contains(st.UI.ViewedLinks, link) {
			return nil
		}

		st.UI.ViewedLinks = append(st.UI.ViewedLinks, link)

		return []Change{ViewedLinksChanged}
	})
}

// ClickPost selects the post shown in the preview modal, "" to close it
func (s *Store) ClickPost(link string) {
	s.update(func(st *State) []Change {
		if st.UI.ClickedPostLink == link {
			return nil
		}

		st.UI.ClickedPostLink = link

		return []Change{ClickedPostChanged}
	})
}

// update applies mutate and dispatches the changes it reports.
// The dispatch lock is taken before the state lock is released so that listeners
// observe mutations in the order they were applied.
func (s *Store) update(mutate func(st *State) []Change) {
	s.mu.Lock()

	previous := s.state.clone()
	changes := mutate(&s.state)

	if len(changes) == 0 {
		s.mu.Unlock()
		return
	}

	s.state.Revision++
	current := s.state.clone()

	type delivery struct {
		listener Listener
		change   Change
	}

	var deliveries []delivery

	for _, change := range changes {
		for _, sub := range s.subs {
			if len(sub.changes) == 0 || slices.Contains(sub.changes, change) {
				deliveries = append(deliveries, delivery{listener: sub.listener, change: change})
			}
		}
	}

	s.dispatchMu.Lock()
	s.mu.Unlock()

	defer s.dispatchMu.Unlock()

	for _, d := range deliveries {
		d.listener(Event{Change: d.change, Current: current, Previous: previous})
	}
}

// NewByTitle returns the candidates whose title does not occur in existing, keeping
// candidate order. Candidates repeating a title among themselves are all kept.
func NewByTitle(candidates, existing []entity.Post) []entity.Post {
	known := make(map[string]struct{}, len(existing))

	for _, p := range existing {
		known[p.Title] = struct{}{}
	}

	var fresh []entity.Post

	for _, p := range candidates {
		if _, ok := known[p.Title]; !ok {
			fresh = append(fresh, p)
		}
	}

	return fresh
}
