package entity

// Feed is a subscribed RSS source.
type Feed struct {
	// Generated identifier, rendered as data-feed-id.
	ID          string
	URL         string
	Title       string
	Description string
}

// Post is a single item of a feed.
type Post struct {
	ID string
	// ID of the owning feed, lookup only.
	FeedID      string
	Title       string
	Link        string
	Description string
}
