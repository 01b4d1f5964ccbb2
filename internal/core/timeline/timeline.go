// Package timeline derives what a client displays from a snapshot: ordered
// feeds, profile pages, follow suggestions, search results and the inbox.
// Nothing here mutates its input and nothing is cached.
package timeline

import (
	"cmp"
	"slices"
	"strings"
	"time"

	"manshurat/internal/core/follower"
	"manshurat/internal/core/notification"
	"manshurat/internal/core/post"
	"manshurat/internal/core/user"
	"manshurat/internal/core/video"

	"golang.org/x/text/cases"
)

type Order string

const (
	Newest    Order = "newest"
	Oldest    Order = "oldest"
	MostLiked Order = "most_liked"
)

// ParseOrder maps a query value to an Order. Unknown or empty values fall back
// to Newest.
func ParseOrder(s string) (Order, bool) {
	switch o := Order(strings.ToLower(strings.TrimSpace(s))); o {
	case Newest, Oldest, MostLiked:
		return o, true
	case "":
		return Newest, true
	default:
		return Newest, false
	}
}

// compare orders two items by o. Ties return 0 so a stable sort keeps the
// collection order.
func compare(o Order, at, bt time.Time, al, bl int) int {
	switch o {
	case Oldest:
		return at.Compare(bt)
	case MostLiked:
		return cmp.Compare(bl, al)
	default:
		return bt.Compare(at)
	}
}

// Sort returns a new slice of posts ordered by o.
func Sort(posts []post.Post, o Order) []post.Post {
	out := slices.Clone(posts)
	slices.SortStableFunc(out, func(a, b post.Post) int {
		return compare(o, a.Timestamp, b.Timestamp, len(a.Likes), len(b.Likes))
	})
	return out
}

// SortVideos returns a new slice of videos ordered by o.
func SortVideos(videos []video.Video, o Order) []video.Video {
	out := slices.Clone(videos)
	slices.SortStableFunc(out, func(a, b video.Video) int {
		return compare(o, a.Timestamp, b.Timestamp, len(a.Likes), len(b.Likes))
	})
	return out
}

// ByAuthor is the profile view: posts written by authorID, ordered by o.
func ByAuthor(posts []post.Post, authorID int64, o Order) []post.Post {
	var mine []post.Post
	for _, p := range posts {
		if p.AuthorID == authorID {
			mine = append(mine, p)
		}
	}
	return Sort(mine, o)
}

// Following is the home timeline: posts by users in following, ordered by o.
func Following(posts []post.Post, following follower.Set, o Order) []post.Post {
	var out []post.Post
	for _, p := range posts {
		if following.Has(p.AuthorID) {
			out = append(out, p)
		}
	}
	return Sort(out, o)
}

// Suggested lists users the viewer could follow, in store order, at most limit
// entries. A non-positive limit means no truncation.
func Suggested(users []user.User, viewerID int64, following follower.Set, limit int) []user.User {
	var out []user.User
	for _, u := range users {
		if limit > 0 && len(out) == limit {
			break
		}
		if u.ID == viewerID || following.Has(u.ID) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Search matches query against user names ignoring case, excluding the viewer.
func Search(users []user.User, viewerID int64, query string) []user.User {
	// A Caser keeps state between calls and may not be shared.
	fold := cases.Fold()
	q := fold.String(strings.TrimSpace(query))
	if q == "" {
		return nil
	}
	var out []user.User
	for _, u := range users {
		if u.ID == viewerID {
			continue
		}
		if strings.Contains(fold.String(u.Name), q) {
			out = append(out, u)
		}
	}
	return out
}

// Inbox returns notifications addressed to viewerID, newest first.
func Inbox(ns []notification.Notification, viewerID int64) []notification.Notification {
	var out []notification.Notification
	for _, n := range ns {
		if n.PostAuthorID == viewerID {
			out = append(out, n)
		}
	}
	slices.SortStableFunc(out, func(a, b notification.Notification) int {
		if c := b.Timestamp.Compare(a.Timestamp); c != 0 {
			return c
		}
		return cmp.Compare(b.ID, a.ID)
	})
	return out
}
