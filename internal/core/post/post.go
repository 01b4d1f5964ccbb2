package post

import (
	"slices"
	"time"
)

// Comment is immutable once created and lives inside its parent post or video.
type Comment struct {
	ID        int64
	AuthorID  int64
	Text      string
	Timestamp time.Time
}

// Likes is the ordered set of user ids that liked an item.
type Likes []int64

// Has reports whether userID is in the set.
func (l Likes) Has(userID int64) bool {
	return slices.Contains(l, userID)
}

// Toggle returns a new set with userID flipped and whether it is now a member.
// The receiver is never modified.
func (l Likes) Toggle(userID int64) (Likes, bool) {
	if i := slices.Index(l, userID); i >= 0 {
		out := make(Likes, 0, len(l)-1)
		out = append(out, l[:i]...)
		return append(out, l[i+1:]...), false
	}
	out := make(Likes, 0, len(l)+1)
	out = append(out, l...)
	return append(out, userID), true
}

// AppendComment returns a new comment sequence ending with c.
func AppendComment(comments []Comment, c Comment) []Comment {
	out := make([]Comment, 0, len(comments)+1)
	out = append(out, comments...)
	return append(out, c)
}

type Post struct {
	ID        int64
	AuthorID  int64
	Content   string
	Image     string
	Likes     Likes
	Comments  []Comment
	Timestamp time.Time
}
