package post

import (
	"time"

	"manshurat/internal/core/post"
	"manshurat/internal/core/user"
	userPort "manshurat/internal/ports/user"
)

// UserLookup resolves a user id against a snapshot.
type UserLookup func(id int64) (user.User, bool)

type CommentDTO struct {
	ID        int64             `json:"id"`
	Text      string            `json:"text"`
	Author    *userPort.UserDTO `json:"author"`
	CreatedAt string            `json:"created_at"`
}

type PostDTO struct {
	ID        int64             `json:"id"`
	Content   string            `json:"content"`
	Image     string            `json:"image,omitempty"`
	UserID    int64             `json:"user_id"`
	User      *userPort.UserDTO `json:"user,omitempty"`
	LikeCount int               `json:"like_count"`
	Liked     bool              `json:"liked"`
	Comments  []*CommentDTO     `json:"comments"`
	CreatedAt string            `json:"created_at"`
}

// FormatTime renders timestamps the same way across every DTO.
func FormatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// CommentsToDTO maps comments, skipping those whose author no longer resolves.
func CommentsToDTO(comments []post.Comment, lookup UserLookup) []*CommentDTO {
	out := make([]*CommentDTO, 0, len(comments))
	for _, c := range comments {
		author, ok := lookup(c.AuthorID)
		if !ok {
			continue
		}
		out = append(out, &CommentDTO{
			ID:        c.ID,
			Text:      c.Text,
			Author:    userPort.ToDTO(author),
			CreatedAt: FormatTime(c.Timestamp),
		})
	}
	return out
}

// ToDTO maps a post as seen by viewerID. The second result is false when the
// author is missing and the post should not be shown.
func ToDTO(p post.Post, viewerID int64, lookup UserLookup) (*PostDTO, bool) {
	author, ok := lookup(p.AuthorID)
	if !ok {
		return nil, false
	}
	return &PostDTO{
		ID:        p.ID,
		Content:   p.Content,
		Image:     p.Image,
		UserID:    p.AuthorID,
		User:      userPort.ToDTO(author),
		LikeCount: len(p.Likes),
		Liked:     p.Likes.Has(viewerID),
		Comments:  CommentsToDTO(p.Comments, lookup),
		CreatedAt: FormatTime(p.Timestamp),
	}, true
}

// ListToDTO maps posts in order, dropping those with a dangling author.
func ListToDTO(posts []post.Post, viewerID int64, lookup UserLookup) []*PostDTO {
	out := make([]*PostDTO, 0, len(posts))
	for _, p := range posts {
		if dto, ok := ToDTO(p, viewerID, lookup); ok {
			out = append(out, dto)
		}
	}
	return out
}

type LikeDTO struct {
	TargetID  int64  `json:"target_id"`
	Kind      string `json:"kind"`
	Liked     bool   `json:"liked"`
	LikeCount int    `json:"like_count"`
}
