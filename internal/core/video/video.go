package video

import (
	"time"

	"manshurat/internal/core/post"

	"github.com/go-playground/validator/v10"
)

type Video struct {
	ID          int64
	CreatorID   int64
	Title       string
	Description string
	Thumbnail   string
	VideoURL    string
	Views       int
	Likes       post.Likes
	Comments    []post.Comment
	Timestamp   time.Time
}

// Draft carries the creator-supplied fields of a new video.
type Draft struct {
	Title       string `json:"title" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
	Thumbnail   string `json:"thumbnail" validate:"max=2048"`
	VideoURL    string `json:"videoUrl" validate:"required,max=2048"`
}

var validate = validator.New()

// Validate rejects drafts without a title or a video reference.
func (d Draft) Validate() error {
	return validate.Struct(d)
}
