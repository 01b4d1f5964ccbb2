package video

import (
	"manshurat/internal/core/video"
	postPort "manshurat/internal/ports/post"
	userPort "manshurat/internal/ports/user"
)

type VideoDTO struct {
	ID          int64                  `json:"id"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Thumbnail   string                 `json:"thumbnail"`
	VideoURL    string                 `json:"video_url"`
	Views       int                    `json:"views"`
	CreatorID   int64                  `json:"creator_id"`
	Creator     *userPort.UserDTO      `json:"creator,omitempty"`
	LikeCount   int                    `json:"like_count"`
	Liked       bool                   `json:"liked"`
	Following   bool                   `json:"following"`
	CanDelete   bool                   `json:"can_delete"`
	Comments    []*postPort.CommentDTO `json:"comments"`
	CreatedAt   string                 `json:"created_at"`
}

// ToDTO maps a video as seen by viewerID; false means the creator is missing.
func ToDTO(v video.Video, viewerID int64, following bool, lookup postPort.UserLookup) (*VideoDTO, bool) {
	creator, ok := lookup(v.CreatorID)
	if !ok {
		return nil, false
	}
	return &VideoDTO{
		ID:          v.ID,
		Title:       v.Title,
		Description: v.Description,
		Thumbnail:   v.Thumbnail,
		VideoURL:    v.VideoURL,
		Views:       v.Views,
		CreatorID:   v.CreatorID,
		Creator:     userPort.ToDTO(creator),
		LikeCount:   len(v.Likes),
		Liked:       v.Likes.Has(viewerID),
		Following:   following,
		CanDelete:   v.CreatorID == viewerID,
		Comments:    postPort.CommentsToDTO(v.Comments, lookup),
		CreatedAt:   postPort.FormatTime(v.Timestamp),
	}, true
}
