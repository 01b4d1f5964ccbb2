package follower

type FollowDTO struct {
	UserID    int64 `json:"user_id"`
	Following bool  `json:"following"`
}
