package httpapi

import (
	"context"

	"manshurat/internal/adapters/httpapi/middleware"
	"manshurat/internal/adapters/metrics"
	"manshurat/internal/core/timeline"
	userEntity "manshurat/internal/core/user"
	videoEntity "manshurat/internal/core/video"
	"manshurat/internal/ports/events"
	followerPort "manshurat/internal/ports/follower"
	notificationPort "manshurat/internal/ports/notification"
	postPort "manshurat/internal/ports/post"
	userPort "manshurat/internal/ports/user"
	videoPort "manshurat/internal/ports/video"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Inbound ports: each controller depends only on the use case it drives.

type UserUseCase interface {
	GetViewer(ctx context.Context) (*userPort.ProfileDTO, error)
	SwitchViewer(ctx context.Context, userID int64) (*userPort.ProfileDTO, error)
	GetProfile(ctx context.Context, userID int64) (*userPort.ProfileDTO, error)
	UpdateProfile(ctx context.Context, userID int64, patch userEntity.ProfilePatch) (*userPort.ProfileDTO, error)
	Search(ctx context.Context, query string) ([]*userPort.UserDTO, error)
	Suggested(ctx context.Context) ([]*userPort.UserDTO, error)
}

type PostUseCase interface {
	CreatePost(ctx context.Context, content, image string) (*postPort.PostDTO, error)
	ToggleLike(ctx context.Context, postID int64) (*postPort.LikeDTO, error)
	AddComment(ctx context.Context, postID int64, text string) (*postPort.CommentDTO, error)
	Feed(ctx context.Context, order timeline.Order) ([]*postPort.PostDTO, error)
	ProfilePosts(ctx context.Context, userID int64, order timeline.Order) ([]*postPort.PostDTO, error)
}

type VideoUseCase interface {
	CreateVideo(ctx context.Context, draft videoEntity.Draft) (*videoPort.VideoDTO, error)
	ToggleLike(ctx context.Context, videoID int64) (*postPort.LikeDTO, error)
	AddComment(ctx context.Context, videoID int64, text string) (*postPort.CommentDTO, error)
	RecordView(ctx context.Context, videoID int64) (*videoPort.VideoDTO, error)
	DeleteVideo(ctx context.Context, videoID int64) (bool, error)
	Feed(ctx context.Context, order timeline.Order) ([]*videoPort.VideoDTO, error)
}

type TimelineUseCase interface {
	Home(ctx context.Context, order timeline.Order) ([]*postPort.PostDTO, error)
}

type FollowerUseCase interface {
	ToggleFollow(ctx context.Context, targetID int64) (*followerPort.FollowDTO, error)
	Following(ctx context.Context) ([]*userPort.UserDTO, error)
}

type NotificationUseCase interface {
	Inbox(ctx context.Context) (*notificationPort.InboxDTO, error)
	UnreadCount(ctx context.Context) int
	MarkAllRead(ctx context.Context, recipientID int64) (int, error)
	ViewerID(ctx context.Context) int64
}

// PanelScheduler defers the read transition after the panel opens.
type PanelScheduler interface {
	Schedule(recipientID int64)
	Cancel(recipientID int64) bool
}

// EventReader exposes recently published events; optional.
type EventReader interface {
	Recent(n int) []events.Event
}

// UseCases bundles what SetupRoutes wires together.
type UseCases struct {
	Users         UserUseCase
	Posts         PostUseCase
	Videos        VideoUseCase
	Timeline      TimelineUseCase
	Followers     FollowerUseCase
	Notifications NotificationUseCase
	Panel         PanelScheduler
	Events        EventReader
}

// SetupRoutes only routes; use cases are injected from outside.
func SetupRoutes(uc UseCases, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.AccessLog(logger), metrics.Middleware())

	users := NewUserController(uc.Users)
	posts := NewPostController(uc.Posts)
	videos := NewVideoController(uc.Videos)
	followers := NewFollowerController(uc.Followers)
	notifications := NewNotificationController(uc.Notifications, uc.Panel)

	r.GET("/viewer", users.GetViewer)
	r.PUT("/viewer", users.SwitchViewer)

	r.GET("/users/search", users.Search)
	r.GET("/users/suggested", users.Suggested)
	r.GET("/users/:id", users.GetProfile)
	r.PATCH("/users/:id", users.UpdateProfile)
	r.GET("/users/:id/posts", posts.ProfilePosts)

	r.GET("/feed", posts.Feed)
	r.GET("/timeline", NewTimelineController(uc.Timeline).Home)
	r.POST("/posts", posts.CreatePost)
	r.POST("/posts/:id/like", posts.ToggleLike)
	r.POST("/posts/:id/comments", posts.AddComment)

	r.GET("/videos", videos.Feed)
	r.POST("/videos", videos.CreateVideo)
	r.POST("/videos/:id/like", videos.ToggleLike)
	r.POST("/videos/:id/comments", videos.AddComment)
	r.POST("/videos/:id/views", videos.RecordView)
	r.DELETE("/videos/:id", videos.DeleteVideo)

	r.POST("/follow/:id", followers.ToggleFollow)
	r.GET("/following", followers.Following)

	r.GET("/notifications", notifications.Inbox)
	r.GET("/notifications/unread-count", notifications.UnreadCount)
	r.POST("/notifications/read-all", notifications.MarkAllRead)
	r.POST("/notifications/panel/open", notifications.OpenPanel)
	r.POST("/notifications/panel/close", notifications.ClosePanel)

	r.GET("/metrics", gin.WrapH(metrics.Handler()))
	if uc.Events != nil {
		r.GET("/events", NewEventController(uc.Events).Recent)
	}
	return r
}
