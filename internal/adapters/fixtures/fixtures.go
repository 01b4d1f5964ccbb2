// Package fixtures seeds the store from YAML: the built-in demo data set or a
// file named by SEED_FILE. Ages are durations before the load time.
package fixtures

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"manshurat/internal/core/follower"
	"manshurat/internal/core/notification"
	"manshurat/internal/core/post"
	"manshurat/internal/core/store"
	"manshurat/internal/core/user"
	"manshurat/internal/core/video"

	"gopkg.in/yaml.v3"
)

//go:embed demo.yaml
var demo []byte

type seedUser struct {
	ID            int64  `yaml:"id"`
	Name          string `yaml:"name"`
	Avatar        string `yaml:"avatar"`
	Bio           string `yaml:"bio"`
	Followers     int    `yaml:"followers"`
	Following     int    `yaml:"following"`
	Profession    string `yaml:"profession"`
	Country       string `yaml:"country"`
	Qualification string `yaml:"qualification"`
	Gender        string `yaml:"gender"`
	ProfileViews  int    `yaml:"profileViews"`
}

type seedComment struct {
	ID     int64  `yaml:"id"`
	Author int64  `yaml:"author"`
	Text   string `yaml:"text"`
	Age    string `yaml:"age"`
}

type seedPost struct {
	ID       int64         `yaml:"id"`
	Author   int64         `yaml:"author"`
	Content  string        `yaml:"content"`
	Image    string        `yaml:"image"`
	Likes    []int64       `yaml:"likes"`
	Age      string        `yaml:"age"`
	Comments []seedComment `yaml:"comments"`
}

type seedVideo struct {
	ID          int64         `yaml:"id"`
	Creator     int64         `yaml:"creator"`
	Title       string        `yaml:"title"`
	Description string        `yaml:"description"`
	Thumbnail   string        `yaml:"thumbnail"`
	URL         string        `yaml:"url"`
	Views       int           `yaml:"views"`
	Likes       []int64       `yaml:"likes"`
	Age         string        `yaml:"age"`
	Comments    []seedComment `yaml:"comments"`
}

type seedNotification struct {
	ID        int64  `yaml:"id"`
	Type      string `yaml:"type"`
	Actor     int64  `yaml:"actor"`
	Post      int64  `yaml:"post"`
	Kind      string `yaml:"kind"`
	Recipient int64  `yaml:"recipient"`
	Age       string `yaml:"age"`
	Read      bool   `yaml:"read"`
}

type seed struct {
	Viewer        int64              `yaml:"viewer"`
	Users         []seedUser         `yaml:"users"`
	Posts         []seedPost         `yaml:"posts"`
	Videos        []seedVideo        `yaml:"videos"`
	Notifications []seedNotification `yaml:"notifications"`
	Following     map[int64][]int64  `yaml:"following"`
}

// Demo returns the built-in demo snapshot.
func Demo(now time.Time) (*store.Snapshot, error) {
	return Parse(demo, now)
}

// LoadFile reads a seed file from disk.
func LoadFile(path string, now time.Time) (*store.Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(raw, now)
}

// Parse decodes a YAML seed document into a snapshot.
func Parse(raw []byte, now time.Time) (*store.Snapshot, error) {
	var doc seed
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return doc.build(now)
}

func (d *seed) build(now time.Time) (*store.Snapshot, error) {
	ids := &idTracker{seen: make(map[int64]string)}
	snap := &store.Snapshot{ViewerID: d.Viewer, Following: follower.Graph{}}

	for _, u := range d.Users {
		if err := ids.claim(u.ID, "user"); err != nil {
			return nil, err
		}
		snap.Users = append(snap.Users, user.User{
			ID:            u.ID,
			Name:          u.Name,
			Avatar:        u.Avatar,
			Bio:           u.Bio,
			Followers:     u.Followers,
			Following:     u.Following,
			Profession:    u.Profession,
			Country:       u.Country,
			Qualification: u.Qualification,
			Gender:        u.Gender,
			ProfileViews:  u.ProfileViews,
		})
	}
	if _, ok := snap.Viewer(); !ok {
		return nil, fmt.Errorf("viewer %d is not a seeded user", d.Viewer)
	}

	for _, p := range d.Posts {
		if err := ids.claim(p.ID, "post"); err != nil {
			return nil, err
		}
		at, err := ago(now, p.Age)
		if err != nil {
			return nil, fmt.Errorf("post %d: %w", p.ID, err)
		}
		comments, err := ids.comments(p.Comments, now)
		if err != nil {
			return nil, fmt.Errorf("post %d: %w", p.ID, err)
		}
		snap.Posts = append(snap.Posts, post.Post{
			ID:        p.ID,
			AuthorID:  p.Author,
			Content:   p.Content,
			Image:     p.Image,
			Likes:     uniqueLikes(p.Likes),
			Comments:  comments,
			Timestamp: at,
		})
	}

	for _, v := range d.Videos {
		if err := ids.claim(v.ID, "video"); err != nil {
			return nil, err
		}
		at, err := ago(now, v.Age)
		if err != nil {
			return nil, fmt.Errorf("video %d: %w", v.ID, err)
		}
		comments, err := ids.comments(v.Comments, now)
		if err != nil {
			return nil, fmt.Errorf("video %d: %w", v.ID, err)
		}
		snap.Videos = append(snap.Videos, video.Video{
			ID:          v.ID,
			CreatorID:   v.Creator,
			Title:       v.Title,
			Description: v.Description,
			Thumbnail:   v.Thumbnail,
			VideoURL:    v.URL,
			Views:       v.Views,
			Likes:       uniqueLikes(v.Likes),
			Comments:    comments,
			Timestamp:   at,
		})
	}

	for _, n := range d.Notifications {
		if err := ids.claim(n.ID, "notification"); err != nil {
			return nil, err
		}
		at, err := ago(now, n.Age)
		if err != nil {
			return nil, fmt.Errorf("notification %d: %w", n.ID, err)
		}
		kind := notification.TargetKind(n.Kind)
		if kind == "" {
			kind = notification.TargetPost
		}
		snap.Notifications = append(snap.Notifications, notification.Notification{
			ID:           n.ID,
			Type:         notification.Type(n.Type),
			ActorID:      n.Actor,
			PostID:       n.Post,
			TargetKind:   kind,
			PostAuthorID: n.Recipient,
			Timestamp:    at,
			Read:         n.Read,
		})
	}

	for followerID, targets := range d.Following {
		var set follower.Set
		for _, id := range targets {
			if id != followerID && !set.Has(id) {
				set = append(set, id)
			}
		}
		if len(set) > 0 {
			snap.Following[followerID] = set
		}
	}

	snap.LastID = ids.max
	return snap, nil
}

// idTracker enforces one id space across every entity kind.
type idTracker struct {
	seen map[int64]string
	max  int64
}

func (t *idTracker) claim(id int64, kind string) error {
	if id <= 0 {
		return fmt.Errorf("%s id must be positive, got %d", kind, id)
	}
	// users have their own id space
	key := id
	if kind == "user" {
		key = -id
	}
	if prev, ok := t.seen[key]; ok {
		return fmt.Errorf("%s id %d already used by a %s", kind, id, prev)
	}
	t.seen[key] = kind
	if kind != "user" && id > t.max {
		t.max = id
	}
	return nil
}

func (t *idTracker) comments(in []seedComment, now time.Time) ([]post.Comment, error) {
	out := make([]post.Comment, 0, len(in))
	for _, c := range in {
		if err := t.claim(c.ID, "comment"); err != nil {
			return nil, err
		}
		at, err := ago(now, c.Age)
		if err != nil {
			return nil, fmt.Errorf("comment %d: %w", c.ID, err)
		}
		out = append(out, post.Comment{ID: c.ID, AuthorID: c.Author, Text: c.Text, Timestamp: at})
	}
	return out, nil
}

func ago(now time.Time, age string) (time.Time, error) {
	if age == "" {
		return now, nil
	}
	d, err := time.ParseDuration(age)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad age %q: %w", age, err)
	}
	return now.Add(-d), nil
}

func uniqueLikes(ids []int64) post.Likes {
	out := post.Likes{}
	for _, id := range ids {
		if !out.Has(id) {
			out = append(out, id)
		}
	}
	return out
}
