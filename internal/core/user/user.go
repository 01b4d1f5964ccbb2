package user

import "github.com/go-playground/validator/v10"

// User is a member of the network. Followers and Following are display
// counters carried by the profile and are not derived from the follow graph.
type User struct {
	ID            int64
	Name          string
	Avatar        string
	Bio           string
	Followers     int
	Following     int
	Profession    string
	Country       string
	Qualification string
	Gender        string
	ProfileViews  int
}

// ProfilePatch lists the profile fields a user may change. Nil fields keep
// their current value.
type ProfilePatch struct {
	Bio           *string `json:"bio" validate:"omitempty,max=500"`
	Avatar        *string `json:"avatar" validate:"omitempty,max=2048"`
	Profession    *string `json:"profession" validate:"omitempty,max=100"`
	Country       *string `json:"country" validate:"omitempty,max=100"`
	Qualification *string `json:"qualification" validate:"omitempty,max=100"`
	Gender        *string `json:"gender" validate:"omitempty,max=30"`
	ProfileViews  *int    `json:"profileViews" validate:"omitempty,gte=0"`
}

var validate = validator.New()

// Validate checks field limits of the patch.
func (p ProfilePatch) Validate() error {
	return validate.Struct(p)
}

// Empty reports whether the patch changes nothing.
func (p ProfilePatch) Empty() bool {
	return p.Bio == nil && p.Avatar == nil && p.Profession == nil && p.Country == nil &&
		p.Qualification == nil && p.Gender == nil && p.ProfileViews == nil
}

// Apply returns a copy of u with the patch merged in.
func (p ProfilePatch) Apply(u User) User {
	if p.Bio != nil {
		u.Bio = *p.Bio
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
	if p.Profession != nil {
		u.Profession = *p.Profession
	}
	if p.Country != nil {
		u.Country = *p.Country
	}
	if p.Qualification != nil {
		u.Qualification = *p.Qualification
	}
	if p.Gender != nil {
		u.Gender = *p.Gender
	}
	if p.ProfileViews != nil {
		u.ProfileViews = *p.ProfileViews
	}
	return u
}
