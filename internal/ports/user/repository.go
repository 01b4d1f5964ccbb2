package user

import "manshurat/internal/core/user"

// UserDTO is the compact form used wherever a user is referenced.
type UserDTO struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

type ProfileDTO struct {
	UserDTO
	Bio           string `json:"bio"`
	Followers     int    `json:"followers"`
	Following     int    `json:"following"`
	Profession    string `json:"profession,omitempty"`
	Country       string `json:"country,omitempty"`
	Qualification string `json:"qualification,omitempty"`
	Gender        string `json:"gender,omitempty"`
	ProfileViews  int    `json:"profileViews,omitempty"`
	IsFollowed    bool   `json:"isFollowed"`
}

func ToDTO(u user.User) *UserDTO {
	return &UserDTO{ID: u.ID, Name: u.Name, Avatar: u.Avatar}
}

func ToProfileDTO(u user.User, followed bool) *ProfileDTO {
	return &ProfileDTO{
		UserDTO:       *ToDTO(u),
		Bio:           u.Bio,
		Followers:     u.Followers,
		Following:     u.Following,
		Profession:    u.Profession,
		Country:       u.Country,
		Qualification: u.Qualification,
		Gender:        u.Gender,
		ProfileViews:  u.ProfileViews,
		IsFollowed:    followed,
	}
}
