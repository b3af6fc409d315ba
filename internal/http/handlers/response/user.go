package response

import (
	"claon/internal/core/domain/user"
	"time"
)

type User struct {
	ID                     int64     `json:"id"`
	Email                  string    `json:"email"`
	Nickname               string    `json:"nickname"`
	PhoneNumber            string    `json:"phone_number"`
	MetropolitanActiveArea string    `json:"metropolitan_active_area"`
	BasicLocalActiveArea   string    `json:"basic_local_active_area"`
	ImagePath              string    `json:"image_path"`
	InstagramID            *string   `json:"instagram_id"`
	HasPassword            bool      `json:"has_password"`
	CreatedAt              time.Time `json:"created_at"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.Nickname = string(du.Nickname)
	u.PhoneNumber = string(du.PhoneNumber)
	u.MetropolitanActiveArea = string(du.MetropolitanActiveArea)
	u.BasicLocalActiveArea = du.BasicLocalActiveArea.Name
	u.ImagePath = du.ImagePath
	if du.InstagramID.IsPresent {
		instagramID := string(du.InstagramID.Value)
		u.InstagramID = &instagramID
	}
	u.HasPassword = du.HasPassword()
	u.CreatedAt = du.CreatedAt
}
