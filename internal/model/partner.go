package model

type PartnerInfo struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Role           string  `json:"role,omitempty"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
}
