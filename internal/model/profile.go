package model

type Profile struct {
	ID        int64
	Name      string
	Slug      string
	Email     string
	Roles     []string
	AvatarURL string
}
