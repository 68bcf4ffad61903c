package models

import "net/url"

const avatarBaseURL = "https://api.dicebear.com/9.x/pixel-art/svg"

// Friend is one entry of the friends list.
type Friend struct {
	// ID is the creation timestamp in milliseconds, bumped if taken.
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// AvatarFor derives the avatar URL for a (trimmed) name. The same name
// always yields the same URL.
func AvatarFor(name string) string {
	return avatarBaseURL + "?seed=" + url.QueryEscape(name)
}
