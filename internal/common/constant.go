// Package common contains shared constants and sentinel errors used across
// glitterpage components.
package common

// Durable storage keys. Values under the picture, effect and about-me keys
// are plain text; the list keys hold JSON arrays.
const (
	KeyProfilePicture = "profileImage"
	KeyProfileEffect  = "profileEffect"
	KeyAboutMe        = "aboutMe"
	KeyFriends        = "friends"
	KeyDiaryEntries   = "diaryEntries"
	KeyScrapbook      = "scrapbookMemories"
)
