package models

// ScrapbookItem is one photo in the collage. Rotate and TapeColor are picked
// at creation and never change.
type ScrapbookItem struct {
	ID        int64  `json:"id"`
	Image     string `json:"img"`
	Caption   string `json:"caption"`
	Rotate    string `json:"rotate"`
	TapeColor string `json:"tapeColor"`
	Date      string `json:"date"`
}

// DefaultCaption replaces a blank caption.
const DefaultCaption = "Sweet Memory 💖"

var (
	Rotations = []string{
		"rotate-1", "-rotate-1", "rotate-2", "-rotate-2",
		"rotate-3", "-rotate-3", "rotate-6", "-rotate-6",
	}
	TapeColors = []string{
		"bg-pink-200/80", "bg-blue-200/80", "bg-purple-200/80",
		"bg-green-200/80", "bg-yellow-200/80",
	}
)
