package models

// Effect is a visual filter applied to the profile picture.
type Effect string

const (
	EffectNone    Effect = "none"
	EffectSepia   Effect = "sepia"
	EffectEmo     Effect = "emo"
	EffectRainbow Effect = "rainbow"
	EffectDreamy  Effect = "dreamy"
)

// Effects lists every effect in menu order.
var Effects = []Effect{EffectNone, EffectSepia, EffectEmo, EffectRainbow, EffectDreamy}

var effectClasses = map[Effect]string{
	EffectNone:    "",
	EffectSepia:   "sepia",
	EffectEmo:     "grayscale contrast-125",
	EffectRainbow: "animate-hue-rotate",
	EffectDreamy:  "blur-[0.5px] brightness-110 saturate-150",
}

// Valid reports whether e is one of Effects.
func (e Effect) Valid() bool {
	_, ok := effectClasses[e]
	return ok
}

// Classes returns the style classes a renderer applies for e.
func (e Effect) Classes() string {
	return effectClasses[e]
}

// DefaultPicture is shown until the user uploads one.
const DefaultPicture = "https://picsum.photos/200/200?grayscale"

// Profile always exists; its fields are persisted independently.
type Profile struct {
	Picture string `json:"picture"`
	Effect  Effect `json:"effect"`
	AboutMe string `json:"aboutMe"`
}

// DefaultProfile is the profile of a fresh install.
func DefaultProfile() Profile {
	return Profile{Picture: DefaultPicture, Effect: EffectNone}
}
