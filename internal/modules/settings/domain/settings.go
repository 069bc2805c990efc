package domain

// Settings are the user preferences the host persists. The scheduling core
// reads only CarryOver and Motivation; DarkMode is display-only.
type Settings struct {
	DarkMode   bool `json:"darkMode"`
	CarryOver  bool `json:"carryOver"`
	Motivation bool `json:"motivation"`
}

// Defaults match a fresh profile: carry-over and motivational popups on.
func Defaults() Settings {
	return Settings{DarkMode: false, CarryOver: true, Motivation: true}
}
