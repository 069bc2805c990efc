package dto

type SettingsOutput struct {
	DarkMode   bool
	CarryOver  bool
	Motivation bool
}
