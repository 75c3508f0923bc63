// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package preference stores cosmetic UI state per anonymous client.

A client is identified by the X-Client-ID header. Until a client saves a value,
it sees the defaults: the theme its browser prefers (reported through the
Sec-CH-Prefers-Color-Scheme client hint), else light, and a closed sidebar.
*/
package preference

// Theme is the colour scheme of the UI.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

const (
	FieldTheme = "theme"
)

// Preferences is the UI state of one client.
type Preferences struct {
	Theme       Theme `json:"theme"`
	SidebarOpen bool  `json:"sidebar_open"`
}

// Update is a partial change. Nil fields are left unchanged.
type Update struct {
	Theme       *Theme `json:"theme"`
	SidebarOpen *bool  `json:"sidebar_open"`
}

// Defaults returns the initial state of a client that saved nothing.
func Defaults(prefersDark bool) Preferences {
	if prefersDark {
		return Preferences{Theme: ThemeDark}
	}
	return Preferences{Theme: ThemeLight}
}

// Apply returns a copy of prefs with the update applied.
func (update Update) Apply(prefs Preferences) Preferences {
	if update.Theme != nil {
		prefs.Theme = *update.Theme
	}
	if update.SidebarOpen != nil {
		prefs.SidebarOpen = *update.SidebarOpen
	}
	return prefs
}
