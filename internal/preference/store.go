// Copyright (c) 2026 Ponydex. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package preference

import "context"

// Repository persists preferences per client.
type Repository interface {
	// Get returns the saved preferences. The boolean is false when nothing was saved.
	Get(context context.Context, clientID string) (Preferences, bool, error)
	// Save stores the preferences without expiry.
	Save(context context.Context, clientID string, prefs Preferences) error
}
