package model

// Content blob keys editable from the admin panel. Each maps to one JSON
// document; shape is free-form and owned by the admin UI.
const (
	ContentKeyMap  = "map"
	ContentKeyFAQ  = "faq"
	ContentKeySite = "site"
)

// ContentKeys lists the valid content blob keys.
var ContentKeys = []string{ContentKeyMap, ContentKeyFAQ, ContentKeySite}

// ValidContentKey reports whether key names one of the editable blobs.
func ValidContentKey(key string) bool {
	for _, k := range ContentKeys {
		if k == key {
			return true
		}
	}
	return false
}
