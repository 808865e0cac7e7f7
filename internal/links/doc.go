// Package links persists the associations between content records and
// gallery events.
//
// The document is a single JSON file rewritten atomically on every save.
// A Store guards it two ways: Lock takes an exclusive advisory lock for a
// whole linking session, and Save refuses to overwrite a file whose
// lastUpdated stamp changed since the store last read or wrote it.
package links
