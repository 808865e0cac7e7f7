// Package scanner walks the on-disk gallery tree and reports what it finds
// without interpreting folder names.
//
// The expected layout is <root>/<year>/<event>/<image> plus loose images
// directly inside a year folder. Year folders whose names do not start with
// an integer are ignored, event folders without images are dropped and any
// unreadable year or event subtree is logged and skipped. Only a root that
// exists but cannot be listed aborts a scan.
package scanner
