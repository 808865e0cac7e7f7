// Package config loads, normalizes, and validates galerija configuration data.
//
// It supplies repository defaults matching the site layout
// (public/images/Galerija, src/content, src/data/contentGalleryLinks.json),
// expands user paths (including tilde shortcuts), reads TOML files, loads
// .env files and honours GALERIJA_* environment overrides.
//
// Always obtain settings through this package so downstream code receives
// absolute paths, a canonical URL prefix and clear validation errors.
package config
