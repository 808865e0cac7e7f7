// Package gallery turns scanned folders into the gallery model of periods,
// events and images, and provides a flattened event index for lookups.
package gallery
