// Package entity defines the domain models for the location feature.
package entity

// Coordinates is a geographic position (WGS 84).
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}
