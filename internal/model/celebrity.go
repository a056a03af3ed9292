package model

import "time"

// CelebrityID uniquely identifies a celebrity
type CelebrityID string

// DefaultCelebrityPhoto is used when no photo reference is supplied
const DefaultCelebrityPhoto = "/images/celebrities/default.jpg"

// Point is a geographic coordinate pair
type Point struct {
	Longitude float64
	Latitude  float64
}

// Celebrity is a catalog entry players guess the birth province of
type Celebrity struct {
	ID            CelebrityID
	Name          string
	BirthProvince string
	Category      string
	Photo         string
	Location      Point
	Bio           string // optional, max 500 chars
	BirthYear     int    // optional, 1800..current year; 0 when unset
	Active        bool   // soft-delete marker; reads filter on this explicitly
	CreatedBy     UserID
	CreatedAt     time.Time
}
