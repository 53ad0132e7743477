package models

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UnknownLocation is the fallback location name used when an upload
// does not carry one.
const UnknownLocation = "unknown location"

// Location is where a photo was taken. Name is always set, falling
// back to UnknownLocation. Lat and Lon come from image metadata and
// are either both set or both absent.
type Location struct {
	Name string   `json:"name" bson:"name"`
	Lat  *float64 `json:"lat,omitempty" bson:"lat,omitempty"`
	Lon  *float64 `json:"lon,omitempty" bson:"lon,omitempty"`
}

// PhotoRecord is the metadata document for one uploaded photo. The
// blob itself lives in object storage under ImageURL. Records are
// create-only and never mutated.
type PhotoRecord struct {
	ID        bson.ObjectID `json:"id" bson:"_id,omitempty"`
	OwnerID   string        `json:"owner_id" bson:"owner_id"`
	ImageURL  string        `json:"image_url" bson:"image_url"`
	FileName  string        `json:"file_name" bson:"file_name"`
	DateTaken *time.Time    `json:"date_taken,omitempty" bson:"date_taken,omitempty"`
	Year      int           `json:"year" bson:"year"`
	Location  Location      `json:"location" bson:"location"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
}

// Coordinates is the nullable lat/lon pair returned to upload callers.
type Coordinates struct {
	Lat *float64 `json:"lat"`
	Lon *float64 `json:"lon"`
}

// UploadResult is the response body for a successful upload.
type UploadResult struct {
	ImageURL  string      `json:"image_url"`
	DateTaken *time.Time  `json:"date_taken"`
	Location  Coordinates `json:"location"`
}
