package exif

import (
	"bytes"
	"fmt"
	"time"

	goexif "github.com/rwcarlsen/goexif/exif"

	"photoalbum/models"
)

// Metadata is the subset of EXIF data the gallery cares about.
// TakenAt is best effort (DateTimeOriginal, DateTimeDigitized,
// DateTime). Lat and Lon are set together or not at all.
type Metadata struct {
	TakenAt *time.Time
	Lat     *float64
	Lon     *float64
}

// Extract reads EXIF metadata from raw image bytes. Fields the image
// does not carry are left nil. When the byte stream has no parseable
// metadata block at all, the returned error wraps
// models.ErrMetadataParse; callers in the upload path treat that as
// "no metadata available", not a failure.
//
// goexif reports a missing EXIF segment (any PNG, a JPEG without
// APP1) and a corrupt stream through the same decode error, so both
// surface as ErrMetadataParse here. Either way the outcome for an
// upload is an empty-metadata record.
func Extract(data []byte) (Metadata, error) {
	var meta Metadata

	x, err := goexif.Decode(bytes.NewReader(data))
	if err != nil || x == nil {
		return meta, fmt.Errorf("%w: %v", models.ErrMetadataParse, err)
	}

	// best effort date -> DateTimeOriginal, DateTimeDigitized, DateTime
	if taken, err := x.DateTime(); err == nil {
		meta.TakenAt = &taken
	}

	// gps coordinates are absent from most images
	if lat, lon, err := x.LatLong(); err == nil {
		meta.Lat = &lat
		meta.Lon = &lon
	}

	return meta, nil
}
