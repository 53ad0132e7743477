package service

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"strconv"
	"time"

	"photoalbum/exif"
	"photoalbum/gallery"
	"photoalbum/models"
	"photoalbum/storage"
)

// PhotoStore is the slice of the record store the service needs.
type PhotoStore interface {
	Insert(ctx context.Context, photo *models.PhotoRecord) (string, error)
	ListByOwner(ctx context.Context, ownerID string) ([]models.PhotoRecord, error)
	ListByOwnerYearLocation(ctx context.Context, ownerID string, year int, locationName string) ([]models.PhotoRecord, error)
}

// MetadataExtractor reads capture metadata from raw image bytes.
type MetadataExtractor func(data []byte) (exif.Metadata, error)

// PhotoService runs the upload ingestion pipeline and serves the
// gallery views.
type PhotoService struct {
	photos  PhotoStore
	blobs   storage.BlobStore
	extract MetadataExtractor
}

func NewPhotoService(photos PhotoStore, blobs storage.BlobStore, extract MetadataExtractor) *PhotoService {
	return &PhotoService{
		photos:  photos,
		blobs:   blobs,
		extract: extract,
	}
}

// Ingest runs the upload pipeline: validate, store the blob, extract
// metadata, persist the record. Metadata extraction failure degrades
// to an empty-metadata record; storage and record-store failures
// abort. A blob stored before a failed record insert stays orphaned
// in object storage, there is no compensating delete.
func (s *PhotoService) Ingest(ctx context.Context, ownerID string, data []byte, fileName, contentType, year, locationName string) (*models.UploadResult, error) {
	if ownerID == "" {
		return nil, models.ErrUnauthorized
	}
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: no file provided", models.ErrValidation)
	}
	if year == "" {
		return nil, fmt.Errorf("%w: no year provided", models.ErrValidation)
	}
	yearNum, err := strconv.Atoi(year)
	if err != nil {
		return nil, fmt.Errorf("%w: year %q is not a number", models.ErrValidation, year)
	}

	key := storageKey(fileName)

	imageURL, err := s.blobs.Put(ctx, key, data, contentType)
	if err != nil {
		return nil, err
	}

	meta, err := s.extract(data)
	if err != nil {
		// unparseable metadata never fails an upload
		log.Println("image metadata skipped:", err)
		meta = exif.Metadata{}
	}

	if locationName == "" {
		locationName = models.UnknownLocation
	}

	record := &models.PhotoRecord{
		OwnerID:   ownerID,
		ImageURL:  imageURL,
		FileName:  fileName,
		DateTaken: meta.TakenAt,
		Year:      yearNum,
		Location: models.Location{
			Name: locationName,
			Lat:  meta.Lat,
			Lon:  meta.Lon,
		},
		CreatedAt: time.Now().UTC(),
	}

	if _, err := s.photos.Insert(ctx, record); err != nil {
		return nil, err
	}

	return &models.UploadResult{
		ImageURL:  imageURL,
		DateTaken: record.DateTaken,
		Location: models.Coordinates{
			Lat: record.Location.Lat,
			Lon: record.Location.Lon,
		},
	}, nil
}

// Gallery loads all of the owner's photos and organizes them into
// year -> location groups for the landing view.
func (s *PhotoService) Gallery(ctx context.Context, ownerID string) ([]gallery.YearGroup, error) {
	if ownerID == "" {
		return nil, models.ErrUnauthorized
	}

	photos, err := s.photos.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return gallery.Organize(photos), nil
}

// YearLocation serves the drill-down view for one year and location.
// models.ErrNoRecords passes through untouched for the 404 page.
func (s *PhotoService) YearLocation(ctx context.Context, ownerID string, year int, locationName string) ([]models.PhotoRecord, error) {
	if ownerID == "" {
		return nil, models.ErrUnauthorized
	}

	return s.photos.ListByOwnerYearLocation(ctx, ownerID, year, locationName)
}

// storageKey derives the object key for an upload from the current
// time plus the original extension. Millisecond precision makes
// collisions effectively impossible, and overwrite-on-conflict covers
// the rest.
func storageKey(fileName string) string {
	return strconv.FormatInt(time.Now().UnixMilli(), 10) + filepath.Ext(fileName)
}
