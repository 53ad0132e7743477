package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"photoalbum/exif"
	"photoalbum/models"
	"photoalbum/service"
)

type fakeBlobStore struct {
	calls int
	err   error
}

func (f *fakeBlobStore) Put(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return "https://photos.s3.eu-central-1.amazonaws.com/" + key, nil
}

type fakePhotoStore struct {
	records []models.PhotoRecord
}

func (f *fakePhotoStore) Insert(ctx context.Context, photo *models.PhotoRecord) (string, error) {
	f.records = append(f.records, *photo)
	return "0123456789abcdef01234567", nil
}

func (f *fakePhotoStore) ListByOwner(ctx context.Context, ownerID string) ([]models.PhotoRecord, error) {
	var out []models.PhotoRecord
	for _, r := range f.records {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakePhotoStore) ListByOwnerYearLocation(ctx context.Context, ownerID string, year int, locationName string) ([]models.PhotoRecord, error) {
	var out []models.PhotoRecord
	for _, r := range f.records {
		if r.OwnerID == ownerID && r.Year == year && r.Location.Name == locationName {
			out = append(out, r)
		}
	}
	if len(out) == 0 {
		return nil, models.ErrNoRecords
	}
	return out, nil
}

func emptyMetadata(data []byte) (exif.Metadata, error) {
	return exif.Metadata{}, models.ErrMetadataParse
}

func newTestRouter(owner string, blobs *fakeBlobStore, store *fakePhotoStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := service.NewPhotoService(store, blobs, emptyMetadata)
	pc := NewPhotoController(svc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		if owner != "" {
			c.Set("email", owner)
		}
		c.Next()
	})
	router.POST("/upload", pc.Upload)
	router.GET("/gallery", pc.Gallery)
	router.GET("/gallery/:year/:location", pc.YearLocation)
	return router
}

func multipartUpload(t *testing.T, fields map[string]string, withFile bool) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	if withFile {
		part, err := writer.CreateFormFile("file", "beach.jpg")
		if err != nil {
			t.Fatal(err)
		}
		if _, err := part.Write([]byte("jpeg bytes")); err != nil {
			t.Fatal(err)
		}
	}
	for k, v := range fields {
		if err := writer.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := writer.Close(); err != nil {
		t.Fatal(err)
	}
	return body, writer.FormDataContentType()
}

func TestUploadSuccess(t *testing.T) {
	blobs := &fakeBlobStore{}
	store := &fakePhotoStore{}
	router := newTestRouter("a@example.com", blobs, store)

	body, contentType := multipartUpload(t, map[string]string{
		"year":         "2023",
		"locationName": "Warszawa",
	}, true)

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result models.UploadResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if result.ImageURL == "" {
		t.Error("expected image url in response")
	}
	if len(store.records) != 1 {
		t.Fatalf("expected 1 stored record, got %d", len(store.records))
	}
	if store.records[0].Location.Name != "Warszawa" {
		t.Errorf("expected location Warszawa, got %q", store.records[0].Location.Name)
	}
}

func TestUploadMissingFile(t *testing.T) {
	blobs := &fakeBlobStore{}
	router := newTestRouter("a@example.com", blobs, &fakePhotoStore{})

	body, contentType := multipartUpload(t, map[string]string{"year": "2023"}, false)

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if blobs.calls != 0 {
		t.Errorf("expected no blob writes, got %d", blobs.calls)
	}
}

func TestUploadMissingYear(t *testing.T) {
	blobs := &fakeBlobStore{}
	router := newTestRouter("a@example.com", blobs, &fakePhotoStore{})

	body, contentType := multipartUpload(t, nil, true)

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if blobs.calls != 0 {
		t.Errorf("expected no blob writes, got %d", blobs.calls)
	}
}

func TestUploadUnauthenticated(t *testing.T) {
	router := newTestRouter("", &fakeBlobStore{}, &fakePhotoStore{})

	body, contentType := multipartUpload(t, map[string]string{"year": "2023"}, true)

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestUploadStorageFailure(t *testing.T) {
	blobs := &fakeBlobStore{err: models.ErrStorageUnavailable}
	router := newTestRouter("a@example.com", blobs, &fakePhotoStore{})

	body, contentType := multipartUpload(t, map[string]string{"year": "2023"}, true)

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500, got %d", rec.Code)
	}
}

func TestGalleryView(t *testing.T) {
	store := &fakePhotoStore{records: []models.PhotoRecord{
		{OwnerID: "a@example.com", Year: 2023, Location: models.Location{Name: "Kraków"}, CreatedAt: time.Now()},
	}}
	router := newTestRouter("a@example.com", &fakeBlobStore{}, store)

	req := httptest.NewRequest(http.MethodGet, "/gallery", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response struct {
		Years []struct {
			Year int `json:"year"`
		} `json:"years"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(response.Years) != 1 || response.Years[0].Year != 2023 {
		t.Errorf("unexpected gallery payload: %s", rec.Body.String())
	}
}

func TestYearLocationNotFound(t *testing.T) {
	router := newTestRouter("a@example.com", &fakeBlobStore{}, &fakePhotoStore{})

	req := httptest.NewRequest(http.MethodGet, "/gallery/2024/Krak%C3%B3w", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", rec.Code)
	}
}

func TestYearLocationInvalidYear(t *testing.T) {
	router := newTestRouter("a@example.com", &fakeBlobStore{}, &fakePhotoStore{})

	req := httptest.NewRequest(http.MethodGet, "/gallery/later/Warszawa", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}
