package controller

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"photoalbum/models"
	"photoalbum/service"
)

// PhotoController glues the upload and gallery routes to the photo
// service. The owner key is the authenticated email set by the JWT
// middleware.
type PhotoController struct {
	photos *service.PhotoService
}

func NewPhotoController(photos *service.PhotoService) *PhotoController {
	return &PhotoController{photos: photos}
}

const requestTimeout = 30 * time.Second

// Upload handles POST /upload: multipart form with a required file
// and year, optional locationName.
func (pc *PhotoController) Upload(c *gin.Context) {
	ownerID := c.GetString("email")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file provided"})
		return
	}
	year := c.PostForm("year")
	if year == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No year provided"})
		return
	}
	locationName := c.PostForm("locationName")

	src, err := file.Open()
	if err != nil {
		log.Println("open upload:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read file"})
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		log.Println("read upload:", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not read file"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	result, err := pc.photos.Ingest(ctx, ownerID, data, file.Filename,
		file.Header.Get("Content-Type"), year, locationName)
	if err != nil {
		log.Println("upload failed:", err)
		switch {
		case errors.Is(err, models.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, models.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		case errors.Is(err, models.ErrStorageUnavailable):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not store image"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save photo"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Gallery handles GET /gallery: the owner's photos grouped by year
// and location.
func (pc *PhotoController) Gallery(c *gin.Context) {
	ownerID := c.GetString("email")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	groups, err := pc.photos.Gallery(ctx, ownerID)
	if err != nil {
		log.Println("gallery failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load gallery"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"years": groups})
}

// YearLocation handles GET /gallery/:year/:location, the drill-down
// into one location group.
func (pc *PhotoController) YearLocation(c *gin.Context) {
	ownerID := c.GetString("email")
	if ownerID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid year"})
		return
	}
	locationName := c.Param("location")

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	photos, err := pc.photos.YearLocation(ctx, ownerID, year, locationName)
	if err != nil {
		if errors.Is(err, models.ErrNoRecords) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No photos for this year and location"})
			return
		}
		log.Println("location view failed:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load photos"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":     year,
		"location": locationName,
		"photos":   photos,
		"total":    len(photos),
	})
}
