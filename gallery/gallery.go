// Package gallery turns a flat, store-ordered list of photo records
// into the two-level year -> location hierarchy the gallery views
// render.
package gallery

import (
	"sort"
	"time"

	"photoalbum/models"
)

// LocationGroup is one location's photos within a year. Cover is the
// group's first photo and backs the thumbnail tile.
type LocationGroup struct {
	Name   string               `json:"name"`
	Count  int                  `json:"count"`
	Cover  models.PhotoRecord   `json:"cover"`
	Photos []models.PhotoRecord `json:"photos"`
}

// YearGroup is one year's photos grouped by location name.
type YearGroup struct {
	Year      int             `json:"year"`
	Locations []LocationGroup `json:"locations"`
}

// Organize groups photos by year, then by location name within each
// year. Years come out strictly descending with no duplicates.
// Locations keep first-encountered order, so with store-ordered input
// the most recently uploaded photo's location leads. Every input
// photo lands in exactly one group.
func Organize(photos []models.PhotoRecord) []YearGroup {
	byYear := make(map[int][]models.PhotoRecord)
	var years []int

	for _, photo := range photos {
		year := photoYear(photo)
		if _, ok := byYear[year]; !ok {
			years = append(years, year)
		}
		byYear[year] = append(byYear[year], photo)
	}

	sort.Sort(sort.Reverse(sort.IntSlice(years)))

	groups := make([]YearGroup, 0, len(years))
	for _, year := range years {
		groups = append(groups, YearGroup{
			Year:      year,
			Locations: groupByLocation(byYear[year]),
		})
	}
	return groups
}

// groupByLocation splits one year's photos by location name,
// preserving the order in which each name first appears.
func groupByLocation(photos []models.PhotoRecord) []LocationGroup {
	index := make(map[string]int)
	var groups []LocationGroup

	for _, photo := range photos {
		name := photo.Location.Name
		if name == "" {
			name = models.UnknownLocation
		}

		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, LocationGroup{Name: name, Cover: photo})
		}
		groups[i].Photos = append(groups[i].Photos, photo)
		groups[i].Count++
	}

	return groups
}

// photoYear falls back to the capture year, then the current year,
// for records missing the mandatory year field. Stored records always
// carry one, so this is defensive policy only.
func photoYear(photo models.PhotoRecord) int {
	if photo.Year != 0 {
		return photo.Year
	}
	if photo.DateTaken != nil {
		return photo.DateTaken.Year()
	}
	return time.Now().Year()
}
