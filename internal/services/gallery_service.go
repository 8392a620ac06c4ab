package services

import (
	"math/rand"
	"os"
	"path"
	"regexp"
	"sort"

	"gorm.io/gorm"

	"photostudio_backend/internal/repositories"
	"photostudio_backend/pkg/apperrors"
)

var imageFileRe = regexp.MustCompile(`(?i)\.(jpg|jpeg|png|gif|webp)$`)

// GalleryConfig drives the public landing-page carousel.
type GalleryConfig struct {
	CarouselDir    string   // directory of the static fallback set
	CarouselPrefix string   // public path prefix for those files
	DefaultImages  []string // used when no portfolio has images
}

// GalleryService produces the two image sequences the landing page
// consumes: the randomized aggregate of all portfolio images, and the
// lexicographically ordered static set.
type GalleryService interface {
	// BuildCarousel flattens every portfolio's image list into one pool
	// and returns it in a fresh uniform-random order. The shuffle happens
	// once per call, not per display cycle.
	BuildCarousel(db *gorm.DB) ([]string, error)

	// StaticImages lists the image files of the configured carousel
	// directory, sorted lexicographically. A missing directory yields an
	// empty list, not an error.
	StaticImages() ([]string, error)
}

type galleryService struct {
	portfolioRepo repositories.PortfolioRepository
	config        GalleryConfig
}

func NewGalleryService(portfolioRepo repositories.PortfolioRepository, config GalleryConfig) GalleryService {
	return &galleryService{
		portfolioRepo: portfolioRepo,
		config:        config,
	}
}

func (s *galleryService) BuildCarousel(db *gorm.DB) ([]string, error) {
	items, err := s.portfolioRepo.FindAll(db, nil)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	var pool []string
	for _, item := range items {
		for _, img := range item.Images.Data() {
			pool = append(pool, img.URL)
		}
	}

	if len(pool) == 0 {
		defaults := make([]string, len(s.config.DefaultImages))
		copy(defaults, s.config.DefaultImages)
		return defaults, nil
	}

	rand.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return pool, nil
}

func (s *galleryService) StaticImages() ([]string, error) {
	entries, err := os.ReadDir(s.config.CarouselDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, apperrors.StorageError(err)
	}

	images := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !imageFileRe.MatchString(entry.Name()) {
			continue
		}
		images = append(images, path.Join(s.config.CarouselPrefix, entry.Name()))
	}
	sort.Strings(images)

	return images, nil
}
