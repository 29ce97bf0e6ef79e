package seo

import (
	"os"
	"path"
	"path/filepath"
)

// DefaultFallbackImage is served when a service has no dedicated artwork.
const DefaultFallbackImage = "/images/services/default-service.jpg"

// ImageResolver checks that public image paths exist on disk.
type ImageResolver struct {
	PublicDir string
	Fallback  string
}

// NewImageResolver returns a resolver rooted at publicDir.
func NewImageResolver(publicDir string) ImageResolver {
	return ImageResolver{PublicDir: publicDir, Fallback: DefaultFallbackImage}
}

// Verify returns imagePath when the file exists under the public directory,
// and the fallback otherwise.
func (r ImageResolver) Verify(imagePath string) string {
	fallback := r.Fallback
	if fallback == "" {
		fallback = DefaultFallbackImage
	}
	if imagePath == "" || r.PublicDir == "" {
		return fallback
	}

	clean := path.Clean("/" + imagePath)
	info, err := os.Stat(filepath.Join(r.PublicDir, filepath.FromSlash(clean)))
	if err != nil || info.IsDir() {
		return fallback
	}
	return imagePath
}

// HeroImage is the path of the banner image of a service page.
func HeroImage(serviceID string) string {
	return "/images/services/" + serviceID + "-hero.jpg"
}

// OGImage is the path of the social sharing image of a service.
func OGImage(serviceID string) string {
	return "/images/services/" + serviceID + "-og.jpg"
}
