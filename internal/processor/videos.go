package processor

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

var videoExtensions = map[string]bool{
	".mp4":  true,
	".avi":  true,
	".mov":  true,
	".mkv":  true,
	".flv":  true,
	".wmv":  true,
	".m4v":  true,
	".webm": true,
}

// IsVideoFile checks if the file has a supported video extension
func IsVideoFile(path string) bool {
	return videoExtensions[strings.ToLower(filepath.Ext(path))]
}

// FindVideos walks the input directory recursively and returns all video
// files in sorted order.
func FindVideos(inputDir string) ([]string, error) {
	var videos []string

	err := filepath.WalkDir(inputDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && IsVideoFile(path) {
			videos = append(videos, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(videos)
	return videos, nil
}
