package files

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/samber/lo"

	"voice2text/internal/app/model"
)

// AudioExtensions are the file extensions the batch converter picks up.
var AudioExtensions = []string{".wav", ".mp3", ".m4a", ".flac", ".ogg"}

// GetProjectRoot walks up from this source file to the directory containing
// go.mod. Anchoring on the source location instead of os.Getwd keeps the
// result stable no matter where the process was started from.
func GetProjectRoot() (string, error) {
	_, filename, _, _ := runtime.Caller(0)
	return findGoModRoot(filepath.Dir(filename))
}

// EnsureDirectory creates dir (and parents) if it does not exist yet.
func EnsureDirectory(dir string) error {
	if _, err := os.Stat(dir); os.IsNotExist(err) {
		return os.MkdirAll(dir, os.ModePerm)
	}
	return nil
}

// GetAudioFiles lists the audio files directly under inputDir, oldest first.
// When extension is non-empty only that extension is returned, otherwise
// anything in AudioExtensions matches.
func GetAudioFiles(inputDir, extension string) ([]model.FileInfo, error) {
	entries, err := os.ReadDir(inputDir)
	if err != nil {
		return nil, fmt.Errorf("read input directory: %w", err)
	}

	wanted := AudioExtensions
	if extension != "" {
		wanted = []string{normalizeExt(extension)}
	}

	fileInfos := make([]model.FileInfo, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if !lo.Contains(wanted, ext) {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		fileInfos = append(fileInfos, model.FileInfo{
			FullPath: filepath.Join(inputDir, entry.Name()),
			Name:     entry.Name(),
			ModTime:  info.ModTime(),
		})
	}

	sort.Slice(fileInfos, func(i, j int) bool {
		return fileInfos[i].ModTime.Before(fileInfos[j].ModTime)
	})
	return fileInfos, nil
}

func normalizeExt(extension string) string {
	ext := strings.ToLower(extension)
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}

func findGoModRoot(path string) (string, error) {
	for {
		if _, err := os.Stat(filepath.Join(path, "go.mod")); err == nil {
			return path, nil
		}
		parent := filepath.Dir(path)
		if parent == path {
			return "", fmt.Errorf("go.mod not found")
		}
		path = parent
	}
}
