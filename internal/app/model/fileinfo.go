package model

import "time"

// FileInfo describes a candidate input file for batch conversion.
type FileInfo struct {
	FullPath string
	Name     string
	ModTime  time.Time
}
