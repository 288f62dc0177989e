//go:build !unix

package fsops

import "io/fs"

// DiskUsage returns the logical file length; this platform exposes no block count
func DiskUsage(info fs.FileInfo) uint64 {
	return logicalSize(info)
}
