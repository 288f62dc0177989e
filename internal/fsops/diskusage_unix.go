//go:build unix

package fsops

import (
	"io/fs"
	"syscall"
)

// blockUnit is the unit st_blocks is counted in, independent of the filesystem block size
const blockUnit = 512

// DiskUsage returns the bytes a file actually occupies on disk: allocated blocks
// times 512. Sparse files report less than their length, small files are rounded
// up to the filesystem's allocation granularity.
func DiskUsage(info fs.FileInfo) uint64 {
	stat, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return logicalSize(info)
	}
	return uint64(stat.Blocks) * blockUnit
}
