package fsops

import "github.com/Bios-Marcel/wastebasket/v2"

// SystemTrash sends entries to the platform trash: the freedesktop.org trash
// on Linux/BSD, the Finder trash on macOS and the Recycle Bin on Windows.
type SystemTrash struct{}

// Trash moves path into the trash
func (SystemTrash) Trash(path string) error {
	return wastebasket.Trash(path)
}
