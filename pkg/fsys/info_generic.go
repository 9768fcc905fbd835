//go:build !linux && !darwin && !windows

package fsys

import "io/fs"

// fillNativeTimes falls back to the modify time on platforms without a
// portable way to read creation/access times.
func fillNativeTimes(info *PathInfo, st fs.FileInfo) {
	info.CreateTime = info.ModifyTime
	info.AccessTime = info.ModifyTime
}
