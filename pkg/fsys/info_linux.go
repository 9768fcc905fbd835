//go:build linux

package fsys

import (
	"io/fs"
	"syscall"
	"time"
)

// fillNativeTimes extracts access time and the closest thing Linux has
// to a creation time (inode change time) from the raw stat record.
func fillNativeTimes(info *PathInfo, st fs.FileInfo) {
	sys, ok := st.Sys().(*syscall.Stat_t)
	if !ok {
		info.CreateTime = info.ModifyTime
		info.AccessTime = info.ModifyTime

		return
	}

	info.AccessTime = time.Unix(sys.Atim.Unix())
	info.CreateTime = time.Unix(sys.Ctim.Unix())
}
