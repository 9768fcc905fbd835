//go:build darwin

package fsys

import (
	"io/fs"
	"syscall"
	"time"
)

// fillNativeTimes extracts access and birth times from the raw stat
// record. Darwin records a true creation time (Birthtimespec).
func fillNativeTimes(info *PathInfo, st fs.FileInfo) {
	sys, ok := st.Sys().(*syscall.Stat_t)
	if !ok {
		info.CreateTime = info.ModifyTime
		info.AccessTime = info.ModifyTime

		return
	}

	info.AccessTime = time.Unix(sys.Atimespec.Unix())
	info.CreateTime = time.Unix(sys.Birthtimespec.Unix())
}
