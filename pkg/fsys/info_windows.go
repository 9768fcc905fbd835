//go:build windows

package fsys

import (
	"io/fs"
	"syscall"
	"time"
)

// fillNativeTimes extracts creation and access times from the Win32
// file attribute data backing the stat result.
func fillNativeTimes(info *PathInfo, st fs.FileInfo) {
	sys, ok := st.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		info.CreateTime = info.ModifyTime
		info.AccessTime = info.ModifyTime

		return
	}

	info.CreateTime = time.Unix(0, sys.CreationTime.Nanoseconds())
	info.AccessTime = time.Unix(0, sys.LastAccessTime.Nanoseconds())
}
