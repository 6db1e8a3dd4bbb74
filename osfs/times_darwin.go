package osfs

import (
	"io/fs"
	"syscall"
	"time"

	"github.com/Jumpaku/go-pathfs"
)

func times(info fs.FileInfo) pathfs.Times {
	t := pathfs.Times{ModTime: info.ModTime(), AccessTime: info.ModTime(), ChangeTime: info.ModTime()}
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		t.AccessTime = time.Unix(st.Atimespec.Unix())
		t.ChangeTime = time.Unix(st.Ctimespec.Unix())
	}
	return t
}
