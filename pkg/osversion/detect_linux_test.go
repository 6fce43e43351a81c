//go:build linux && !android

package osversion

import (
	"path/filepath"
	"testing"

	"github.com/maxatome/go-testdeep/td"
)

func TestDetectWith_linux(t *testing.T) {
	t.Run("os-release читается", func(t *testing.T) {
		path := writeRelease(t, "ID=debian\nVERSION_ID=\"12\"\nVERSION_CODENAME=bookworm\n")

		id, err := DetectWith(Options{OSReleaseFile: path})
		td.Require(t).CmpNoError(err)
		td.Cmp(t, id, Linux{Distro: "debian", Version: "12", VersionName: "bookworm"})
	})

	t.Run("ошибка проходит без изменений", func(t *testing.T) {
		_, err := DetectWith(Options{OSReleaseFile: filepath.Join(t.TempDir(), "os-release")})
		kind, ok := KindOf(err)
		td.CmpTrue(t, ok)
		td.Cmp(t, kind, IoFailure)
	})

	t.Run("нет ID", func(t *testing.T) {
		_, err := DetectWith(Options{OSReleaseFile: writeRelease(t, "NAME=x\n")})
		kind, ok := KindOf(err)
		td.CmpTrue(t, ok)
		td.Cmp(t, kind, MissingField)
	})
}
