//go:build openbsd

package osversion

import (
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"
)

// NewHostDetector возвращает детектор текущей платформы
func NewHostDetector(opts Options) Detector {
	return NewOpenBSDDetector(opts)
}

// OpenBSDDetector берёт версию ядра из uname(2)
type OpenBSDDetector struct {
	log *logrus.Entry
}

func NewOpenBSDDetector(opts Options) *OpenBSDDetector {
	opts = opts.withDefaults()
	return &OpenBSDDetector{log: opts.Log.WithField("scope", "openbsd")}
}

func (d *OpenBSDDetector) Detect() (Identity, error) {
	var uts unix.Utsname
	if err := unix.Uname(&uts); err != nil {
		return nil, errSystemCall("uname", err)
	}

	release := unix.ByteSliceToString(uts.Release[:])
	d.log.Debugf("uname release '%s'", release)
	return OpenBSD{Version: release}, nil
}
