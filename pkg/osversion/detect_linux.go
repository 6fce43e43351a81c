//go:build linux && !android

package osversion

// NewHostDetector возвращает детектор текущей платформы
func NewHostDetector(opts Options) Detector {
	return NewLinuxDetector(opts)
}
