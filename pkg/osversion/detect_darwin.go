//go:build darwin && !ios

package osversion

// NewHostDetector возвращает детектор текущей платформы
func NewHostDetector(opts Options) Detector {
	return NewMacOSDetector(opts)
}
