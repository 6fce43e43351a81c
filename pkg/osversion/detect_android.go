//go:build android

package osversion

// NewHostDetector возвращает детектор текущей платформы
func NewHostDetector(Options) Detector {
	return AndroidDetector{}
}
