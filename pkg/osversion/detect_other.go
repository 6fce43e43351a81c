//go:build (!linux && !darwin && !windows && !openbsd) || ios

package osversion

// NewHostDetector возвращает детектор текущей платформы. Платформа не поддерживается
// (в том числе iOS, у которой тег сборки darwin), поэтому результат всегда Unknown
func NewHostDetector(Options) Detector {
	return UnknownDetector{}
}
