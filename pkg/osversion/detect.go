// Package osversion определяет операционную систему хоста и её версию (редакцию).
//
// Для каждой платформы при сборке выбирается ровно один Detector (см. detect_*.go),
// во время работы ОС не угадывается.
package osversion

import (
	"io"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
)

const (
	// DefaultOSReleaseFile файл описания дистрибутива Linux
	DefaultOSReleaseFile = "/etc/os-release"

	// DefaultSystemVersionFile файл версии macOS
	DefaultSystemVersionFile = "/System/Library/CoreServices/SystemVersion.plist"
)

// Detector определяет ОС текущего хоста
type Detector interface {
	Detect() (Identity, error)
}

// Options настройки детекторов. Пустые пути заменяются путями по умолчанию,
// пустой Log - логгером без вывода
type Options struct {
	OSReleaseFile     string
	SystemVersionFile string
	Log               *logrus.Logger
}

func (o Options) withDefaults() Options {
	if o.OSReleaseFile == "" {
		o.OSReleaseFile = DefaultOSReleaseFile
	}
	if o.SystemVersionFile == "" {
		o.SystemVersionFile = DefaultSystemVersionFile
	}
	if o.Log == nil {
		o.Log = logrus.New()
		o.Log.Out = io.Discard
	}
	return o
}

// Detect определяет ОС хоста с настройками по умолчанию
func Detect() (Identity, error) {
	return DetectWith(Options{})
}

// DetectWith определяет ОС хоста. Если платформа не поддерживается, возвращается Unknown
// без ошибки
func DetectWith(opts Options) (Identity, error) {
	opts = opts.withDefaults()

	id, err := NewHostDetector(opts).Detect()
	if err != nil {
		return nil, errors.Trace(err)
	}

	opts.Log.WithField("scope", "osversion").WithField("kind", id.Kind()).Debugf("определена ОС '%s'", id)
	return id, nil
}

// UnknownDetector детектор для неподдерживаемых платформ
type UnknownDetector struct{}

func (UnknownDetector) Detect() (Identity, error) {
	return Unknown{}, nil
}

// AndroidDetector не читает ничего: у Android нет полей версии
type AndroidDetector struct{}

func (AndroidDetector) Detect() (Identity, error) {
	return Android{}, nil
}
