package osversion

import (
	"bufio"
	stderrors "errors"
	"strings"

	"github.com/acobaugh/osrelease"
	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
)

// LinuxDetector читает дистрибутив и версию из файла os-release
type LinuxDetector struct {
	log *logrus.Entry

	// Путь к файлу os-release
	ReleaseFile string
}

func NewLinuxDetector(opts Options) *LinuxDetector {
	opts = opts.withDefaults()
	return &LinuxDetector{
		log:         opts.Log.WithField("scope", "linux"),
		ReleaseFile: opts.OSReleaseFile,
	}
}

func (d *LinuxDetector) Detect() (Identity, error) {
	l, err := ParseOSRelease(d.ReleaseFile)
	if err != nil {
		return nil, errors.Trace(err)
	}
	d.log.Debugf("прочитан '%s': ID=%s VERSION_ID=%s VERSION_CODENAME=%s", d.ReleaseFile, l.Distro, l.Version, l.VersionName)
	return l, nil
}

// ParseOSRelease разбирает файл path формата os-release (строки KEY=VALUE, значения
// могут быть в двойных кавычках). Поле ID обязательно, VERSION_ID и VERSION_CODENAME нет.
// При повторе ключа действует последнее значение
func ParseOSRelease(path string) (Linux, error) {
	values, err := osrelease.ReadFile(path)
	if err != nil {
		// Файл прочитан, но строка длиннее буфера bufio.Scanner (64 КиБ)
		if stderrors.Is(err, bufio.ErrTooLong) || strings.Contains(err.Error(), bufio.ErrTooLong.Error()) {
			return Linux{}, errMalformed(path, err)
		}
		return Linux{}, errIO(path, err)
	}

	distro, ok := values["ID"]
	if !ok {
		return Linux{}, errMissingField("ID")
	}

	return Linux{
		Distro:      distro,
		Version:     values["VERSION_ID"],
		VersionName: values["VERSION_CODENAME"],
	}, nil
}
