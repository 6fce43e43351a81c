package osversion

import (
	"os"

	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
	"howett.net/plist"
)

const productVersionKey = "ProductVersion"

// MacOSDetector читает версию из SystemVersion.plist
type MacOSDetector struct {
	log *logrus.Entry

	// Путь к SystemVersion.plist
	PlistFile string
}

func NewMacOSDetector(opts Options) *MacOSDetector {
	opts = opts.withDefaults()
	return &MacOSDetector{
		log:       opts.Log.WithField("scope", "macos"),
		PlistFile: opts.SystemVersionFile,
	}
}

func (d *MacOSDetector) Detect() (Identity, error) {
	data, err := os.ReadFile(d.PlistFile)
	if err != nil {
		return nil, errIO(d.PlistFile, err)
	}

	m, err := ParseSystemVersion(d.PlistFile, data)
	if err != nil {
		return nil, errors.Trace(err)
	}
	d.log.Debugf("прочитан '%s': %s=%s", d.PlistFile, productVersionKey, m.Version)
	return m, nil
}

// ParseSystemVersion извлекает ProductVersion из plist (XML или бинарного). Корень
// должен быть словарём, а ProductVersion строкой. name используется только в ошибках
func ParseSystemVersion(name string, data []byte) (MacOS, error) {
	var root interface{}
	if _, err := plist.Unmarshal(data, &root); err != nil {
		return MacOS{}, errMalformed(name, err)
	}

	dict, ok := root.(map[string]interface{})
	if !ok {
		return MacOS{}, errTypeMismatch(name)
	}

	raw, ok := dict[productVersionKey]
	if !ok {
		return MacOS{}, errMissingField(productVersionKey)
	}

	version, ok := raw.(string)
	if !ok {
		return MacOS{}, errTypeMismatch(productVersionKey)
	}

	return MacOS{Version: version}, nil
}
