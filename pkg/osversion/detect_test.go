package osversion

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"
)

func TestUnknownDetector(t *testing.T) {
	id, err := UnknownDetector{}.Detect()
	td.CmpNoError(t, err)
	td.Cmp(t, id, Unknown{})
	td.Cmp(t, id.String(), "unknown")
}

func TestAndroidDetector(t *testing.T) {
	id, err := AndroidDetector{}.Detect()
	td.CmpNoError(t, err)
	td.Cmp(t, id, Android{})
	td.Cmp(t, id.String(), "android")
}

func TestOptions_withDefaults(t *testing.T) {
	opts := Options{}.withDefaults()
	td.Cmp(t, opts.OSReleaseFile, DefaultOSReleaseFile)
	td.Cmp(t, opts.SystemVersionFile, DefaultSystemVersionFile)
	td.CmpNotNil(t, opts.Log)

	opts = Options{OSReleaseFile: "/tmp/os-release"}.withDefaults()
	td.Cmp(t, opts.OSReleaseFile, "/tmp/os-release")
}
