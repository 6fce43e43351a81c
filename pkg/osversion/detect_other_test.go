//go:build (!linux && !darwin && !windows && !openbsd) || ios

package osversion

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"
)

func TestNewHostDetector_unsupported(t *testing.T) {
	td.Cmp(t, NewHostDetector(Options{}), UnknownDetector{})

	id, err := Detect()
	td.CmpNoError(t, err)
	td.Cmp(t, id, Unknown{})
}
