//go:build darwin && !ios

package osversion

import (
	"testing"

	"github.com/maxatome/go-testdeep/td"
)

func TestNewHostDetector_darwin(t *testing.T) {
	td.Cmp(t, NewHostDetector(Options{}), td.Isa(&MacOSDetector{}))

	id, err := Detect()
	td.Require(t).CmpNoError(err)
	td.Cmp(t, id.Kind(), KindMacOS)
	td.Cmp(t, id.String(), td.HasPrefix("macOS "))
}
