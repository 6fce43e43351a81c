package tools

import (
	"testing"

	"github.com/kirsrus/osversion/pkg/osversion"
	"github.com/maxatome/go-testdeep/td"
)

func TestFieldsWidget(t *testing.T) {
	t.Run("поля выравниваются", func(t *testing.T) {
		got := FieldsWidget("ubuntu 18.04", map[string]string{
			"version_name": "bionic",
			"distro":       "ubuntu",
			"version":      "18.04",
		}, "*")

		td.Cmp(t, got, []string{
			"************************",
			"* ubuntu 18.04         *",
			"*                      *",
			"* distro:       ubuntu *",
			"* version:      18.04  *",
			"* version_name: bionic *",
			"************************",
		})
	})

	t.Run("без полей", func(t *testing.T) {
		td.Cmp(t, FieldsWidget("android", map[string]string{}, ""), []string{
			"***********",
			"* android *",
			"***********",
		})
	})

	t.Run("рамка из первого символа", func(t *testing.T) {
		got := FieldsWidget("unknown", nil, "#=")
		td.Cmp(t, got[0], "###########")
		td.Cmp(t, got[1], "# unknown #")
	})
}

func TestConsoleSupportsColor(t *testing.T) {
	tests := []struct {
		name string
		rec  osversion.VersionRecord
		want bool
	}{
		{"Windows 10", osversion.VersionRecord{Major: 10}, true},
		{"Windows 8", osversion.VersionRecord{Major: 6, Minor: 2}, true},
		{"Windows 7", osversion.VersionRecord{Major: 6, Minor: 1}, false},
		{"Vista", osversion.VersionRecord{Major: 6}, false},
		{"Server 2003", osversion.VersionRecord{Major: 5, Minor: 2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			td.Cmp(t, consoleSupportsColor(tt.rec), tt.want)
		})
	}
}
