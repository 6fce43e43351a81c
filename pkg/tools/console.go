package tools

import "github.com/kirsrus/osversion/pkg/osversion"

// consoleSupportsColor: цветной вывод в консоли Windows появился после 6.1
func consoleSupportsColor(rec osversion.VersionRecord) bool {
	if rec.Major != 6 {
		return rec.Major > 6
	}
	return rec.Minor > 1
}
