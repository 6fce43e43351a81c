//go:build windows

package tools

import "github.com/kirsrus/osversion/pkg/osversion"

// ColoredConsole сообщает, умеет ли консоль выводить цвет. Windows 7, 2008 R2 и ниже не умеют
// (см. таблицу версий в osversion.ResolveEdition)
func ColoredConsole() bool {
	rec, err := osversion.ReadVersionRecord()
	if err != nil {
		return false
	}
	return consoleSupportsColor(rec)
}
