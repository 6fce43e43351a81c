//go:build !windows

package tools

// ColoredConsole сообщает, умеет ли консоль выводить цвет
func ColoredConsole() bool {
	return true
}
