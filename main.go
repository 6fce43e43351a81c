package main

import (
	"github.com/kirsrus/osversion/cmd"
)

// Версия программы. Берётся из GIT тэга версии при компиляции через -ldflags
var version = "0.0.0"

// Номер текущего коммита. Берётся из GIT тэга коммита при компиляции через -ldflags.
var gitCommit = "00000000000000000"

// Дата и время последнего коммита. Берётся из GIT времени коммита при компиляции через -ldflags.
var gitDate = "0000.00.00 00:00:00"

func main() {
	cmd.Execute(version, gitCommit, gitDate)
}
