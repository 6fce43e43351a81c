package logging

import (
	"fmt"
	"io"
	"path"
	"runtime"
	"strings"

	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// Служебные пакеты, вызовы из которых не считаются местом логирования
var skipFuncPrefixes = []string{"logging.CallerHook.", "logrus.", "runtime.", "testing."}

// CallerHook добавляет в запись поле file с файлом и строкой, откуда был вызван лог
type CallerHook struct{}

// Levels возвращает уровни, на которых срабатывает хук (все)
func (hook CallerHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

// Fire поднимается по стеку до первого вызова вне logrus и служебных пакетов
func (hook CallerHook) Fire(entry *logrus.Entry) error {
mainloop:
	for i := 0; ; i++ {
		pc, file, line, ok := runtime.Caller(i)
		if !ok {
			break
		}

		fn := runtime.FuncForPC(pc)
		if fn == nil {
			continue
		}
		funcName := path.Base(fn.Name())

		for _, v := range skipFuncPrefixes {
			if strings.HasPrefix(funcName, v) {
				continue mainloop
			}
		}

		entry.Data["file"] = fmt.Sprintf("%s:%d", path.Base(file), line)
		break
	}

	return nil
}

// New создаёт логгер уровня Info без вывода (вывод назначается после разбора флагов).
// На Windows используется стандартный текстовый форматтер, на остальных ОС - prefixed
func New(windows bool, colored bool) *logrus.Logger {
	log := logrus.New()
	log.Level = logrus.InfoLevel
	log.Out = io.Discard

	if windows {
		log.Formatter = &logrus.TextFormatter{
			ForceColors:   colored,
			DisableColors: !colored,
		}
	} else {
		log.Formatter = &prefixed.TextFormatter{
			DisableColors: !colored,
		}
	}
	log.AddHook(CallerHook{})

	return log
}

// DisableColors выключает цвет (например при записи лога в файл)
func DisableColors(log *logrus.Logger) {
	switch f := log.Formatter.(type) {
	case *prefixed.TextFormatter:
		f.ForceColors = false
		f.DisableColors = true
	case *logrus.TextFormatter:
		f.ForceColors = false
		f.DisableColors = true
	}
}

// ShortTimestamp убирает полную дату из вывода (для подробных уровней логирования)
func ShortTimestamp(log *logrus.Logger) {
	switch f := log.Formatter.(type) {
	case *prefixed.TextFormatter:
		f.FullTimestamp = false
	case *logrus.TextFormatter:
		f.FullTimestamp = false
	}
}
