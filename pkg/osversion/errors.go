package osversion

import (
	stderrors "errors"
	"fmt"

	"github.com/juju/errors"
)

// ErrorKind классифицирует ошибки определения версии ОС
type ErrorKind int

const (
	// MissingField обязательное поле отсутствует в источнике
	MissingField ErrorKind = iota + 1
	// TypeMismatch поле есть, но имеет неожиданный тип
	TypeMismatch
	// IoFailure файл не удалось прочитать
	IoFailure
	// SystemCallFailure системную функцию не удалось найти или вызвать
	SystemCallFailure
	// Malformed содержимое источника не удалось разобрать
	Malformed
)

func (k ErrorKind) String() string {
	switch k {
	case MissingField:
		return "missing field"
	case TypeMismatch:
		return "type mismatch"
	case IoFailure:
		return "io failure"
	case SystemCallFailure:
		return "system call failure"
	case Malformed:
		return "malformed"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error ошибка определения версии. Subject - имя поля, путь к файлу или имя системной функции
type Error struct {
	Kind    ErrorKind
	Subject string
	Err     error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case MissingField:
		msg = fmt.Sprintf("отсутствует обязательное поле '%s'", e.Subject)
	case TypeMismatch:
		msg = fmt.Sprintf("поле '%s' имеет неожиданный тип", e.Subject)
	case IoFailure:
		msg = fmt.Sprintf("ошибка чтения файла '%s'", e.Subject)
	case SystemCallFailure:
		msg = fmt.Sprintf("ошибка вызова системной функции '%s'", e.Subject)
	case Malformed:
		msg = fmt.Sprintf("не удалось разобрать '%s'", e.Subject)
	default:
		msg = fmt.Sprintf("%s: %s", e.Kind, e.Subject)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func errMissingField(field string) error {
	return errors.Trace(&Error{Kind: MissingField, Subject: field})
}

func errTypeMismatch(field string) error {
	return errors.Trace(&Error{Kind: TypeMismatch, Subject: field})
}

func errIO(path string, cause error) error {
	return errors.Trace(&Error{Kind: IoFailure, Subject: path, Err: cause})
}

func errSystemCall(routine string, cause error) error {
	return errors.Trace(&Error{Kind: SystemCallFailure, Subject: routine, Err: cause})
}

func errMalformed(path string, cause error) error {
	return errors.Trace(&Error{Kind: Malformed, Subject: path, Err: cause})
}

// KindOf возвращает вид ошибки, если err (возможно обёрнутая через errors.Trace
// или errors.Annotate) является *Error
func KindOf(err error) (ErrorKind, bool) {
	if e, ok := errors.Cause(err).(*Error); ok {
		return e.Kind, true
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
