package osversion

import (
	stderrors "errors"
	"os"
	"testing"

	"github.com/juju/errors"
	"github.com/maxatome/go-testdeep/td"
)

func TestKindOf(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind ErrorKind
	}{
		{"поле", errMissingField("ID"), MissingField},
		{"тип", errTypeMismatch("ProductVersion"), TypeMismatch},
		{"файл", errIO("/etc/os-release", os.ErrNotExist), IoFailure},
		{"системный вызов", errSystemCall("RtlGetVersion", nil), SystemCallFailure},
		{"разбор", errMalformed("SystemVersion.plist", errors.New("EOF")), Malformed},
		{"через Trace", errors.Trace(errors.Trace(errMissingField("ID"))), MissingField},
		{"через Annotate", errors.Annotate(errIO("/x", os.ErrPermission), "detect"), IoFailure},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := KindOf(tt.err)
			td.CmpTrue(t, ok)
			td.Cmp(t, kind, tt.kind)
		})
	}

	t.Run("чужая ошибка", func(t *testing.T) {
		_, ok := KindOf(errors.New("other"))
		td.CmpFalse(t, ok)
	})
}

func TestError_Error(t *testing.T) {
	td.Cmp(t, (&Error{Kind: MissingField, Subject: "ID"}).Error(), "отсутствует обязательное поле 'ID'")
	td.Cmp(t, (&Error{Kind: SystemCallFailure, Subject: "RtlGetVersion"}).Error(), td.Contains("RtlGetVersion"))
	td.Cmp(t, (&Error{Kind: IoFailure, Subject: "/etc/os-release", Err: os.ErrNotExist}).Error(),
		td.All(td.Contains("/etc/os-release"), td.Contains(os.ErrNotExist.Error())))
}

func TestError_Unwrap(t *testing.T) {
	err := &Error{Kind: IoFailure, Subject: "/etc/os-release", Err: os.ErrNotExist}
	td.CmpTrue(t, stderrors.Is(err, os.ErrNotExist))
}
