package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/maxatome/go-testdeep/td"
	"github.com/sirupsen/logrus"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

func TestCallerHook_Fire(t *testing.T) {
	buff := new(bytes.Buffer)

	log := logrus.New()
	log.Out = buff
	log.Formatter = &logrus.JSONFormatter{}
	log.AddHook(CallerHook{})

	log.WithField("scope", "test").Info("проверка")

	var entry map[string]interface{}
	td.Require(t).CmpNoError(json.Unmarshal(buff.Bytes(), &entry))
	td.Cmp(t, entry["file"], td.Re(`^logrus_test\.go:\d+$`))
	td.Cmp(t, entry["scope"], "test")
}

func TestNew(t *testing.T) {
	t.Run("windows", func(t *testing.T) {
		log := New(true, false)
		td.Cmp(t, log.Level, logrus.InfoLevel)
		td.Cmp(t, log.Formatter, td.Isa(&logrus.TextFormatter{}))
		td.CmpTrue(t, log.Formatter.(*logrus.TextFormatter).DisableColors)
	})

	t.Run("остальные", func(t *testing.T) {
		log := New(false, true)
		td.Cmp(t, log.Formatter, td.Isa(&prefixed.TextFormatter{}))
		td.CmpFalse(t, log.Formatter.(*prefixed.TextFormatter).DisableColors)

		DisableColors(log)
		td.CmpTrue(t, log.Formatter.(*prefixed.TextFormatter).DisableColors)
	})
}
