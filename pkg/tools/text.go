package tools

import (
	"fmt"
	"sort"
	"strings"

	"github.com/thoas/go-funk"
)

// FieldsWidget выводит title и поля fields ("ключ: значение", ключи по алфавиту и выровнены)
// в рамке из символа border. Возвращает строки для построчного вывода в лог
func FieldsWidget(title string, fields map[string]string, border string) (formatedText []string) {

	if len(border) == 0 {
		border = "*"
	} else if len(border) > 1 {
		border = border[0:1]
	}

	keys := funk.Keys(fields).([]string)
	sort.Strings(keys)

	keyLen := 0
	for _, k := range keys {
		if len([]rune(k)) > keyLen {
			keyLen = len([]rune(k))
		}
	}

	text := []string{title}
	if len(keys) > 0 {
		text = append(text, "")
	}
	for _, k := range keys {
		text = append(text, fmt.Sprintf("%s:%s %s", k, strings.Repeat(" ", keyLen-len([]rune(k))), fields[k]))
	}

	maxLen := 0
	for _, v := range text {
		if len([]rune(v)) > maxLen {
			maxLen = len([]rune(v))
		}
	}

	borderTopBottom := strings.Repeat(border, maxLen+4)

	formatedText = append(formatedText, borderTopBottom)
	for _, v := range text {
		v += strings.Repeat(" ", maxLen-len([]rune(v)))
		formatedText = append(formatedText, fmt.Sprintf("%s %s %s", border, v, border))
	}
	formatedText = append(formatedText, borderTopBottom)

	return formatedText
}
