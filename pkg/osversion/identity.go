package osversion

// Kind вид определённой операционной системы
type Kind int

const (
	KindUnknown Kind = iota
	KindLinux
	KindMacOS
	KindWindows
	KindAndroid
	KindOpenBSD
)

func (k Kind) String() string {
	switch k {
	case KindLinux:
		return "linux"
	case KindMacOS:
		return "macos"
	case KindWindows:
		return "windows"
	case KindAndroid:
		return "android"
	case KindOpenBSD:
		return "openbsd"
	}
	return "unknown"
}

// Identity результат определения ОС. Заполнен ровно один вариант:
// Linux, MacOS, Windows, OpenBSD, Android или Unknown
type Identity interface {
	Kind() Kind

	// String возвращает строку для отображения, например "ubuntu 18.04" или "windows 8.1"
	String() string

	// Fields возвращает именованные атрибуты (для логов и HTTP)
	Fields() map[string]string
}

// Linux дистрибутив Linux из /etc/os-release. Version и VersionName пустые, если
// в файле нет VERSION_ID и VERSION_CODENAME
type Linux struct {
	Distro      string
	Version     string
	VersionName string
}

func (Linux) Kind() Kind { return KindLinux }

func (l Linux) String() string {
	if l.Version != "" {
		return l.Distro + " " + l.Version
	}
	return l.Distro
}

func (l Linux) Fields() map[string]string {
	fields := map[string]string{"distro": l.Distro}
	if l.Version != "" {
		fields["version"] = l.Version
	}
	if l.VersionName != "" {
		fields["version_name"] = l.VersionName
	}
	return fields
}

// MacOS версия macOS (ProductVersion из SystemVersion.plist)
type MacOS struct {
	Version string
}

func (MacOS) Kind() Kind { return KindMacOS }

func (m MacOS) String() string { return "macOS " + m.Version }

func (m MacOS) Fields() map[string]string {
	return map[string]string{"version": m.Version}
}

// Windows редакция Windows, см. ResolveEdition
type Windows struct {
	Edition string
}

func (Windows) Kind() Kind { return KindWindows }

func (w Windows) String() string { return "windows " + w.Edition }

func (w Windows) Fields() map[string]string {
	return map[string]string{"edition": w.Edition}
}

// OpenBSD версия ядра OpenBSD как есть
type OpenBSD struct {
	Version string
}

func (OpenBSD) Kind() Kind { return KindOpenBSD }

func (o OpenBSD) String() string { return "openbsd " + o.Version }

func (o OpenBSD) Fields() map[string]string {
	return map[string]string{"version": o.Version}
}

// Android признак Android, полей версии нет
type Android struct{}

func (Android) Kind() Kind { return KindAndroid }

func (Android) String() string { return "android" }

func (Android) Fields() map[string]string { return map[string]string{} }

// Unknown платформа не распознана. Это не ошибка
type Unknown struct{}

func (Unknown) Kind() Kind { return KindUnknown }

func (Unknown) String() string { return "unknown" }

func (Unknown) Fields() map[string]string { return map[string]string{} }
