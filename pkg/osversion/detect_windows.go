//go:build windows

package osversion

import (
	"unsafe"

	"github.com/gonutz/w32/v2"
	"github.com/juju/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows"
)

const statusSuccess = 0

// Значения из edition.go должны совпадать с константами Windows: при расхождении
// индекс выходит за границы массива и файл не компилируется
var (
	_ = [1]struct{}{}[int(Workstation)-int(w32.VER_NT_WORKSTATION)]
	_ = [1]struct{}{}[int(SuiteWHServer)-int(w32.VER_SUITE_WH_SERVER)]
	_ = [1]struct{}{}[int(ArchAMD64)-int(w32.PROCESSOR_ARCHITECTURE_AMD64)]
)

var (
	modntdll    = windows.NewLazySystemDLL("ntdll.dll")
	modkernel32 = windows.NewLazySystemDLL("kernel32.dll")

	procRtlGetVersion = modntdll.NewProc("RtlGetVersion")
	procGetSystemInfo = modkernel32.NewProc("GetSystemInfo")
)

// NewHostDetector возвращает детектор текущей платформы
func NewHostDetector(opts Options) Detector {
	return NewWindowsDetector(opts)
}

// WindowsDetector определяет редакцию Windows через RtlGetVersion
type WindowsDetector struct {
	log *logrus.Entry
}

func NewWindowsDetector(opts Options) *WindowsDetector {
	opts = opts.withDefaults()
	return &WindowsDetector{log: opts.Log.WithField("scope", "windows")}
}

func (d *WindowsDetector) Detect() (Identity, error) {
	rec, err := ReadVersionRecord()
	if err != nil {
		return nil, errors.Trace(err)
	}
	d.log.Debugf("RtlGetVersion: %d.%d.%d, %s, suite 0x%04x", rec.Major, rec.Minor, rec.Build, rec.ProductType, uint16(rec.SuiteMask))

	query := func() (SecondaryInfo, error) {
		info, err := querySecondary()
		if err != nil {
			d.log.Warnf("редакция 5.2 не уточнена: %s", err)
		}
		return info, err
	}

	return Windows{Edition: ResolveEdition(rec, query)}, nil
}

// ReadVersionRecord вызывает RtlGetVersion из ntdll.dll. В отличие от GetVersionEx
// результат не зависит от манифеста приложения
func ReadVersionRecord() (VersionRecord, error) {
	if err := procRtlGetVersion.Find(); err != nil {
		return VersionRecord{}, errSystemCall(procRtlGetVersion.Name, err)
	}

	var info w32.RTL_OSVERSIONINFOEXW
	info.OSVersionInfoSize = uint32(unsafe.Sizeof(info))

	status, _, _ := procRtlGetVersion.Call(uintptr(unsafe.Pointer(&info)))
	if status != statusSuccess {
		return VersionRecord{}, errSystemCall(procRtlGetVersion.Name, errors.Errorf("NTSTATUS 0x%08x", uint32(status)))
	}

	return VersionRecord{
		Major:       info.MajorVersion,
		Minor:       info.MinorVersion,
		Build:       info.BuildNumber,
		ProductType: ProductType(info.ProductType),
		SuiteMask:   SuiteMask(info.SuiteMask),
	}, nil
}

func querySecondary() (SecondaryInfo, error) {
	result := SecondaryInfo{
		ServerR2:     w32.GetSystemMetrics(w32.SM_SERVERR2) != 0,
		Architecture: ArchUnknown,
	}

	if err := procGetSystemInfo.Find(); err != nil {
		return result, errSystemCall(procGetSystemInfo.Name, err)
	}

	var info w32.SYSTEM_INFO
	_, _, _ = procGetSystemInfo.Call(uintptr(unsafe.Pointer(&info)))
	result.Architecture = Architecture(info.ProcessorArchitecture)

	return result, nil
}
