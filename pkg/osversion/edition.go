package osversion

import "fmt"

// ProductType роль системы Windows (значения VER_NT_*)
type ProductType uint8

const (
	Workstation      ProductType = 1
	DomainController ProductType = 2
	Server           ProductType = 3
)

func (p ProductType) String() string {
	switch p {
	case Workstation:
		return "workstation"
	case DomainController:
		return "domain controller"
	case Server:
		return "server"
	}
	return fmt.Sprintf("product type %d", uint8(p))
}

// SuiteMask набор флагов VER_SUITE_*
type SuiteMask uint16

// SuiteWHServer флаг Windows Home Server (VER_SUITE_WH_SERVER)
const SuiteWHServer SuiteMask = 0x8000

func (m SuiteMask) Has(bit SuiteMask) bool {
	return m&bit == bit
}

// Architecture архитектура процессора (значения PROCESSOR_ARCHITECTURE_*)
type Architecture uint16

const (
	ArchIntel   Architecture = 0
	ArchARM     Architecture = 5
	ArchIA64    Architecture = 6
	ArchAMD64   Architecture = 9
	ArchARM64   Architecture = 12
	ArchUnknown Architecture = 0xFFFF
)

func (a Architecture) Is64Bit() bool {
	return a == ArchAMD64 || a == ArchIA64 || a == ArchARM64
}

// VersionRecord версия Windows в том виде, как её возвращает RtlGetVersion
type VersionRecord struct {
	Major       uint32
	Minor       uint32
	Build       uint32
	ProductType ProductType
	SuiteMask   SuiteMask
}

// SecondaryInfo дополнительные сведения для различения редакций 5.2
type SecondaryInfo struct {
	// Windows Server 2003 R2 (GetSystemMetrics(SM_SERVERR2) != 0)
	ServerR2     bool
	Architecture Architecture
}

// SecondaryQuery получает SecondaryInfo. Вызывается только для версии 5.2
type SecondaryQuery func() (SecondaryInfo, error)

// ResolveEdition определяет редакцию Windows по версии и роли системы.
//
//	| ----- | ------------------ | ------------------------------------ |
//	| major | minor, роль        | редакция                             |
//	| ----- | ------------------ | ------------------------------------ |
//	| 10    | 0, workstation     | 10                                   |
//	| 10    | 0, остальные       | server 2016                          |
//	| 6     | 3                  | 8.1 / server 2012 r2                 |
//	| 6     | 2                  | 8 / server 2012                      |
//	| 6     | 1                  | 7 / server 2008 r2                   |
//	| 6     | 0                  | vista / server 2008                  |
//	| 5     | 1                  | xp                                   |
//	| 5     | 0                  | 2000                                 |
//	| 5     | 2, не R2           | home server / xp x64 / server 2003   |
//	| ----- | ------------------ | ------------------------------------ |
//
// Всё остальное (включая 5.2 R2) выводится как "<major>.<minor>". Если query вернул
// ошибку, редакция тоже считается неизвестной.
func ResolveEdition(rec VersionRecord, query SecondaryQuery) string {
	workstation := rec.ProductType == Workstation

	switch {
	case rec.Major == 10 && rec.Minor == 0:
		if workstation {
			return "10"
		}
		return "server 2016"
	case rec.Major == 6 && rec.Minor == 3:
		if workstation {
			return "8.1"
		}
		return "server 2012 r2"
	case rec.Major == 6 && rec.Minor == 2:
		if workstation {
			return "8"
		}
		return "server 2012"
	case rec.Major == 6 && rec.Minor == 1:
		if workstation {
			return "7"
		}
		return "server 2008 r2"
	case rec.Major == 6 && rec.Minor == 0:
		if workstation {
			return "vista"
		}
		return "server 2008"
	case rec.Major == 5 && rec.Minor == 1:
		return "xp"
	case rec.Major == 5 && rec.Minor == 0:
		return "2000"
	case rec.Major == 5 && rec.Minor == 2 && query != nil:
		info, err := query()
		if err != nil || info.ServerR2 {
			break
		}

		// Home Server, XP Professional x64 и Server 2003 имеют одну и ту же версию 5.2
		if rec.SuiteMask.Has(SuiteWHServer) {
			return "home server"
		}
		if workstation && info.Architecture == ArchAMD64 {
			return "xp professional x64 edition"
		}
		return "server 2003"
	}

	return fmt.Sprintf("%d.%d", rec.Major, rec.Minor)
}
