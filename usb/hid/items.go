package hid

// Main item tags.
const (
	tagInput         = 0x8
	tagOutput        = 0x9
	tagCollection    = 0xA
	tagFeature       = 0xB
	tagEndCollection = 0xC
)

// Global item tags.
const (
	tagUsagePage       = 0x0
	tagLogicalMinimum  = 0x1
	tagLogicalMaximum  = 0x2
	tagPhysicalMinimum = 0x3
	tagPhysicalMaximum = 0x4
	tagUnitExponent    = 0x5
	tagUnit            = 0x6
	tagReportSize      = 0x7
	tagReportID        = 0x8
	tagReportCount     = 0x9
)

// Local item tags.
const (
	tagUsage        = 0x0
	tagUsageMinimum = 0x1
	tagUsageMaximum = 0x2
)

// Usage pages used by game controllers.
const (
	PageGenericDesktop UsagePage = 0x01
	PageButton         UsagePage = 0x09
	PageVendor         UsagePage = 0xFF00
)

// Generic Desktop usages.
const (
	UsageJoystick  Usage = 0x04
	UsageGamePad   Usage = 0x05
	UsageX         Usage = 0x30
	UsageY         Usage = 0x31
	UsageZ         Usage = 0x32
	UsageRz        Usage = 0x35
	UsageHatSwitch Usage = 0x39
)

// MainFlags are the data bits of Input/Output/Feature items.
type MainFlags uint32

const (
	MainData      MainFlags = 0
	MainConstant  MainFlags = 1 << 0
	MainVariable  MainFlags = 1 << 1
	MainRelative  MainFlags = 1 << 2
	MainNullState MainFlags = 1 << 6

	DataVarAbs  = MainData | MainVariable
	ConstVarAbs = MainConstant | MainVariable
)

// CollectionKind is the data byte of a Collection item.
type CollectionKind uint8

const (
	CollectionPhysical    CollectionKind = 0x00
	CollectionApplication CollectionKind = 0x01
	CollectionLogical     CollectionKind = 0x02
)

type (
	UsagePage       uint16
	Usage           uint32
	UsageMinimum    uint32
	UsageMaximum    uint32
	LogicalMinimum  int32
	LogicalMaximum  int32
	PhysicalMinimum int32
	PhysicalMaximum int32
	UnitExponent    int32
	Unit            uint32
	ReportSize      uint32
	ReportCount     uint32
	ReportID        uint8
	Input           MainFlags
	Output          MainFlags
	Feature         MainFlags
)

func (v UsagePage) encode(e *encoder) error {
	return e.short(tagUsagePage, ItemTypeGlobal, dataU32(uint32(v)))
}

func (v Usage) encode(e *encoder) error {
	return e.short(tagUsage, ItemTypeLocal, dataU32(uint32(v)))
}

func (v UsageMinimum) encode(e *encoder) error {
	return e.short(tagUsageMinimum, ItemTypeLocal, dataU32(uint32(v)))
}

func (v UsageMaximum) encode(e *encoder) error {
	return e.short(tagUsageMaximum, ItemTypeLocal, dataU32(uint32(v)))
}

func (v LogicalMinimum) encode(e *encoder) error {
	return e.short(tagLogicalMinimum, ItemTypeGlobal, dataI32(int32(v)))
}

func (v LogicalMaximum) encode(e *encoder) error {
	return e.short(tagLogicalMaximum, ItemTypeGlobal, dataI32(int32(v)))
}

func (v PhysicalMinimum) encode(e *encoder) error {
	return e.short(tagPhysicalMinimum, ItemTypeGlobal, dataI32(int32(v)))
}

func (v PhysicalMaximum) encode(e *encoder) error {
	return e.short(tagPhysicalMaximum, ItemTypeGlobal, dataI32(int32(v)))
}

func (v UnitExponent) encode(e *encoder) error {
	return e.short(tagUnitExponent, ItemTypeGlobal, dataI32(int32(v)))
}

func (v Unit) encode(e *encoder) error {
	return e.short(tagUnit, ItemTypeGlobal, dataU32(uint32(v)))
}

func (v ReportSize) encode(e *encoder) error {
	return e.short(tagReportSize, ItemTypeGlobal, dataU32(uint32(v)))
}

func (v ReportCount) encode(e *encoder) error {
	return e.short(tagReportCount, ItemTypeGlobal, dataU32(uint32(v)))
}

func (v ReportID) encode(e *encoder) error {
	return e.short(tagReportID, ItemTypeGlobal, Data{uint8(v)})
}

func (v Input) encode(e *encoder) error {
	return e.short(tagInput, ItemTypeMain, dataU32(uint32(v)))
}

func (v Output) encode(e *encoder) error {
	return e.short(tagOutput, ItemTypeMain, dataU32(uint32(v)))
}

func (v Feature) encode(e *encoder) error {
	return e.short(tagFeature, ItemTypeMain, dataU32(uint32(v)))
}

// Collection groups items and closes itself with End Collection.
type Collection struct {
	Kind  CollectionKind
	Items []Item
}

func (c Collection) encode(e *encoder) error {
	if err := e.short(tagCollection, ItemTypeMain, Data{uint8(c.Kind)}); err != nil {
		return err
	}
	if err := e.items(c.Items); err != nil {
		return err
	}
	return e.short(tagEndCollection, ItemTypeMain, nil)
}
