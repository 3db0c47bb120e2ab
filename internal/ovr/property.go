package ovr

// TrackedDeviceProperty mirrors the subset of ETrackedDeviceProperty the
// devices package resolves per device class/profile.
type TrackedDeviceProperty int32

const (
	PropTrackingSystemNameString     TrackedDeviceProperty = 1000
	PropModelNumberString            TrackedDeviceProperty = 1001
	PropSerialNumberString           TrackedDeviceProperty = 1002
	PropRenderModelNameString        TrackedDeviceProperty = 1003
	PropManufacturerNameString       TrackedDeviceProperty = 1005
	PropDeviceIsWireless             TrackedDeviceProperty = 1010
	PropDeviceIsCharging             TrackedDeviceProperty = 1011
	PropDeviceBatteryPercentageFloat TrackedDeviceProperty = 1012
	PropWillDriftInYaw               TrackedDeviceProperty = 1004
	PropDeviceClassInt32             TrackedDeviceProperty = 29
	PropControllerRoleHintInt32      TrackedDeviceProperty = 1018
	PropInputProfilePathString       TrackedDeviceProperty = 1029
	PropControllerTypeString         TrackedDeviceProperty = 1038
	PropNumCamerasInt32              TrackedDeviceProperty = 1039
	PropSupportedButtonsUint64       TrackedDeviceProperty = 1017
	PropUserIpdMetersFloat           TrackedDeviceProperty = 2003
	PropDisplayFrequencyFloat        TrackedDeviceProperty = 2004
)

// PropertyKind distinguishes which GetXProperty accessor a property
// belongs to, used by the devices package to route a property lookup
// to the right typed table.
type PropertyKind int

const (
	PropertyKindString PropertyKind = iota
	PropertyKindBool
	PropertyKindInt32
	PropertyKindUint64
	PropertyKindFloat
	PropertyKindMatrix34
)
