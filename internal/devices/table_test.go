package devices

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Supreeeme/xrizer/internal/ovr"
	"github.com/Supreeeme/xrizer/internal/profiles"
)

func TestNewTable_SeedsHmdAndControllers(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	require.Equal(t, 3, tbl.Len())
	assert.True(t, tbl.HMD().Connected())
	assert.False(t, tbl.Controller(HandLeft).Connected())
	assert.False(t, tbl.Controller(HandRight).Connected())
	assert.Equal(t, ovr.TrackedDeviceClassHMD, tbl.GetTrackedDeviceClass(ovr.DeviceIndexHmd))
}

func TestTable_AddTrackerCapsAtMax(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	for i := 3; i < ovr.MaxTrackedDeviceCount; i++ {
		require.NotNil(t, tbl.AddTracker())
	}
	assert.Nil(t, tbl.AddTracker(), "table must cap at MaxTrackedDeviceCount")
	assert.Equal(t, ovr.MaxTrackedDeviceCount, tbl.Len())
}

func TestDevice_SetConnectedReportsChange(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	left := tbl.Controller(HandLeft)
	assert.True(t, left.SetConnected(true), "false->true is a change")
	assert.False(t, left.SetConnected(true), "true->true is not a change")
	assert.True(t, left.SetConnected(false), "true->false is a change")
}

func TestDevice_PropertyLookupRoutesThroughProfile(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	left := tbl.Controller(HandLeft)
	left.SetConnected(true)
	left.SetProfile(profiles.Knuckles, profiles.Knuckles.Path)

	model, err := left.GetStringProperty(ovr.PropModelNumberString)
	require.Nil(t, err)
	assert.Equal(t, "Knuckles Left", model)

	mask, err := left.GetUint64Property(ovr.PropSupportedButtonsUint64)
	require.Nil(t, err)
	assert.Equal(t, profiles.Knuckles.Properties.LegacyButtonMask, mask)
}

func TestDevice_DisconnectedReportsInvalidDevice(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	left := tbl.Controller(HandLeft)

	_, err := left.GetStringProperty(ovr.PropModelNumberString)
	require.NotNil(t, err)
	assert.True(t, ovr.Is(err, ovr.ErrInvalidDevice))
}

func TestDevice_MissingProfileReportsUnknownProperty(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	left := tbl.Controller(HandLeft)
	left.SetConnected(true)

	_, err := left.GetStringProperty(ovr.PropModelNumberString)
	require.NotNil(t, err)
	assert.True(t, ovr.Is(err, ovr.ErrUnknownProperty))
}

func TestDevice_LiveHmdMetrics(t *testing.T) {
	t.Parallel()

	tbl := NewTable()
	hmd := tbl.HMD()

	_, err := hmd.GetFloatProperty(ovr.PropUserIpdMetersFloat)
	require.NotNil(t, err, "unset live metric is unknown")

	ipd := float32(0.063)
	hmd.SetLiveHMDMetrics(&ipd, nil)
	got, err := hmd.GetFloatProperty(ovr.PropUserIpdMetersFloat)
	require.Nil(t, err)
	assert.Equal(t, ipd, got)
}
