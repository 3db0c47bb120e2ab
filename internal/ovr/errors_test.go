package ovr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// ============================================================================
// Error.Error() Tests
// ============================================================================

func TestError_Error(t *testing.T) {
	t.Parallel()

	t.Run("error with detail includes detail in message", func(t *testing.T) {
		t.Parallel()
		err := &Error{Code: ErrWrongType, Op: "GetDigitalActionData", Detail: "action is vector1"}

		assert.Contains(t, err.Error(), "GetDigitalActionData")
		assert.Contains(t, err.Error(), "WrongType")
		assert.Contains(t, err.Error(), "action is vector1")
	})

	t.Run("error without detail omits trailing separator", func(t *testing.T) {
		t.Parallel()
		err := &Error{Code: ErrInvalidHandle, Op: "GetActionHandle"}

		assert.Equal(t, "GetActionHandle: InvalidHandle", err.Error())
	})
}

// ============================================================================
// ErrorCode.String() Tests
// ============================================================================

func TestErrorCode_String(t *testing.T) {
	t.Parallel()

	cases := map[ErrorCode]string{
		ErrInvalidHandle:      "InvalidHandle",
		ErrWrongType:          "WrongType",
		ErrInvalidParam:       "InvalidParam",
		ErrInvalidDevice:      "InvalidDevice",
		ErrUnknownProperty:    "UnknownProperty",
		ErrBufferTooSmall:     "BufferTooSmall",
		ErrNoActiveActionSet:  "NoActiveActionSet",
		ErrMaxCapacityReached: "MaxCapacityReached",
	}
	for code, want := range cases {
		assert.Equal(t, want, code.String())
	}

	assert.Contains(t, ErrorCode(999).String(), "Unknown")
}

// ============================================================================
// Factory Function Tests
// ============================================================================

func TestNewInvalidHandle(t *testing.T) {
	t.Parallel()
	err := NewInvalidHandle("GetActionSetHandle")
	assert.Equal(t, ErrInvalidHandle, err.Code)
	assert.Equal(t, "GetActionSetHandle", err.Op)
}

func TestNewBufferTooSmall(t *testing.T) {
	t.Parallel()
	err := NewBufferTooSmall("GetStringTrackedDeviceProperty", 42)
	assert.Equal(t, ErrBufferTooSmall, err.Code)
	assert.Contains(t, err.Detail, "42")
}

func TestBenign(t *testing.T) {
	t.Parallel()
	assert.Nil(t, Benign())
}

func TestIs(t *testing.T) {
	t.Parallel()

	err := NewInvalidDevice("GetControllerState")
	assert.True(t, Is(err, ErrInvalidDevice))
	assert.False(t, Is(err, ErrWrongType))
	assert.False(t, Is(nil, ErrInvalidDevice))
}

// ============================================================================
// Device constants
// ============================================================================

func TestButtonMask(t *testing.T) {
	t.Parallel()
	assert.Equal(t, uint64(1), ButtonMask(ButtonSystem))
	assert.Equal(t, uint64(1)<<32, ButtonMask(ButtonAxis0))
}
