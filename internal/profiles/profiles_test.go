package profiles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByPath_KnownProfile(t *testing.T) {
	t.Parallel()

	p := ByPath("/interaction_profiles/valve/index_controller")
	require.NotNil(t, p)
	assert.Equal(t, "knuckles", p.Properties.ControllerType)
}

func TestByPath_UnknownFallsBackToSimpleController(t *testing.T) {
	t.Parallel()

	p := ByPath("/interaction_profiles/made/up_vendor")
	assert.Same(t, SimpleController, p)
}

func TestKnuckles_LegalPathsAcceptsBoundPaths(t *testing.T) {
	t.Parallel()

	assert.True(t, Knuckles.IsLegalPath("/user/hand/left/input/a/click"))
	assert.True(t, Knuckles.IsLegalPath("/user/hand/right/input/trackpad/force"))
	assert.False(t, Knuckles.IsLegalPath("/user/hand/left/input/nonexistent"))
}

func TestKnuckles_TranslateAppliesRewrites(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/user/hand/left/input/squeeze/force",
		Knuckles.Translate("/user/hand/left/input/squeeze/grab"))
	assert.Equal(t, "/user/hand/left/input/trigger/value",
		Knuckles.Translate("/user/hand/left/input/trigger/pull"))
}

func TestViveWand_TranslateStopsOnFirstMatch(t *testing.T) {
	t.Parallel()

	// "trigger/click" -> "trigger/value" should win, not fall through to
	// any later rule matching the rewritten text.
	got := ViveWand.Translate("/user/hand/left/input/trigger/click")
	assert.Equal(t, "/user/hand/left/input/trigger/value", got)
}

func TestHandString_Value(t *testing.T) {
	t.Parallel()

	h := HandString{Left: "L", Right: "R"}
	assert.Equal(t, "L", h.Value("left"))
	assert.Equal(t, "R", h.Value("right"))

	both := BothHands("same")
	assert.Equal(t, "same", both.Value("left"))
	assert.Equal(t, "same", both.Value("right"))
}

func TestAll_EveryProfileHasAPath(t *testing.T) {
	t.Parallel()

	for _, p := range All() {
		assert.NotEmpty(t, p.Path)
		assert.NotNil(t, p.OffsetGripPose)
	}
}

func TestSamsungOdyssey_SharesMicrosoftBindingsButNotOffset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, MicrosoftMotionController.Legacy, SamsungOdyssey.Legacy)
	assert.NotEqual(t, MicrosoftMotionController.Path, SamsungOdyssey.Path)
}
