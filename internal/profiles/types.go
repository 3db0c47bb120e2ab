// Package profiles holds the static descriptors for every interaction
// profile xrizer knows how to translate, one file per profile, mirroring
// how the reference implementation splits these by controller family.
package profiles

import "github.com/Supreeeme/xrizer/internal/ovr"

// MainAxisKind names which physical control a profile reports as its
// "main" 2D axis in legacy mode.
type MainAxisKind int

const (
	MainAxisThumbstick MainAxisKind = iota
	MainAxisTrackpad
)

// HandString is a per-hand string property; Right is used verbatim when
// non-empty, otherwise Left is used for both hands.
type HandString struct {
	Left, Right string
}

// Value returns the property for hand ("left" or "right").
func (h HandString) Value(hand string) string {
	if hand == "right" && h.Right != "" {
		return h.Right
	}
	return h.Left
}

// BothHands returns a HandString reporting the same value for either hand.
func BothHands(s string) HandString { return HandString{Left: s, Right: s} }

// PathTranslation is one substring rewrite applied, in order, to an
// incoming OpenVR-style binding path before it is validated and
// suggested. Stop short-circuits the remaining rules for that path.
type PathTranslation struct {
	From, To string
	Stop     bool
}

// LegacyBindings lists, per legacy action, the profile-specific input
// paths that feed it when the legacy action set is bound.
type LegacyBindings struct {
	GripPose     []string
	AimPose      []string
	Trigger      []string
	TriggerClick []string
	Squeeze      []string
	SqueezeClick []string
	MainXY       []string
	MainXYClick  []string
	MainXYTouch  []string
	AppMenu      []string
	A            []string
}

// SkeletalInputBindings lists the paths whose state feeds the
// curl/splay estimator in internal/skeletal.
type SkeletalInputBindings struct {
	ThumbTouch []string
	IndexTouch []string
	IndexCurl  []string
	RestCurl   []string
}

// Properties is the static device-property table for a profile.
type Properties struct {
	Model                HandString
	ControllerType       string
	RenderModelName      HandString
	RegisteredDeviceType HandString
	SerialNumber         HandString
	TrackingSystemName   string
	ManufacturerName     string
	MainAxis             MainAxisKind
	LegacyButtonMask     uint64
}

// Profile is the full static descriptor for one OpenXR interaction
// profile: its legal paths, path-rewrite rules, device properties,
// legacy/skeletal bindings, and grip-pose offset.
type Profile struct {
	Path       string
	Properties Properties
	// LegalPaths is the exhaustive set of input/output subpaths this
	// profile accepts, already expanded per-hand.
	LegalPaths     map[string]struct{}
	TranslateMap   []PathTranslation
	Legacy         LegacyBindings
	Skeletal       SkeletalInputBindings
	OffsetGripPose func(hand string) ovr.Matrix34
}

// IsLegalPath reports whether path is one this profile accepts a
// binding for.
func (p *Profile) IsLegalPath(path string) bool {
	_, ok := p.LegalPaths[path]
	return ok
}

// Translate applies the profile's translate map to path, returning the
// rewritten path.
func (p *Profile) Translate(path string) string {
	for _, t := range p.TranslateMap {
		if idx := indexOf(path, t.From); idx >= 0 {
			path = path[:idx] + t.To + path[idx+len(t.From):]
			if t.Stop {
				break
			}
		}
	}
	return path
}

func indexOf(s, substr string) int {
	n, m := len(s), len(substr)
	if m == 0 || m > n {
		return -1
	}
	for i := 0; i+m <= n; i++ {
		if s[i:i+m] == substr {
			return i
		}
	}
	return -1
}

func leftRight(suffix string) []string {
	return []string{"/user/hand/left/" + suffix, "/user/hand/right/" + suffix}
}

func leftRightLegal(set map[string]struct{}, suffixes ...string) {
	for _, s := range suffixes {
		set["/user/hand/left/"+s] = struct{}{}
		set["/user/hand/right/"+s] = struct{}{}
	}
}
