package skeletal

import (
	"context"
	"time"

	"github.com/Supreeeme/xrizer/internal/openxr"
	"github.com/Supreeeme/xrizer/internal/ovr"
	"github.com/Supreeeme/xrizer/internal/profiles"
)

// defaultFingerSplay is the resting finger-splay value spec §4.7
// reports when no richer splay estimate is available.
const defaultFingerSplay = 0.2

// defaultThumbTouchCurl is how far the thumb is considered to curl
// when thumb_touch reports contact, since no profile exposes a
// continuous thumb curl input.
const defaultThumbTouchCurl = 0.6

// Estimator fills skeletal bone/summary data for one hand, either from
// a live XR_EXT_hand_tracking tracker or, absent one, from the
// curl/splay approximation driven by the fixed skeletal actions.
type Estimator struct {
	actions *Actions
}

// NewEstimator returns an Estimator reading curl/splay input from actions.
func NewEstimator(actions *Actions) *Estimator {
	return &Estimator{actions: actions}
}

// Curl is the per-finger curl amount in [0,1] (0 = open, 1 = fist)
// driving the estimator, in the order spec's VRSkeletalSummaryData_t
// expects (thumb, index, middle, ring, pinky).
type Curl [int(fingerCount)]float32

// ReadCurl samples the fixed skeletal actions for hand, synthesizing a
// thumb curl from thumb_touch and using index_curl directly; the three
// remaining fingers follow rest_curl, the profile's single "grip"
// signal, since no profile this package knows exposes per-finger curl
// beyond the index.
func (e *Estimator) ReadCurl(ctx context.Context, hand openxr.Path) (Curl, error) {
	var curl Curl

	thumbTouch, err := e.actions.ThumbTouch.Bool(ctx, hand)
	if err != nil {
		return curl, err
	}
	if thumbTouch.IsActive && thumbTouch.CurrentState {
		curl[FingerThumb] = defaultThumbTouchCurl
	}

	indexCurl, err := e.actions.IndexCurl.Float(ctx, hand)
	if err != nil {
		return curl, err
	}
	restCurl, err := e.actions.RestCurl.Float(ctx, hand)
	if err != nil {
		return curl, err
	}

	if indexCurl.IsActive {
		curl[FingerIndex] = clamp01(indexCurl.CurrentState)
	} else if restCurl.IsActive {
		curl[FingerIndex] = clamp01(restCurl.CurrentState)
	}
	if restCurl.IsActive {
		rest := clamp01(restCurl.CurrentState)
		curl[FingerMiddle] = rest
		curl[FingerRing] = rest
		curl[FingerPinky] = rest
	}

	return curl, nil
}

// EstimateBones blends restOpen and restFist per-finger by curl,
// producing the 31 bone transforms the estimator reports absent a hand
// tracker.
func EstimateBones(curl Curl) [BoneCount]ovr.Bone {
	var out [BoneCount]ovr.Bone
	for b := Bone(0); b < BoneCount; b++ {
		f, ok := finger(b)
		if !ok {
			out[b] = restOpen[b]
			continue
		}
		t := curl[f]
		out[b] = ovr.Bone{
			Position: lerpVec3(restOpen[b].Position, restFist[b].Position, t),
			Rotation: quatNlerp(restOpen[b].Rotation, restFist[b].Rotation, t),
		}
	}
	return out
}

// SummaryData reduces curl into VRSkeletalSummaryData_t's fixed-size
// arrays; finger splay is the spec-mandated constant.
func SummaryData(curl Curl) ovr.SkeletalSummaryData {
	var d ovr.SkeletalSummaryData
	for i, v := range curl {
		d.FingerCurl[i] = v
	}
	for i := range d.FingerSplay {
		d.FingerSplay[i] = defaultFingerSplay
	}
	return d
}

// GetBoneData is the core of GetSkeletalBoneData: if tracker is
// non-nil and actively tracking, its joints are reordered into the 31
// OpenVR bones; otherwise the curl/splay estimator runs off the fixed
// skeletal actions.
func (e *Estimator) GetBoneData(ctx context.Context, hand openxr.Path, tracker openxr.HandTracker, base openxr.Space, atTime time.Time) ([BoneCount]ovr.Bone, error) {
	if tracker != nil {
		joints, active, err := tracker.LocateJoints(ctx, base, atTime)
		if err != nil {
			return [BoneCount]ovr.Bone{}, err
		}
		if active {
			return bonesFromJoints(joints), nil
		}
	}

	curl, err := e.ReadCurl(ctx, hand)
	if err != nil {
		return [BoneCount]ovr.Bone{}, err
	}
	return EstimateBones(curl), nil
}

// GetSummaryData is the core of GetSkeletalSummaryData.
func (e *Estimator) GetSummaryData(ctx context.Context, hand openxr.Path) (ovr.SkeletalSummaryData, error) {
	curl, err := e.ReadCurl(ctx, hand)
	if err != nil {
		return ovr.SkeletalSummaryData{}, err
	}
	return SummaryData(curl), nil
}

// TrackingLevel is the core of GetSkeletalTrackingLevel: Full when a
// hand tracker is actively tracking, Partial for a profile that
// declares an index_curl binding (a Knuckles-class controller),
// Estimated otherwise.
func TrackingLevel(handTrackerActive bool, profile *profiles.Profile) ovr.SkeletalTrackingLevel {
	if handTrackerActive {
		return ovr.SkeletalTrackingLevelFull
	}
	if profile != nil && len(profile.Skeletal.IndexCurl) > 0 {
		return ovr.SkeletalTrackingLevelPartial
	}
	return ovr.SkeletalTrackingLevelEstimated
}
