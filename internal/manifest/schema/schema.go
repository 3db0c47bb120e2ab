// Package schema defines the JSON shape of an action manifest and its
// bound default-binding files, and can reflect a JSON Schema document
// for them for editor/documentation use.
package schema

import (
	"github.com/invopop/jsonschema"
)

// Document is the top-level action manifest JSON document passed to
// SetActionManifestPath.
type Document struct {
	ActionSets      []ActionSet      `json:"action_sets" validate:"required,dive"`
	Actions         []Action         `json:"actions" validate:"required,dive"`
	DefaultBindings []DefaultBinding `json:"default_bindings"`
	Localization    []map[string]string `json:"localization,omitempty"`
}

// ActionSet declares one action set.
type ActionSet struct {
	Name  string `json:"name" validate:"required"`
	Usage string `json:"usage,omitempty"`
}

// Action declares one action. Type is one of boolean, vector1, vector2,
// pose, skeleton, vibration; unrecognized types are skipped with a
// warning rather than rejected, per the loader's tolerant parsing.
type Action struct {
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Skeleton    string `json:"skeleton,omitempty"`
	Requirement string `json:"requirement,omitempty"`
}

// DefaultBinding points at one profile's binding file.
type DefaultBinding struct {
	ControllerType string `json:"controller_type" validate:"required"`
	BindingURL     string `json:"binding_url" validate:"required"`
}

// BindingFile is the per-profile document a DefaultBinding.BindingURL
// resolves to.
type BindingFile struct {
	InteractionProfile string            `json:"interaction_profile" validate:"required"`
	ActionLists        []BindingActionList `json:"action_lists" validate:"required,dive"`
}

// BindingActionList groups the sources bound for one action set within
// one profile's binding file.
type BindingActionList struct {
	ActionSet string          `json:"action_set" validate:"required"`
	Sources   []BindingSource `json:"sources"`
	Poses     []BindingPose   `json:"poses,omitempty"`
	Haptics   []BindingHaptic `json:"haptics,omitempty"`
}

// BindingSource is one physical input's routing to one or more actions.
type BindingSource struct {
	// Path is the physical input path, e.g.
	// "/user/hand/left/input/trackpad".
	Path string `json:"path" validate:"required"`

	// Mode classifies how Inputs is interpreted: button, trigger,
	// trackpad, joystick, dpad, grab, toggle, force_sensor,
	// scalar_constant, and others the loader tolerates by falling back
	// to a plain suggestion of whatever output it finds.
	Mode string `json:"mode" validate:"required"`

	// Inputs maps a component name (click, touch, force, value,
	// position, pull, ...) to the output action it feeds.
	Inputs map[string]BindingOutput `json:"inputs"`

	Parameters *BindingParameters `json:"parameters,omitempty"`
}

// BindingOutput names the action path a component's value is routed to.
type BindingOutput struct {
	Output string `json:"output" validate:"required"`
}

// BindingParameters carries the optional tuning knobs a source's mode
// may use; absent fields fall back to the evaluator's defaults.
type BindingParameters struct {
	SubMode          string   `json:"sub_mode,omitempty"`
	ClickThreshold   *float32 `json:"click_threshold,omitempty"`
	ReleaseThreshold *float32 `json:"release_threshold,omitempty"`
	HoldThreshold    *float32 `json:"hold_threshold,omitempty"`
	HapticAmplitude  *float32 `json:"haptic_amplitude,omitempty"`
}

// BindingPose binds one pose output (skeleton/raw/grip/aim) to an action.
type BindingPose struct {
	Path   string `json:"path" validate:"required"`
	Output string `json:"output" validate:"required"`
}

// BindingHaptic binds one haptic output path to an action.
type BindingHaptic struct {
	Path   string `json:"path" validate:"required"`
	Output string `json:"output" validate:"required"`
}

// Reflect returns a JSON Schema for Document, suitable for IDE
// autocompletion or for validating a manifest before the semantic
// loader runs.
func Reflect() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	s := reflector.Reflect(&Document{})
	s.Version = "https://json-schema.org/draft/2020-12/schema"
	s.Title = "xrizer action manifest"
	return s
}

// ReflectBindingFile returns a JSON Schema for BindingFile.
func ReflectBindingFile() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
		DoNotReference:            true,
	}
	s := reflector.Reflect(&BindingFile{})
	s.Version = "https://json-schema.org/draft/2020-12/schema"
	s.Title = "xrizer default binding file"
	return s
}
