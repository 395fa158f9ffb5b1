// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package skeleton

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// DefaultFileName is the name InitFile writes.
const DefaultFileName = "scene.toml"

// hexColorRe matches "#RGB", "#RGBA", "#RRGGBB" and "#RRGGBBAA".
var hexColorRe = regexp.MustCompile(`^#([0-9A-Fa-f]{3,4}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{8})$`)

// Bone shapes.
const (
	ShapeBone   = "bone"
	ShapeCircle = "circle"
)

// Config describes a skeleton, its skins and animations, and how it is
// placed in the viewport.
type Config struct {
	// Skin and Animation select the entries used by Init.
	Skin      string `toml:"skin"`
	Animation string `toml:"animation"`
	Loop      bool   `toml:"loop"`

	// TimeScale multiplies frame deltas before they advance the animation.
	TimeScale float64 `toml:"time_scale"`

	// X and Y place the root bone in viewport pixels from the bottom left.
	X     float64 `toml:"x"`
	Y     float64 `toml:"y"`
	Scale float64 `toml:"scale"`

	Bones      []BoneConfig               `toml:"bones"`
	Skins      map[string]SkinConfig      `toml:"skins"`
	Animations map[string]AnimationConfig `toml:"animations"`
}

// BoneConfig is the setup pose of one bone. Position and rotation are
// relative to the parent bone. Parents must be listed before children.
type BoneConfig struct {
	Name     string  `toml:"name"`
	Parent   string  `toml:"parent"`
	X        float64 `toml:"x"`
	Y        float64 `toml:"y"`
	Rotation float64 `toml:"rotation"` // degrees, counter-clockwise
	Length   float64 `toml:"length"`
	Width    float64 `toml:"width"`
	Shape    string  `toml:"shape"` // "bone" (default) or "circle"
	Slot     string  `toml:"slot"`  // skin colour key; empty draws nothing
}

// SkinConfig maps slot names to hex colours.
type SkinConfig struct {
	Colors map[string]string `toml:"colors"`
}

// AnimationConfig is a named set of per-bone timelines.
type AnimationConfig struct {
	Duration  float64          `toml:"duration"` // seconds
	Timelines []TimelineConfig `toml:"timelines"`
}

// TimelineConfig animates one bone. Rotate keys are degrees added to the
// setup rotation; Scale keys multiply the bone's size.
type TimelineConfig struct {
	Bone   string      `toml:"bone"`
	Rotate []KeyConfig `toml:"rotate"`
	Scale  []KeyConfig `toml:"scale"`
}

// KeyConfig is one keyframe.
type KeyConfig struct {
	Time  float64 `toml:"time"`
	Value float64 `toml:"value"`
}

// Validate checks the configuration for structural problems and returns
// all of them joined together. Skin and Animation are not checked against
// the tables here; Scene.Init reports an unknown selection by returning
// false.
func (c *Config) Validate() error {
	var errs []error

	if c.TimeScale < 0 {
		errs = append(errs, errors.New("time_scale must be >= 0"))
	}
	if c.Scale <= 0 {
		errs = append(errs, errors.New("scale must be > 0"))
	}

	if len(c.Bones) == 0 {
		errs = append(errs, errors.New("bones must not be empty"))
	}
	seen := make(map[string]bool, len(c.Bones))
	for i, b := range c.Bones {
		switch {
		case b.Name == "":
			errs = append(errs, fmt.Errorf("bones[%d].name must not be empty", i))
		case seen[b.Name]:
			errs = append(errs, fmt.Errorf("bones[%d].name %q is duplicated", i, b.Name))
		}
		if b.Parent != "" && !seen[b.Parent] {
			errs = append(errs, fmt.Errorf("bones[%d].parent %q must name an earlier bone", i, b.Parent))
		}
		if b.Length < 0 || b.Width < 0 {
			errs = append(errs, fmt.Errorf("bones[%d] length and width must be >= 0", i))
		}
		if b.Shape != "" && b.Shape != ShapeBone && b.Shape != ShapeCircle {
			errs = append(errs, fmt.Errorf("bones[%d].shape must be %q or %q", i, ShapeBone, ShapeCircle))
		}
		seen[b.Name] = true
	}

	for name, skin := range c.Skins {
		for slot, col := range skin.Colors {
			if !hexColorRe.MatchString(col) {
				errs = append(errs, fmt.Errorf("skins.%s.colors.%s must be a hex color (e.g. \"#7D56F4\")", name, slot))
			}
		}
	}

	for name, anim := range c.Animations {
		if anim.Duration <= 0 {
			errs = append(errs, fmt.Errorf("animations.%s.duration must be > 0", name))
		}
		for i, tl := range anim.Timelines {
			if !seen[tl.Bone] {
				errs = append(errs, fmt.Errorf("animations.%s.timelines[%d].bone %q is not a bone", name, i, tl.Bone))
			}
			errs = append(errs, validateKeys(fmt.Sprintf("animations.%s.timelines[%d].rotate", name, i), tl.Rotate, anim.Duration)...)
			errs = append(errs, validateKeys(fmt.Sprintf("animations.%s.timelines[%d].scale", name, i), tl.Scale, anim.Duration)...)
		}
	}

	return errors.Join(errs...)
}

func validateKeys(field string, keys []KeyConfig, duration float64) []error {
	var errs []error
	for i, k := range keys {
		if k.Time < 0 || (duration > 0 && k.Time > duration) {
			errs = append(errs, fmt.Errorf("%s[%d].time must be within [0, duration]", field, i))
		}
		if i > 0 && k.Time <= keys[i-1].Time {
			errs = append(errs, fmt.Errorf("%s[%d].time must be greater than the previous key", field, i))
		}
	}
	return errs
}

// Defaults returns a small figure with an idle and a wave animation and
// two skins.
func Defaults() Config {
	return Config{
		Skin:      "default",
		Animation: "idle",
		Loop:      true,
		TimeScale: 1,
		X:         160,
		Y:         40,
		Scale:     1,
		Bones: []BoneConfig{
			{Name: "root"},
			{Name: "hip", Parent: "root", Y: 60, Rotation: 90},
			{Name: "torso", Parent: "hip", Length: 70, Width: 26, Slot: "body"},
			{Name: "head", Parent: "torso", X: 74, Length: 36, Width: 36, Shape: ShapeCircle, Slot: "head"},
			{Name: "arm-left", Parent: "torso", X: 62, Y: 14, Rotation: 150, Length: 48, Width: 10, Slot: "limb"},
			{Name: "arm-right", Parent: "torso", X: 62, Y: -14, Rotation: -150, Length: 48, Width: 10, Slot: "limb"},
			{Name: "leg-left", Parent: "hip", Y: 8, Rotation: 175, Length: 60, Width: 12, Slot: "limb"},
			{Name: "leg-right", Parent: "hip", Y: -8, Rotation: -175, Length: 60, Width: 12, Slot: "limb"},
		},
		Skins: map[string]SkinConfig{
			"default": {Colors: map[string]string{
				"body": "#3B82F6",
				"head": "#F2C29B",
				"limb": "#1E3A8A",
			}},
			"night": {Colors: map[string]string{
				"body": "#4C1D95",
				"head": "#C4A484",
				"limb": "#111827",
			}},
		},
		Animations: map[string]AnimationConfig{
			"idle": {
				Duration: 2,
				Timelines: []TimelineConfig{
					{Bone: "torso", Rotate: []KeyConfig{{0, 0}, {1, 4}, {2, 0}}},
					{Bone: "head", Rotate: []KeyConfig{{0, 0}, {1, -6}, {2, 0}}},
					{Bone: "torso", Scale: []KeyConfig{{0, 1}, {1, 1.03}, {2, 1}}},
				},
			},
			"wave": {
				Duration: 1,
				Timelines: []TimelineConfig{
					{Bone: "arm-right", Rotate: []KeyConfig{{0, 0}, {0.5, 110}, {1, 0}}},
					{Bone: "head", Rotate: []KeyConfig{{0, 0}, {0.5, 8}, {1, 0}}},
				},
			},
		},
	}
}

// LoadFile reads a scene configuration from a TOML file on top of
// Defaults and validates it. Unknown keys are rejected as likely typos.
func LoadFile(path string) (*Config, error) {
	cfg := Defaults()
	// Tables present in the file replace the defaults instead of merging.
	cfg.Bones, cfg.Skins, cfg.Animations = nil, nil, nil

	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("skeleton: decode %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("skeleton: unknown keys in %s: %s (possible typos?)", path, strings.Join(keys, ", "))
	}

	def := Defaults()
	if !meta.IsDefined("bones") {
		cfg.Bones = def.Bones
	}
	if !meta.IsDefined("skins") {
		cfg.Skins = def.Skins
	}
	if !meta.IsDefined("animations") {
		cfg.Animations = def.Animations
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("skeleton: invalid %s: %w", path, err)
	}
	return &cfg, nil
}

// WriteFile encodes cfg as TOML to path.
func WriteFile(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("skeleton: create %s: %w", path, err)
	}
	if err := toml.NewEncoder(f).Encode(cfg); err != nil {
		f.Close()
		return fmt.Errorf("skeleton: encode %s: %w", path, err)
	}
	return f.Close()
}

// InitFile writes the default configuration to scene.toml in dir and
// returns its path. It refuses to overwrite an existing file.
func InitFile(dir string) (string, error) {
	path := filepath.Join(dir, DefaultFileName)
	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("skeleton: %s already exists at %s", DefaultFileName, path)
	}
	if err := WriteFile(path, Defaults()); err != nil {
		return "", err
	}
	return path, nil
}
