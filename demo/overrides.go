package demo

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"

	"gldemo/anim"

	"gopkg.in/yaml.v3"
)

// Overrides is a YAML scene file. Unset fields keep the demo's values.
type Overrides struct {
	Frames       *int         `yaml:"frames"`
	Hold         *bool        `yaml:"hold"`
	Depth        *bool        `yaml:"depth"`
	CenterZ      *float32     `yaml:"center_z"`
	DepthOfField *float32     `yaml:"depth_of_field"`
	Clear        []uint8      `yaml:"clear"`
	Instances    []anim.Orbit `yaml:"instances"`
}

// LoadOverrides reads a scene file.
func LoadOverrides(path string) (Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Overrides{}, err
	}
	return ParseOverrides(data)
}

// ParseOverrides decodes a scene file. Unknown keys are an error.
func ParseOverrides(data []byte) (Overrides, error) {
	var o Overrides
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&o); err != nil && !errors.Is(err, io.EOF) {
		return Overrides{}, fmt.Errorf("scene: %w", err)
	}
	if n := len(o.Clear); n != 0 && n != 3 && n != 4 {
		return Overrides{}, fmt.Errorf("scene: clear wants 3 or 4 channels, got %d", n)
	}
	return o, nil
}

// Apply returns d with the overrides applied, validated.
func (o Overrides) Apply(d Demo) (Demo, error) {
	if o.Frames != nil {
		d.Frames = *o.Frames
		d.Linger = 0
	}
	if o.Hold != nil {
		d.Hold = *o.Hold
	}
	if o.Depth != nil {
		d.Depth = *o.Depth
	}
	if o.CenterZ != nil {
		d.View.CenterZ = *o.CenterZ
	}
	if o.DepthOfField != nil {
		d.View.DepthOfField = *o.DepthOfField
	}
	if len(o.Clear) >= 3 {
		d.ClearColor = color.RGBA{R: o.Clear[0], G: o.Clear[1], B: o.Clear[2], A: 0xFF}
		if len(o.Clear) == 4 {
			d.ClearColor.A = o.Clear[3]
		}
	}
	if o.Instances != nil {
		d.Scene = append(anim.Scene(nil), o.Instances...)
	}
	if err := d.Validate(); err != nil {
		return Demo{}, err
	}
	return d, nil
}
