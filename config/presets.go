package config

import "sort"

var Presets = map[string]Params{
	"sapling": {
		Mode: Fractal, Depth: 4, Angle: 20, Length: 70,
	},
	"oak": {
		Mode: Fractal, Depth: 9, Angle: 25, Length: 90,
	},
	"fan": {
		Mode: Fractal, Depth: 8, Angle: 60, Length: 60,
	},
	"bush": {
		Mode: LSystem, Depth: 3, Angle: 25, Length: 8,
		Axiom: "F", Rule: "F[+F]F[-F]F",
	},
	"weed": {
		Mode: LSystem, Depth: 4, Angle: 22, Length: 5,
		Axiom: "F", Rule: "FF-[-F+F+F]+[+F-F-F]",
	},
	"twig": {
		Mode: LSystem, Depth: 5, Angle: 30, Length: 4,
		Axiom: "F", Rule: "F[+F]F",
	},
}

// GetPreset returns the named preset on top of the defaults.
func GetPreset(name string) (Params, bool) {
	preset, ok := Presets[name]
	if !ok {
		return Params{}, false
	}
	p := Default()
	p.Mode = preset.Mode
	p.Depth = preset.Depth
	p.Angle = preset.Angle
	p.Length = preset.Length
	if preset.Axiom != "" {
		p.Axiom = preset.Axiom
	}
	if preset.Rule != "" {
		p.Rule = preset.Rule
	}
	return p, true
}

// ListPresets returns the preset names in order.
func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
