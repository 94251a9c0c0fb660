// Package effect models the editable state of the soft UI effect editor.
//
// A State is a plain comparable value: the power switch, which of the four effects
// (glow, glass, neomorphism, claymorphism) are active, the preview theme mode and the
// settings of every effect. The history engine stores State snapshots, so nothing in
// this package mutates a State in place; every helper returns a new value.
//
// Partial updates are expressed as patch types whose fields are pointers. Applying a
// patch changes only the fields that are set:
//
//	hue := 200.0
//	s.Glow = effect.GlowPatch{Hue: &hue}.Apply(s.Glow)
//
// The JSON form uses the field names of the web editor's saved state, so exported
// documents can be exchanged with it.
package effect
