// Package colormath converts between hexadecimal sRGB colors and OKLCH.
//
// OKLCH is the polar form of the OKLab perceptual color space: Lightness L in [0,1],
// Chroma C >= 0 and Hue H in degrees [0,360). The conversions use the published
// OKLab matrices so that hex -> OKLCH -> hex reproduces in-gamut colors within one
// step per channel.
//
// Out-of-gamut OKLCH values (high chroma at extreme lightness, for example) are clamped
// channel by channel after the inverse transform. Malformed hex input yields the zero
// LCH value instead of an error, because color text fields are edited a character at
// a time and often hold an incomplete value.
package colormath
