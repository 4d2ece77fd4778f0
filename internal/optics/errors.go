package optics

import "errors"

// Domain errors for dispersion evaluation.
var (
	// ErrUnknownMaterial indicates a material name the registry cannot
	// resolve to a Sellmeier model.
	ErrUnknownMaterial = errors.New("optics: material has no dispersion model")

	// ErrInvalidPulse indicates a non-positive input pulse duration.
	ErrInvalidPulse = errors.New("optics: input pulse duration must be positive")

	// ErrSellmeierPole indicates a probe wavelength sitting on (or
	// numerically indistinguishable from) a pole of the Sellmeier model.
	ErrSellmeierPole = errors.New("optics: wavelength at a Sellmeier pole")

	// ErrEmptyStack indicates an evaluation request with no elements.
	ErrEmptyStack = errors.New("optics: stack has no elements")
)
