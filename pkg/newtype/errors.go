// SPDX-License-Identifier: MPL-2.0

package newtype

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingRequirement is returned when the underlying type of a
	// newtype does not support an operation its tag requests.
	ErrMissingRequirement = errors.New("underlying type does not meet capability requirement")

	// ErrAmbiguousCapability is returned when a tag reaches the same
	// capability marker through more than one embedding path at the same
	// depth. Go drops the promoted marker method in that case, so the
	// capability would silently be missing.
	ErrAmbiguousCapability = errors.New("ambiguous capability marker")

	// ErrInvalidCapability is returned for unknown capability names.
	ErrInvalidCapability = errors.New("invalid capability")

	// ErrTrailingInput is returned by Parse when non-space input follows the
	// value.
	ErrTrailingInput = errors.New("unexpected input after value")
)

type (
	// MissingRequirementError reports a capability whose requirement the
	// underlying type does not meet.
	MissingRequirementError struct {
		Capability  Capability
		Underlying  string
		Requirement string
	}

	// AmbiguousCapabilityError reports a marker embedded ambiguously.
	AmbiguousCapabilityError struct {
		Capability Capability
		Tag        string
		Paths      []string
	}

	// InvalidCapabilityError is returned when a capability name or value
	// does not name a known leaf capability.
	InvalidCapabilityError struct {
		Value string
	}
)

// Error implements the error interface.
func (e *MissingRequirementError) Error() string {
	return fmt.Sprintf("capability %s requires %s, but %s does not provide it",
		e.Capability, e.Requirement, e.Underlying)
}

// Unwrap returns ErrMissingRequirement for errors.Is() compatibility.
func (e *MissingRequirementError) Unwrap() error { return ErrMissingRequirement }

// Error implements the error interface.
func (e *AmbiguousCapabilityError) Error() string {
	return fmt.Sprintf("tag %s embeds %s ambiguously via %s",
		e.Tag, e.Capability.Marker(), strings.Join(e.Paths, " and "))
}

// Unwrap returns ErrAmbiguousCapability for errors.Is() compatibility.
func (e *AmbiguousCapabilityError) Unwrap() error { return ErrAmbiguousCapability }

// Error implements the error interface.
func (e *InvalidCapabilityError) Error() string {
	return fmt.Sprintf("invalid capability %q (known: %s; bundles: %s)",
		e.Value, capabilityNames(), strings.Join(BundleNames(), ", "))
}

// Unwrap returns ErrInvalidCapability for errors.Is() compatibility.
func (e *InvalidCapabilityError) Unwrap() error { return ErrInvalidCapability }

func capabilityNames() string {
	names := make([]string, 0, capabilityCount)
	for _, c := range KnownCapabilities() {
		names = append(names, c.String())
	}
	return strings.Join(names, ", ")
}
