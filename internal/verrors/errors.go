// Package verrors provides the structured error taxonomy for the ECVRF
// engine (spec §4.5/§7): every failure maps to exactly one stable code, and
// callers can distinguish malformed input from a failed verification
// without string-matching.
package verrors

import (
	"errors"
	"fmt"
)

// Code identifies a failure kind. The set is total: every core operation's
// failure maps to exactly one of these.
type Code string

const (
	// CodeHashToCurve means hash-to-curve setup failed at instance
	// construction: the SWU mapper could not be built (a misconfigured
	// zeta), or an ECVRF_CURVE_CONFIG override was unreadable, inconsistent,
	// or different from the compiled-in curve.
	CodeHashToCurve Code = "HASH_TO_CURVE"
	// CodeProofVerification means a proof's challenge did not match the
	// recomputed challenge (c != c').
	CodeProofVerification Code = "PROOF_VERIFICATION"
	// CodeInvalidSecretKey means the caller's secret key does not
	// correspond to the instance's public key.
	CodeInvalidSecretKey Code = "INVALID_SECRET_KEY"
	// CodeSerialization means a point or field element failed to decode
	// at a boundary (wire format only; the core itself never produces
	// this from typed values).
	CodeSerialization Code = "SERIALIZATION"
)

// VRFError is a structured error carrying a stable Code and an optional
// wrapped cause, following the teacher repo's ServiceError shape minus the
// HTTP-status field, which belongs to the excluded transport adapters.
type VRFError struct {
	Code    Code
	Message string
	Err     error
}

// Error implements the error interface.
func (e *VRFError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause, enabling errors.Is/errors.As across
// this boundary.
func (e *VRFError) Unwrap() error {
	return e.Err
}

// New creates a VRFError with no wrapped cause.
func New(code Code, message string) *VRFError {
	return &VRFError{Code: code, Message: message}
}

// Wrap creates a VRFError wrapping an existing error.
func Wrap(code Code, message string, err error) *VRFError {
	return &VRFError{Code: code, Message: message, Err: err}
}

// HashToCurveError reports that the Simplified SWU map failed.
func HashToCurveError(err error) *VRFError {
	return Wrap(CodeHashToCurve, "hash-to-curve failed", err)
}

// ProofVerificationError reports that a proof's challenge does not match.
func ProofVerificationError() *VRFError {
	return New(CodeProofVerification, "challenge mismatch: proof does not verify")
}

// InvalidSecretKeyError reports that a secret key does not correspond to
// the VRF instance's public key.
func InvalidSecretKeyError() *VRFError {
	return New(CodeInvalidSecretKey, "secret key does not correspond to the instance's public key")
}

// SerializationError reports a boundary decode failure.
func SerializationError(err error) *VRFError {
	return Wrap(CodeSerialization, "failed to decode value", err)
}

// IsVRFError reports whether err carries a VRFError anywhere in its chain.
func IsVRFError(err error) bool {
	var vrfErr *VRFError
	return errors.As(err, &vrfErr)
}

// CodeOf extracts the Code of the first VRFError in err's chain, or ""
// if none is present.
func CodeOf(err error) Code {
	var vrfErr *VRFError
	if errors.As(err, &vrfErr) {
		return vrfErr.Code
	}
	return ""
}

// IsHashToCurveError reports whether err's chain contains a
// CodeHashToCurve VRFError.
func IsHashToCurveError(err error) bool {
	return CodeOf(err) == CodeHashToCurve
}

// IsProofVerificationError reports whether err's chain contains a
// CodeProofVerification VRFError.
func IsProofVerificationError(err error) bool {
	return CodeOf(err) == CodeProofVerification
}

// IsInvalidSecretKeyError reports whether err's chain contains a
// CodeInvalidSecretKey VRFError.
func IsInvalidSecretKeyError(err error) bool {
	return CodeOf(err) == CodeInvalidSecretKey
}

// IsSerializationError reports whether err's chain contains a
// CodeSerialization VRFError.
func IsSerializationError(err error) bool {
	return CodeOf(err) == CodeSerialization
}
