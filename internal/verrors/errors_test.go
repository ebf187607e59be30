package verrors

import (
	"errors"
	"testing"
)

func TestVRFErrorError(t *testing.T) {
	tests := []struct {
		name string
		err  *VRFError
		want string
	}{
		{
			name: "error without underlying error",
			err:  New(CodeInvalidSecretKey, "test message"),
			want: "[INVALID_SECRET_KEY] test message",
		},
		{
			name: "error with underlying error",
			err:  Wrap(CodeHashToCurve, "test message", errors.New("underlying")),
			want: "[HASH_TO_CURVE] test message: underlying",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestVRFErrorUnwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := Wrap(CodeSerialization, "test", underlying)

	if got := err.Unwrap(); got != underlying {
		t.Errorf("Unwrap() = %v, want %v", got, underlying)
	}
	if !errors.Is(err, underlying) {
		t.Errorf("errors.Is should find the wrapped cause")
	}
}

func TestHashToCurveError(t *testing.T) {
	underlying := errors.New("zeta is not a non-residue")
	err := HashToCurveError(underlying)

	if err.Code != CodeHashToCurve {
		t.Errorf("Code = %v, want %v", err.Code, CodeHashToCurve)
	}
	if err.Err != underlying {
		t.Errorf("Err = %v, want %v", err.Err, underlying)
	}
}

func TestProofVerificationError(t *testing.T) {
	err := ProofVerificationError()
	if err.Code != CodeProofVerification {
		t.Errorf("Code = %v, want %v", err.Code, CodeProofVerification)
	}
}

func TestInvalidSecretKeyError(t *testing.T) {
	err := InvalidSecretKeyError()
	if err.Code != CodeInvalidSecretKey {
		t.Errorf("Code = %v, want %v", err.Code, CodeInvalidSecretKey)
	}
}

func TestSerializationError(t *testing.T) {
	underlying := errors.New("bad decimal literal")
	err := SerializationError(underlying)
	if err.Code != CodeSerialization {
		t.Errorf("Code = %v, want %v", err.Code, CodeSerialization)
	}
}

func TestIsVRFError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"vrf error", ProofVerificationError(), true},
		{"standard error", errors.New("standard error"), false},
		{"nil error", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsVRFError(tt.err); got != tt.want {
				t.Errorf("IsVRFError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCodeSpecificPredicates(t *testing.T) {
	if !IsHashToCurveError(HashToCurveError(nil)) {
		t.Errorf("IsHashToCurveError should recognize a HashToCurveError")
	}
	if !IsProofVerificationError(ProofVerificationError()) {
		t.Errorf("IsProofVerificationError should recognize a ProofVerificationError")
	}
	if !IsInvalidSecretKeyError(InvalidSecretKeyError()) {
		t.Errorf("IsInvalidSecretKeyError should recognize an InvalidSecretKeyError")
	}
	if !IsSerializationError(SerializationError(nil)) {
		t.Errorf("IsSerializationError should recognize a SerializationError")
	}
	if IsHashToCurveError(ProofVerificationError()) {
		t.Errorf("IsHashToCurveError should reject a different code")
	}
}

func TestCodeOfPlainErrorReturnsEmpty(t *testing.T) {
	if got := CodeOf(errors.New("plain")); got != "" {
		t.Errorf("CodeOf(plain error) = %v, want empty", got)
	}
}
