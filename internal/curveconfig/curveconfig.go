// Package curveconfig parses and verifies the curve constants the ECVRF
// engine is built against. The constants are fixed at compile time in
// pkg/curve and pkg/field (spec §6, Design Notes §9). A deployment may name
// a YAML override file, following the teacher's env-fallback
// config-loading idiom (infrastructure/config.GetEnv) minus its
// Marble/TEE-secret branch, which has no counterpart in this module.
// ecvrf.New loads and verifies that file on every construction and rejects
// any override that differs from the compiled-in parameters; an alternate
// curve is not supported.
package curveconfig

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/stark-vrf/ecvrf-go/pkg/curve"
	"github.com/stark-vrf/ecvrf-go/pkg/field"
)

// EnvConfigPath is the environment variable naming an optional YAML
// override file. When unset, Load returns the compiled-in defaults.
const EnvConfigPath = "ECVRF_CURVE_CONFIG"

// Params is the decimal-string view of the curve's fixed parameters,
// matching the YAML override file's shape and spec §6's wire
// representation.
type Params struct {
	BaseModulus   string `yaml:"base_modulus"`
	ScalarModulus string `yaml:"scalar_modulus"`
	A             string `yaml:"a"`
	B             string `yaml:"b"`
	Gx            string `yaml:"gx"`
	Gy            string `yaml:"gy"`
	Zeta          string `yaml:"zeta"`
}

// DefaultParams returns the compiled-in STARK curve parameters.
func DefaultParams() Params {
	return Params{
		BaseModulus:   field.BaseFieldModulusDecimal,
		ScalarModulus: field.ScalarFieldModulusDecimal,
		A:             curve.ADecimal,
		B:             curve.BDecimal,
		Gx:            curve.GxDecimal,
		Gy:            curve.GyDecimal,
		Zeta:          curve.ZetaDecimal,
	}
}

// GetEnv retrieves an environment variable with a default, following the
// teacher's infrastructure/config.GetEnv convention.
func GetEnv(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

// Load reads ECVRF_CURVE_CONFIG (if set) and parses it as a YAML Params
// override; otherwise returns DefaultParams(). It does not verify the
// result — callers needing assurance that a loaded override is a valid
// curve should call Verify.
func Load() (Params, error) {
	path := GetEnv(EnvConfigPath, "")
	if path == "" {
		return DefaultParams(), nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Params{}, fmt.Errorf("curveconfig: reading %s: %w", path, err)
	}

	params := DefaultParams()
	if err := yaml.Unmarshal(raw, &params); err != nil {
		return Params{}, fmt.Errorf("curveconfig: parsing %s: %w", path, err)
	}
	return params, nil
}

// Verify checks that p describes a consistent curve: G is on the curve
// and zeta is a non-residue in Fq, following the startup check Design
// Notes §9 requires for the compiled-in defaults. It reports an error
// rather than panicking, since a bad override is an operator mistake, not
// a programming error.
func Verify(p Params) error {
	base, err := field.NewBaseFieldFromDecimal(p.BaseModulus)
	if err != nil {
		return fmt.Errorf("curveconfig: invalid base modulus: %w", err)
	}
	_ = base // the modulus itself has no further shape to check here

	gx, err := field.NewBaseFieldFromDecimal(p.Gx)
	if err != nil {
		return fmt.Errorf("curveconfig: invalid Gx: %w", err)
	}
	gy, err := field.NewBaseFieldFromDecimal(p.Gy)
	if err != nil {
		return fmt.Errorf("curveconfig: invalid Gy: %w", err)
	}
	a, err := field.NewBaseFieldFromDecimal(p.A)
	if err != nil {
		return fmt.Errorf("curveconfig: invalid A: %w", err)
	}
	b, err := field.NewBaseFieldFromDecimal(p.B)
	if err != nil {
		return fmt.Errorf("curveconfig: invalid B: %w", err)
	}
	zeta, err := field.NewBaseFieldFromDecimal(p.Zeta)
	if err != nil {
		return fmt.Errorf("curveconfig: invalid zeta: %w", err)
	}

	lhs := gy.Square()
	rhs := gx.Square().Mul(gx).Add(a.Mul(gx)).Add(b)
	if !lhs.Equal(rhs) {
		return fmt.Errorf("curveconfig: generator (Gx, Gy) does not satisfy y^2 = x^3 + A*x + B")
	}
	if zeta.Legendre() != field.NonResidue {
		return fmt.Errorf("curveconfig: zeta must be a non-residue in Fq")
	}
	return nil
}
