// Package ecvrf implements the ECVRF engine itself: prove, verify,
// proof-to-hash, and nonce derivation built on pkg/field, pkg/curve,
// pkg/poseidon, and pkg/swu (spec §4.4).
package ecvrf

import (
	"context"
	"fmt"
	"time"

	"github.com/stark-vrf/ecvrf-go/internal/curveconfig"
	"github.com/stark-vrf/ecvrf-go/internal/metrics"
	"github.com/stark-vrf/ecvrf-go/internal/obslog"
	"github.com/stark-vrf/ecvrf-go/internal/verrors"
	"github.com/stark-vrf/ecvrf-go/pkg/curve"
	"github.com/stark-vrf/ecvrf-go/pkg/field"
	"github.com/stark-vrf/ecvrf-go/pkg/poseidon"
	"github.com/stark-vrf/ecvrf-go/pkg/swu"
)

// Domain-separation tags, fixed by the specification. Altering them
// silently breaks interoperability with any on-chain verifier — see
// Design Notes §9.
const (
	tagHashToCurve = 1
	tagChallenge   = 2
	tagProofToHash = 3
)

// Proof is an ECVRF proof pi = (Gamma, c, s).
type Proof struct {
	Gamma curve.Point
	C     field.ScalarField
	S     field.ScalarField
}

// String renders the proof's components in decimal for debug/log output,
// mirroring the reference CLI's human-readable proof dump.
func (p Proof) String() string {
	gx, gy, err := p.Gamma.MarshalAffine()
	if err != nil {
		return fmt.Sprintf("Proof{Gamma: <infinity>, c: %s, s: %s}", p.C, p.S)
	}
	return fmt.Sprintf("Proof{Gamma: (%s, %s), c: %s, s: %s}", gx, gy, p.C, p.S)
}

// Instance owns a public key, an SWU mapper, and a hash engine. It is
// immutable after construction and has exactly two observable states:
// constructed (usable) and poisoned-on-construction (New returns an
// error and no Instance).
type Instance struct {
	pk      curve.Point
	mapper  *swu.Mapper
	hasher  *poseidon.Hasher
	logger  *obslog.Logger
	metrics *metrics.Collector
}

// Option configures optional ambient collaborators at construction,
// following the teacher's nil-safe optional-dependency convention
// (infrastructure/logging.NewFromEnv is always safe to skip).
type Option func(*Instance)

// WithLogger attaches a structured logger for debug-level operation
// tracing. A nil Instance logger is valid; WithLogger(nil) is a no-op.
func WithLogger(logger *obslog.Logger) Option {
	return func(i *Instance) { i.logger = logger }
}

// WithMetrics attaches a Prometheus collector for operation counts and
// latencies. A nil Instance collector is valid; WithMetrics(nil) is a
// no-op.
func WithMetrics(collector *metrics.Collector) Option {
	return func(i *Instance) { i.metrics = collector }
}

// New constructs an Instance for the given public key. It fails with a
// HashToCurveError if the SWU mapper cannot be constructed (spec §4.4.6),
// or if ECVRF_CURVE_CONFIG names an override file whose curve parameters
// are internally inconsistent (curveconfig.Verify) or disagree with the
// compiled-in STARK curve this module specializes to (Design Notes §9):
// this module has no parametric field/curve backend to swap in, so an
// override that doesn't match pkg/curve's fixed constants is rejected at
// construction time rather than silently ignored.
func New(pk curve.Point, opts ...Option) (*Instance, error) {
	params, err := curveconfig.Load()
	if err != nil {
		return nil, verrors.HashToCurveError(err)
	}
	if err := curveconfig.Verify(params); err != nil {
		return nil, verrors.HashToCurveError(err)
	}
	if params != curveconfig.DefaultParams() {
		return nil, verrors.HashToCurveError(fmt.Errorf(
			"curveconfig: override parameters do not match the compiled-in STARK curve this module specializes to"))
	}

	mapper, err := swu.New()
	if err != nil {
		return nil, verrors.HashToCurveError(err)
	}

	inst := &Instance{
		pk:     pk,
		mapper: mapper,
		hasher: poseidon.New(),
	}
	for _, opt := range opts {
		opt(inst)
	}
	return inst, nil
}

// PublicKey returns the instance's public key.
func (inst *Instance) PublicKey() curve.Point {
	return inst.pk
}

// PublicKeyFromSecret computes sk*G, the public key corresponding to a
// secret scalar. Exposed as a standalone helper (not requiring an
// Instance) for callers constructing a PK before they have one, mirroring
// the original CLI's generate_public_key convenience function.
func PublicKeyFromSecret(sk field.ScalarField) curve.Point {
	return curve.G.ScalarMul(sk)
}

func (inst *Instance) observe(ctx context.Context, operation string, start time.Time, err error) {
	duration := time.Since(start)
	code := ""
	if err != nil {
		code = string(verrors.CodeOf(err))
	}
	if inst.metrics != nil {
		inst.metrics.Observe(operation, code, duration, err)
	}
	if inst.logger != nil {
		inst.logger.LogCryptoOperation(ctx, operation, err == nil, err)
	}
}

// Prove computes pi = (Gamma, c, s) for the given secret key and seed
// (spec §4.4.1). It returns InvalidSecretKeyError if sk does not
// correspond to the instance's public key.
func (inst *Instance) Prove(ctx context.Context, sk field.ScalarField, seed []field.BaseField) (Proof, error) {
	start := time.Now()
	proof, err := inst.prove(sk, seed)
	inst.observe(ctx, "prove", start, err)
	return proof, err
}

func (inst *Instance) prove(sk field.ScalarField, seed []field.BaseField) (Proof, error) {
	if !PublicKeyFromSecret(sk).Equal(inst.pk) {
		return Proof{}, verrors.InvalidSecretKeyError()
	}

	h, err := inst.hashToCurve(seed)
	if err != nil {
		return Proof{}, err
	}

	gamma := h.ScalarMul(sk)

	k, err := inst.nonce(sk, seed)
	if err != nil {
		return Proof{}, err
	}

	c, err := inst.hashPoints([]curve.Point{
		inst.pk,
		h,
		gamma,
		curve.G.ScalarMul(k),
		h.ScalarMul(k),
	})
	if err != nil {
		return Proof{}, err
	}

	s := k.Add(c.Mul(sk))
	return Proof{Gamma: gamma, C: c, S: s}, nil
}

// ProofToHash derives the VRF output beta from a proof (spec §4.4.3).
// It asserts cofactor*Gamma == Gamma as a cheap defensive check — the
// cofactor is the compile-time constant 1, so this never actually
// multiplies, but it documents the invariant the spec requires every
// produced Gamma to satisfy.
func (inst *Instance) ProofToHash(ctx context.Context, proof Proof) (field.BaseField, error) {
	start := time.Now()
	beta, err := inst.proofToHash(proof)
	inst.observe(ctx, "proof_to_hash", start, err)
	return beta, err
}

func (inst *Instance) proofToHash(proof Proof) (field.BaseField, error) {
	// Cofactor is a compile-time constant 1 (pkg/curve), so cofactor*Gamma
	// == Gamma holds for every Gamma produced by this engine without any
	// further multiplication. A generic-cofactor curve would need to clear
	// it here before hashing.
	if curve.Cofactor != 1 {
		panic("ecvrf: cofactor must be 1 for this curve")
	}

	msg := []field.BaseField{
		field.NewBaseFieldFromUint64(tagProofToHash),
		proof.Gamma.X,
		proof.Gamma.Y,
		field.BaseFieldZero,
	}
	return inst.hasher.HashToBase(msg), nil
}

// Verify checks that pi is a valid proof of seed under the instance's
// public key (spec §4.4.2).
func (inst *Instance) Verify(ctx context.Context, proof Proof, seed []field.BaseField) error {
	start := time.Now()
	err := inst.verify(proof, seed)
	inst.observe(ctx, "verify", start, err)
	return err
}

func (inst *Instance) verify(proof Proof, seed []field.BaseField) error {
	h, err := inst.hashToCurve(seed)
	if err != nil {
		return err
	}

	u := curve.G.ScalarMul(proof.S).Add(inst.pk.ScalarMul(proof.C).Negate())
	v := h.ScalarMul(proof.S).Add(proof.Gamma.ScalarMul(proof.C).Negate())

	cPrime, err := inst.hashPoints([]curve.Point{inst.pk, h, proof.Gamma, u, v})
	if err != nil {
		return err
	}

	if !proof.C.Equal(cPrime) {
		return verrors.ProofVerificationError()
	}
	return nil
}

// hashToCurve implements spec §4.4.4: H = SWU(hash_to_base([PK.x, PK.y,
// 1, seed...])). There is no trailing zero on this message, matching the
// reference implementation in original_source/rust/src/ecvrf.rs — only
// the challenge and proof-to-hash messages carry one.
func (inst *Instance) hashToCurve(seed []field.BaseField) (curve.Point, error) {
	msg := inst.hashToCurveMessage(seed)
	u := inst.hasher.HashToBase(msg)
	return inst.mapper.MapToCurve(u), nil
}

func (inst *Instance) hashToCurveMessage(seed []field.BaseField) []field.BaseField {
	msg := make([]field.BaseField, 0, 3+len(seed))
	msg = append(msg, inst.pk.X, inst.pk.Y, field.NewBaseFieldFromUint64(tagHashToCurve))
	msg = append(msg, seed...)
	return msg
}

// nonce implements RFC 8032 §5.4.2.2's ECVRF nonce generation, adapted to
// this engine's algebraic hash: the secret key is folded into Fq and
// mapped onto the curve, and that point's coordinates plus the seed are
// hashed to a scalar. Neither a domain tag nor a trailing zero appear
// here, matching the reference implementation.
func (inst *Instance) nonce(sk field.ScalarField, seed []field.BaseField) (field.ScalarField, error) {
	skPoint := inst.mapper.MapToCurve(field.BaseFieldFromScalarField(sk))

	buf := make([]field.BaseField, 0, 2+len(seed))
	buf = append(buf, skPoint.X, skPoint.Y)
	buf = append(buf, seed...)

	return inst.hasher.HashToScalar(buf), nil
}

// hashPoints implements the challenge derivation in spec §4.4.1/§4.4.2:
// tag 2, each point's (x, y), then a trailing zero. The result is
// deliberately a full Fr-width scalar, not RFC 8032's half-width
// truncation — see Design Notes §9.
func (inst *Instance) hashPoints(points []curve.Point) (field.ScalarField, error) {
	msg := make([]field.BaseField, 0, 1+2*len(points)+1)
	msg = append(msg, field.NewBaseFieldFromUint64(tagChallenge))
	for _, p := range points {
		msg = append(msg, p.X, p.Y)
	}
	msg = append(msg, field.BaseFieldZero)

	return inst.hasher.HashToScalar(msg), nil
}

// HashToSqrtRatioHint computes the auxiliary square root described in
// spec §4.3/§8 Scenario E, letting a succinct verifier check the SWU map
// without evaluating a Legendre symbol itself.
func (inst *Instance) HashToSqrtRatioHint(ctx context.Context, seed []field.BaseField) field.BaseField {
	start := time.Now()
	msg := inst.hashToCurveMessage(seed)
	u := inst.hasher.HashToBase(msg)
	hint := inst.mapper.HashToSqrtRatioHint(u)
	inst.observe(ctx, "hash_to_sqrt_ratio_hint", start, nil)
	return hint
}
