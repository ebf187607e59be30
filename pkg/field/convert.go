package field

// BaseFieldFromScalarField reinterprets a scalar's canonical integer
// representative as an Fq element, reducing mod q. Since r < q, this is
// the same construction arkworks' `Curve::BaseField::from(base_sk.into())`
// performs when folding a secret key into the base field for the nonce's
// map-to-curve step.
func BaseFieldFromScalarField(s ScalarField) BaseField {
	return NewBaseFieldFromBigInt(s.BigInt())
}
