package hwy

import "math"

// Predicate selects the relation tested by Compare. The names and semantics
// follow the AVX _CMP_* immediates: ordered (_OQ, _Q) predicates are false
// when either operand is NaN, unordered (_UQ) predicates are true.
type Predicate uint8

const (
	CmpEQ_OQ   Predicate = iota // a == b, false on NaN
	CmpLT_OQ                    // a < b, false on NaN
	CmpLE_OQ                    // a <= b, false on NaN
	CmpGT_OQ                    // a > b, false on NaN
	CmpGE_OQ                    // a >= b, false on NaN
	CmpNEQ_UQ                   // !(a == b), true on NaN
	CmpNLT_UQ                   // !(a < b), true on NaN
	CmpNLE_UQ                   // !(a <= b), true on NaN
	CmpNGT_UQ                   // !(a > b), true on NaN
	CmpNGE_UQ                   // !(a >= b), true on NaN
	CmpUNORD_Q                  // either operand is NaN
	CmpORD_Q                    // neither operand is NaN
)

var predicateNames = [...]string{
	CmpEQ_OQ:   "EQ_OQ",
	CmpLT_OQ:   "LT_OQ",
	CmpLE_OQ:   "LE_OQ",
	CmpGT_OQ:   "GT_OQ",
	CmpGE_OQ:   "GE_OQ",
	CmpNEQ_UQ:  "NEQ_UQ",
	CmpNLT_UQ:  "NLT_UQ",
	CmpNLE_UQ:  "NLE_UQ",
	CmpNGT_UQ:  "NGT_UQ",
	CmpNGE_UQ:  "NGE_UQ",
	CmpUNORD_Q: "UNORD_Q",
	CmpORD_Q:   "ORD_Q",
}

// String returns the AVX-style name of the predicate.
func (p Predicate) String() string {
	if int(p) < len(predicateNames) {
		return predicateNames[p]
	}
	return "unknown"
}

// Unordered reports whether p evaluates to true when an operand is NaN.
func (p Predicate) Unordered() bool {
	switch p {
	case CmpNEQ_UQ, CmpNLT_UQ, CmpNLE_UQ, CmpNGT_UQ, CmpNGE_UQ, CmpUNORD_Q:
		return true
	}
	return false
}

func (p Predicate) eval(a, b float64) bool {
	// Go's float comparisons are already IEEE ordered comparisons, and their
	// negations are the unordered complements.
	switch p {
	case CmpEQ_OQ:
		return a == b
	case CmpLT_OQ:
		return a < b
	case CmpLE_OQ:
		return a <= b
	case CmpGT_OQ:
		return a > b
	case CmpGE_OQ:
		return a >= b
	case CmpNEQ_UQ:
		return !(a == b)
	case CmpNLT_UQ:
		return !(a < b)
	case CmpNLE_UQ:
		return !(a <= b)
	case CmpNGT_UQ:
		return !(a > b)
	case CmpNGE_UQ:
		return !(a >= b)
	case CmpUNORD_Q:
		return math.IsNaN(a) || math.IsNaN(b)
	case CmpORD_Q:
		return !math.IsNaN(a) && !math.IsNaN(b)
	}
	panic("hwy: invalid predicate " + p.String())
}

// Compare tests v against o lane-wise and returns the mask of lanes for which
// the predicate holds.
func (v Float32x8) Compare(o Float32x8, p Predicate) Mask32x8 {
	var m Mask32x8
	for i := range m.bits {
		a := float64(math.Float32frombits(v.bits[i]))
		b := float64(math.Float32frombits(o.bits[i]))
		m.bits[i] = maskBit32(p.eval(a, b))
	}
	return m
}

// Greater is shorthand for Compare(o, CmpGT_OQ).
func (v Float32x8) Greater(o Float32x8) Mask32x8 { return v.Compare(o, CmpGT_OQ) }

// GreaterEqual is shorthand for Compare(o, CmpGE_OQ).
func (v Float32x8) GreaterEqual(o Float32x8) Mask32x8 { return v.Compare(o, CmpGE_OQ) }

// Less is shorthand for Compare(o, CmpLT_OQ).
func (v Float32x8) Less(o Float32x8) Mask32x8 { return v.Compare(o, CmpLT_OQ) }

// Equal is shorthand for Compare(o, CmpEQ_OQ).
func (v Float32x8) Equal(o Float32x8) Mask32x8 { return v.Compare(o, CmpEQ_OQ) }

// IsNaN returns the mask of NaN lanes.
func (v Float32x8) IsNaN() Mask32x8 { return v.Compare(v, CmpUNORD_Q) }

// Compare tests v against o lane-wise and returns the mask of lanes for which
// the predicate holds.
func (v Float64x4) Compare(o Float64x4, p Predicate) Mask64x4 {
	var m Mask64x4
	for i := range m.bits {
		a := math.Float64frombits(v.bits[i])
		b := math.Float64frombits(o.bits[i])
		m.bits[i] = maskBit64(p.eval(a, b))
	}
	return m
}
