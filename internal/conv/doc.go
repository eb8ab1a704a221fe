// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent overflow when
// converting between Go's int and the fixed-width header fields the codec
// layers emit. For conversions that are provably safe by domain
// constraints, use direct casts instead.
package conv
