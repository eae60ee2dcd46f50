// Package convert converts values among binary, decimal and Gray-code
// representations and explains each conversion step by step.
//
// Digit strings are most-significant-bit first everywhere. The step lines are
// shown verbatim to users, so their wording is part of the package contract.
package convert

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// maxBits is the widest value BinaryToDecimal and DecimalToBinary accept.
const maxBits = 64

// Convert validates the request and dispatches it to the matching conversion.
// The empty-value check runs before the kind is looked at.
func Convert(req Request) (Result, error) {
	if req.Value == "" {
		return Result{}, &InputError{Kind: req.Kind, Err: ErrEmptyInput}
	}

	switch req.Kind {
	case BinToDec:
		return BinaryToDecimal(req.Value)
	case DecToBin:
		return DecimalToBinary(req.Value)
	case BinToGray:
		return BinaryToGray(req.Value)
	case GrayToBin:
		return GrayToBinary(req.Value)
	default:
		return Result{}, &InputError{Kind: req.Kind, Value: req.Value, Err: ErrUnknownKind}
	}
}

// Validate checks value against the alphabet of kind without converting it.
func Validate(kind Kind, value string) error {
	if value == "" {
		return &InputError{Kind: kind, Err: ErrEmptyInput}
	}
	if !kind.Valid() {
		return &InputError{Kind: kind, Value: value, Err: ErrUnknownKind}
	}

	valid := isBinary
	if kind.decimalInput() {
		valid = isDecimal
	}
	if !valid(value) {
		return &InputError{Kind: kind, Value: value, Err: ErrInvalidInput}
	}
	return nil
}

// BinaryToDecimal interprets s as an unsigned base-2 number.
func BinaryToDecimal(s string) (Result, error) {
	if err := Validate(BinToDec, s); err != nil {
		return Result{}, err
	}
	if len(strings.TrimLeft(s, "0")) > maxBits {
		return Result{}, &InputError{Kind: BinToDec, Value: s, Err: ErrOutOfRange}
	}

	var (
		sum   uint64
		terms []string
	)
	for pos := 0; pos < len(s); pos++ {
		if s[len(s)-1-pos] != '1' {
			continue
		}
		term := uint64(1) << pos
		terms = append(terms, fmt.Sprintf("2^%d = %d", pos, term))
		sum += term
	}

	value := strconv.FormatUint(sum, 10)
	return Result{
		Value: value,
		Steps: []string{
			"Received Binary Input: " + s,
			"Formula: Sum of (digit × 2^position)",
			fmt.Sprintf("Summing active bits: %s = %s", strings.Join(terms, " + "), value),
			"Result: " + value,
		},
	}, nil
}

// DecimalToBinary converts the base-10 digits in s to a binary digit string
// by successive division by two.
func DecimalToBinary(s string) (Result, error) {
	if err := Validate(DecToBin, s); err != nil {
		return Result{}, err
	}
	n, err := strconv.ParseUint(s, 10, maxBits)
	if err != nil {
		return Result{}, &InputError{Kind: DecToBin, Value: s, Err: ErrOutOfRange}
	}

	steps := []string{
		"Received Decimal Input: " + s,
		"Method: Successive Division by 2",
	}

	// Zero never enters the division loop, so it gets its one trivial step here.
	if n == 0 {
		steps = append(steps, "0 / 2 = 0, Remainder = 0", "Result: 0")
		return Result{Value: "0", Steps: steps}, nil
	}

	var bits []byte
	for q := n; q > 0; q /= 2 {
		steps = append(steps, fmt.Sprintf("%d ÷ 2 = %d, Remainder = %d", q, q/2, q%2))
		bits = append(bits, byte('0'+q%2))
	}
	slices.Reverse(bits)

	value := string(bits)
	steps = append(steps, "Read remainders from bottom to top.", "Result: "+value)
	return Result{Value: value, Steps: steps}, nil
}

// BinaryToGray computes s XOR (s >> 1) digit by digit. The result keeps the
// width of s.
func BinaryToGray(s string) (Result, error) {
	if err := Validate(BinToGray, s); err != nil {
		return Result{}, err
	}

	shifted := "0" + s[:len(s)-1]
	gray := make([]byte, len(s))
	xors := make([]string, len(s))
	for i := range len(s) {
		b, sh := s[i]-'0', shifted[i]-'0'
		gray[i] = '0' + (b ^ sh)
		xors[i] = fmt.Sprintf("%d ⊕ %d = %d", b, sh, b^sh)
	}

	value := string(gray)
	return Result{
		Value: value,
		Steps: []string{
			"Received Binary Input: " + s,
			"Formula: Gray = Binary ⊕ (Binary >> 1) (Right shift and XOR)",
			"Original:   " + s,
			"Shifted:    " + shifted + " (Shift right by 1)",
			"Perform XOR bit by bit:",
			strings.Join(xors, " | "),
			"Result: " + value,
		},
	}, nil
}

// GrayToBinary decodes the Gray code s with a running XOR from the most
// significant digit down.
func GrayToBinary(s string) (Result, error) {
	if err := Validate(GrayToBin, s); err != nil {
		return Result{}, err
	}

	out := make([]byte, len(s))
	out[0] = s[0]
	prev := s[0] - '0'

	steps := []string{
		"Received Gray Code Input: " + s,
		"Method: Iterative XOR",
		fmt.Sprintf("MSB stays same: %c -> %c", s[0], s[0]),
		fmt.Sprintf("B0 = %d", prev),
	}
	for i := 1; i < len(s); i++ {
		g := s[i] - '0'
		b := prev ^ g
		steps = append(steps, fmt.Sprintf("B%d = B%d(%d) ⊕ G%d(%d) = %d", i, i-1, prev, i, g, b))
		out[i] = '0' + b
		prev = b
	}

	value := string(out)
	steps = append(steps, "Result: "+value)
	return Result{Value: value, Steps: steps}, nil
}

func isBinary(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '0' && s[i] != '1' {
			return false
		}
	}
	return true
}

func isDecimal(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
