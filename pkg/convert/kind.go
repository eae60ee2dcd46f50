package convert

import "slices"

// Kind names one of the supported conversions. The string values are the
// wire names accepted by every front-end.
type Kind string

const (
	BinToDec  Kind = "bin2dec"
	DecToBin  Kind = "dec2bin"
	BinToGray Kind = "bin2gray"
	GrayToBin Kind = "gray2bin"
)

// KindInfo describes a conversion for display in the browser page, the CLI
// and the MCP tool listing.
type KindInfo struct {
	Kind        Kind   `json:"type" yaml:"type"`
	Label       string `json:"label" yaml:"label"`
	Hint        string `json:"hint" yaml:"hint"`               // shown next to invalid input
	Placeholder string `json:"placeholder" yaml:"placeholder"` // example input
}

var kinds = []KindInfo{
	{Kind: BinToDec, Label: "Binary → Decimal", Hint: "Only 0 and 1 allowed", Placeholder: "e.g., 1010"},
	{Kind: DecToBin, Label: "Decimal → Binary", Hint: "Only decimal digits allowed", Placeholder: "e.g., 38"},
	{Kind: BinToGray, Label: "Binary → Gray Code", Hint: "Only 0 and 1 allowed", Placeholder: "e.g., 1010"},
	{Kind: GrayToBin, Label: "Gray Code → Binary", Hint: "Only 0 and 1 allowed", Placeholder: "e.g., 1011"},
}

// Kinds returns every supported conversion in display order.
func Kinds() []KindInfo {
	return slices.Clone(kinds)
}

// ParseKind maps a wire name to its Kind.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", &InputError{Kind: k, Err: ErrUnknownKind}
	}
	return k, nil
}

// Valid reports whether k is one of the supported conversions.
func (k Kind) Valid() bool {
	_, ok := k.Info()
	return ok
}

// Info returns the display metadata for k.
func (k Kind) Info() (KindInfo, bool) {
	for _, info := range kinds {
		if info.Kind == k {
			return info, true
		}
	}
	return KindInfo{}, false
}

func (k Kind) String() string {
	return string(k)
}

// decimalInput reports whether k reads base-10 digits rather than a digit string.
func (k Kind) decimalInput() bool {
	return k == DecToBin
}
