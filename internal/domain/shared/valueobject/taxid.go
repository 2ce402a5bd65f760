package valueobject

// taxIDWeights are the per-digit multipliers of the unified business number checksum
var taxIDWeights = [8]int{1, 2, 1, 2, 1, 2, 4, 1}

// ValidTaxID reports whether s is a well-formed 8-digit unified business number
// (統一編號). The digit sum of the weighted products must be divisible by 5.
// When the seventh digit is 7 its product (28) may count as either 1 or 0.
func ValidTaxID(s string) bool {
	if len(s) != 8 {
		return false
	}
	sum := 0
	for i := 0; i < 8; i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return false
		}
		p := int(c-'0') * taxIDWeights[i]
		for p >= 10 {
			p = p/10 + p%10
		}
		sum += p
	}
	if sum%5 == 0 {
		return true
	}
	return s[6] == '7' && (sum-1)%5 == 0
}
