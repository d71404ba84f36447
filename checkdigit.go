package pac

import "strings"

// Alphabet is the 32-symbol set used by geohashes and check digits: the ten
// digits followed by the upper-case letters without A, I, L and O.
const Alphabet = "0123456789BCDEFGHJKMNPQRSTUVWXYZ"

const radix = len(Alphabet)

// symbolValue returns the index of c in Alphabet, or -1.
func symbolValue(c byte) int {
	return strings.IndexByte(Alphabet, c)
}

// isAlphabet reports whether every byte of s is an Alphabet symbol.
func isAlphabet(s string) bool {
	for i := 0; i < len(s); i++ {
		if symbolValue(s[i]) < 0 {
			return false
		}
	}
	return true
}

// checkDigit computes a Luhn-style check symbol over hash in base 32.
//
// Walking from the rightmost symbol, every second value is doubled and a
// doubled value of 32 or more folds to value/32 + value%32. The check symbol
// brings the total up to a multiple of 32. hash must only contain Alphabet
// symbols.
func checkDigit(hash string) byte {
	sum := 0
	double := false
	for i := len(hash) - 1; i >= 0; i-- {
		digit := symbolValue(hash[i])
		if double {
			digit *= 2
			if digit >= radix {
				digit = digit/radix + digit%radix
			}
		}
		sum += digit
		double = !double
	}
	return Alphabet[(radix-sum%radix)%radix]
}
