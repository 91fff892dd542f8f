package puzzle

import (
	"math/bits"
	"strconv"
	"strings"
)

// allDigits has bits 1 through 9 set.
const allDigits uint16 = 0x3FE

// Candidates is the set of digits still possible for a cell, held as a
// 9-bit mask with digit d at bit d. Membership, removal and cardinality
// are all constant-time bit operations.
type Candidates uint16

// AllCandidates returns the full set {1..9}.
func AllCandidates() Candidates {
	return Candidates(allDigits)
}

// SoleCandidate returns the singleton set {d}.
func SoleCandidate(d int) Candidates {
	return Candidates(1 << uint(d))
}

// Contains reports whether d is still possible.
func (c Candidates) Contains(d int) bool {
	return c&(1<<uint(d)) != 0
}

// Remove deletes d from the set. Removing an absent digit is a no-op.
func (c *Candidates) Remove(d int) {
	*c &^= 1 << uint(d)
}

// Count returns the number of digits in the set.
func (c Candidates) Count() int {
	return bits.OnesCount16(uint16(c))
}

// Sole returns the single remaining digit. It is only meaningful when
// Count() == 1; ok is false otherwise.
func (c Candidates) Sole() (int, bool) {
	if c.Count() != 1 {
		return 0, false
	}
	return bits.TrailingZeros16(uint16(c)), true
}

// Digits returns the members of the set in ascending order.
func (c Candidates) Digits() []int {
	ds := make([]int, 0, c.Count())
	for d := 1; d <= 9; d++ {
		if c.Contains(d) {
			ds = append(ds, d)
		}
	}
	return ds
}

func (c Candidates) String() string {
	ds := c.Digits()
	s := make([]string, len(ds))
	for i, d := range ds {
		s[i] = strconv.Itoa(d)
	}
	return "{" + strings.Join(s, ", ") + "}"
}
