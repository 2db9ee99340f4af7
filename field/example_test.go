package field_test

import (
	"fmt"

	"github.com/optimtab/lintab/field"
)

// ExampleBigM demonstrates why the penalty component dominates
// comparisons: one unit of M outweighs a million.
func ExampleBigM() {
	penalized := field.M(field.RatFromInt(-1000000), field.RatFromInt(1))
	finite := field.BigMFromInt(1000000)

	fmt.Println(penalized)
	fmt.Println(penalized.Cmp(finite) > 0)
	// Output:
	// -1000000 + 1M
	// true
}

// ExampleParseRat shows that decimal literals stay exact.
func ExampleParseRat() {
	r, _ := field.ParseRat("5.2")
	fmt.Println(r)
	// Output: 26/5
}
