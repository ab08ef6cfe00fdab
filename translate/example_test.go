package translate_test

import (
	"fmt"
	"strings"

	"github.com/benvansleen/almanac/translate"
)

// ExampleGraph_Chain compiles the walk from the root category and
// resolves one value through it.
func ExampleGraph_Chain() {
	g, err := translate.Parse(`seed-to-soil map:
50 98 2
52 50 48

soil-to-fertilizer map:
0 15 37
37 52 2
39 0 15`)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	c, err := g.Chain(translate.Root)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(strings.Join(c.Stages(), " -> "))
	fmt.Println(c.Resolve(14), c.Resolve(79))

	// Output:
	// seed -> soil -> fertilizer
	// 53 81
}
