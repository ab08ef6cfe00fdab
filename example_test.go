package almanac_test

import (
	"context"
	"fmt"
	"os"

	"github.com/benvansleen/almanac"
	"github.com/benvansleen/almanac/domain"
)

// ExampleLowestLocation evaluates the reference almanac in both forms.
func ExampleLowestLocation() {
	f, err := os.Open("testdata/sample.txt")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	defer f.Close()

	a, err := almanac.Parse(f)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, form := range []domain.Form{domain.List, domain.Ranges} {
		lowest, err := almanac.LowestLocation(context.Background(), a, form)
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Println(form, lowest)
	}

	// Output:
	// list 35
	// ranges 46
}
