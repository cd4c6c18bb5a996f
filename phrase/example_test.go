package phrase_test

import (
	"fmt"

	"github.com/katalvlaran/pichance/phrase"
)

func ExampleEncode() {
	zero, _ := phrase.Encode("Hello", phrase.ZeroBased)
	one, _ := phrase.Encode("Hello", phrase.OneBased)
	fmt.Println(zero)
	fmt.Println(one)
	// Output:
	// 0704111114
	// 0805121215
}

func ExampleDecode() {
	fmt.Println(phrase.Decode("0704111114", phrase.ZeroBased))
	fmt.Println(phrase.Decode("07991", phrase.ZeroBased))
	// Output:
	// HELLO
	// H99B
}
