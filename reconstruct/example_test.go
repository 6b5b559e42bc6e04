package reconstruct_test

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/polyrec/reconstruct"
)

// ExampleReconstruct recovers the secret from a full share document:
// four shares of f(x) = x² + 3 in mixed bases, any three sufficient.
func ExampleReconstruct() {
	raw := []byte(`{
		"keys": {"n": 4, "k": 3},
		"1": {"base": "10", "value": "4"},
		"2": {"base": "2",  "value": "111"},
		"3": {"base": "10", "value": "12"},
		"6": {"base": "4",  "value": "213"}
	}`)

	doc, err := reconstruct.ParseDocument(raw)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	points, err := doc.Points()
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	res, err := reconstruct.Reconstruct(points)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	secret, ok := res.Secret()
	fmt.Println("secret:", secret, "integer:", ok)
	// Output:
	// secret: 3 integer: true
}

// ExampleResult_Secret shows the fractional warning path: the points lie on
// f(x) = (x² + 1)/2, so the constant term is 1/2 — reported, not rounded.
func ExampleResult_Secret() {
	res, err := reconstruct.Reconstruct([]reconstruct.Point{
		{X: big.NewInt(1), Y: big.NewInt(1)},
		{X: big.NewInt(3), Y: big.NewInt(5)},
		{X: big.NewInt(5), Y: big.NewInt(13)},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	if _, ok := res.Secret(); !ok {
		fmt.Println("non-integer constant term:", res.Constant())
	}
	// Output:
	// non-integer constant term: 1/2
}
