package qrcode_test

import (
	"fmt"

	"github.com/matzehuels/qrgrid/pkg/qrcode"
	"github.com/matzehuels/qrgrid/pkg/style"
)

func ExampleNew() {
	code := qrcode.New(2, []bool{true, false, true, true})
	tree := code.Render()

	for _, row := range tree.Rows() {
		for _, cell := range row {
			if cell.Style.Background.IsSet() {
				fmt.Print("#")
			} else {
				fmt.Print(".")
			}
		}
		fmt.Println()
	}
	// Output:
	// #.
	// ##
}

func ExampleQRCode_RefineDotStyle() {
	code := qrcode.New(1, []bool{true}).
		RefineDotStyle(style.Refinement{Background: style.Some(style.Red)})

	bg, _ := code.Render().Children[0].Style.Background.Get()
	fmt.Println(bg.Hex())
	// Output: #ff0000
}
