package placement_test

import (
	"fmt"

	"github.com/matzehuels/iconpress/pkg/placement"
)

func ExampleResolve() {
	r, _ := placement.Resolve(32, 32, 64, placement.AlignAuto, 2)
	fmt.Printf("%+v\n", r)

	r, _ = placement.Resolve(16, 16, 64, placement.AlignBottomRight, 1)
	fmt.Printf("%+v\n", r)
	// Output:
	// {X:0 Y:0 W:64 H:64}
	// {X:48 Y:48 W:16 H:16}
}
