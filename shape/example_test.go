package shape_test

import (
	"fmt"

	"github.com/jonwraymond/utilops/shape"
)

func ExampleShape_Describe() {
	shapes := []shape.Shape{
		shape.NewCircle(2.5),
		shape.NewRectangle(3, 4),
	}

	for _, s := range shapes {
		fmt.Println(s.Describe())
	}
	// Output:
	// Circle(radius=2.5)
	// Rectangle(3x4)
}

func ExampleShape_Area() {
	r := shape.NewRectangle(3, 4)
	fmt.Println(r.Kind(), r.Area())
	// Output:
	// rectangle 12
}
