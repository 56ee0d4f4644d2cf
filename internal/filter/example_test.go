package filter_test

import (
	"fmt"

	"github.com/seanhalberthal/decomment/internal/filter"
)

func ExampleRemoveComments() {
	src := "x = \"http://a\";// address\ny = 2;/* two */"
	fmt.Println(filter.RemoveComments(src))
	// Output:
	// x = "http://a";
	// y = 2;
}

func ExampleWithTracer() {
	f := filter.New(filter.WithTracer(func(from, to filter.State) {
		fmt.Printf("%s -> %s\n", from, to)
	}))
	fmt.Printf("%q\n", f.RemoveComments("a//b"))
	// Output:
	// Initial -> NormalText
	// NormalText -> StartComment
	// StartComment -> LineComment
	// LineComment -> Done
	// "a"
}
