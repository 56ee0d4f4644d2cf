package exercise

import (
	"fmt"
	"io"
	"strings"

	"github.com/seanhalberthal/decomment/internal/filter"
)

// stateSample is C++-like text exercising every filter state.
const stateSample = "//########################################################################\n" +
	"//########################################################################\n" +
	"// A comment.  /* A nested comment */\n" +
	"\n" +
	"void State_Exercise() // An exercise in state machines\n" +
	"{\n" +
	"    char character = '\\\"';\n" +
	"    std::cout << std::endl;\n" +
	"    std::cout << \"\\\"State\\\" /*Exercise*/\" << std::endl;\n" +
	"\n" +
	"    StateContext_Class filterContext;\n" +
	"\n" +
	"    std::cout << \"\\t\\tDone. //(No, really)//\" << std::endl;\n" +
	"}"

// stateExercise filters stateSample, showing each transition the
// machine makes along the way.
func stateExercise(w io.Writer) error {
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, "State Exercise")

	_, _ = fmt.Fprintln(w, "  Text to filter:")
	displayText(w, stateSample)

	_, _ = fmt.Fprintln(w, "  Filtering text...")
	f := filter.New(filter.WithTracer(func(from, to filter.State) {
		_, _ = fmt.Fprintf(w, "    --> State Transition: %s -> %s\n", from, to)
	}))
	filtered := f.RemoveComments(stateSample)

	_, _ = fmt.Fprintln(w, "  Filtered text:")
	displayText(w, filtered)

	_, _ = fmt.Fprintln(w, "  Done.")
	return nil
}

// displayText writes text with line numbers.
func displayText(w io.Writer, text string) {
	for i, line := range strings.Split(text, "\n") {
		_, _ = fmt.Fprintf(w, "    %2d) %s\n", i+1, line)
	}
}
