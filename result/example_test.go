package result_test

import (
	"fmt"

	"github.com/partite-ai/obcgo/result"
)

type parseError string

func parsePort(s string) result.Result[int, parseError] {
	var port int
	if _, err := fmt.Sscanf(s, "%d", &port); err != nil || port < 1 || port > 65535 {
		return result.Err[int](parseError("not a port: " + s))
	}
	return result.Ok[parseError](port)
}

func ExampleResult_unwrapOrElse() {
	port := parsePort("8080").UnwrapOrElse(func(parseError) int { return 80 })
	fallback := parsePort("eighty").UnwrapOrElse(func(parseError) int { return 80 })

	fmt.Println(port)
	fmt.Println(fallback)
	// Output:
	// 8080
	// 80
}

func ExampleResult_commaOk() {
	r := parsePort("123456")
	if e, failed := r.Err(); failed {
		fmt.Println(e)
	}
	// Output:
	// not a port: 123456
}
