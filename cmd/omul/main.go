package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/sbl8/cayley/kernels"
)

func main() {
	if err := run(os.Stdout); err != nil {
		log.Fatalf("octonion multiplication failed: %v", err)
	}
}

func run(w io.Writer) error {
	a := []float64{0, 0, 0, 2, 2, 1, 4, 0}
	b := []float64{4, 2, 4, 3, 1, 2, 2, 0}

	result, err := kernels.Apply(kernels.OpOctonionMul, b, a)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "omult(b, a): %v\n", result)
	return err
}
