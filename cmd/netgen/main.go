// Copyright 2025 go-sortutil Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command netgen generates the compare-exchange sorting networks used for
// small slices.
//
// Usage:
//
//	netgen -max 8 -pkg sortutil -output zsortnet.go
//
// Or via go:generate:
//
//	//go:generate go run ../cmd/netgen -max 8 -pkg sortutil -output zsortnet.go
//
// The generator emits a single sortNetwork function dispatching on slice
// length, with a Bose-Nelson network inlined per size. Networks are
// verified against the 0-1 principle before anything is written.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
)

var (
	maxSize = flag.Int("max", 8, "Largest slice length to generate a network for")
	pkgName = flag.String("pkg", "sortutil", "Output package name")
	outFile = flag.String("output", "zsortnet.go", "Output file path")
)

const fileHeader = `// Copyright 2025 go-sortutil Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Code generated by netgen; DO NOT EDIT.
`

// exchange is a single compare-exchange step between positions I and J.
type exchange struct {
	I, J int
}

// boseNelson builds the Bose-Nelson sorting network for n inputs.
func boseNelson(n int) []exchange {
	var net []exchange

	var pbracket func(i, x, j, y int)
	pbracket = func(i, x, j, y int) {
		switch {
		case x == 1 && y == 1:
			net = append(net, exchange{i, j})
		case x == 1 && y == 2:
			net = append(net, exchange{i, j + 1}, exchange{i, j})
		case x == 2 && y == 1:
			net = append(net, exchange{i, j}, exchange{i + 1, j})
		default:
			a := x / 2
			b := (y + 1) / 2
			if x%2 == 1 {
				b = y / 2
			}
			pbracket(i, a, j, b)
			pbracket(i+a, x-a, j+b, y-b)
			pbracket(i+a, x-a, j, b)
		}
	}

	var pstar func(i, m int)
	pstar = func(i, m int) {
		if m > 1 {
			a := m / 2
			pstar(i, a)
			pstar(i+a, m-a)
			pbracket(i, a, i+a, m-a)
		}
	}

	pstar(0, n)
	return net
}

// verify checks a network against the 0-1 principle: a comparison network
// that sorts every 0/1 sequence sorts every sequence.
func verify(n int, net []exchange) error {
	for bits := 0; bits < 1<<n; bits++ {
		v := make([]int, n)
		for i := range v {
			v[i] = (bits >> i) & 1
		}

		for _, e := range net {
			if v[e.J] < v[e.I] {
				v[e.I], v[e.J] = v[e.J], v[e.I]
			}
		}

		for i := 1; i < n; i++ {
			if v[i] < v[i-1] {
				return fmt.Errorf("network for n=%d fails on input %0*b", n, n, bits)
			}
		}
	}
	return nil
}

// emit renders the generated source file.
func emit(pkg string, maxN int) ([]byte, error) {
	var buf bytes.Buffer

	buf.WriteString(fileHeader)
	fmt.Fprintf(&buf, "\npackage %s\n\n", pkg)
	fmt.Fprintf(&buf, "// sortNetwork sorts data in-place using fixed Bose-Nelson compare-exchange\n")
	fmt.Fprintf(&buf, "// networks. Slices longer than %d elements fall back to insertion sort.\n", maxN)
	fmt.Fprintf(&buf, "func sortNetwork[T any](data []T, less Less[T]) {\n")
	fmt.Fprintf(&buf, "\tswitch len(data) {\n")
	fmt.Fprintf(&buf, "\tcase 0, 1:\n")
	fmt.Fprintf(&buf, "\t\t// already sorted\n")

	for n := 2; n <= maxN; n++ {
		net := boseNelson(n)
		if err := verify(n, net); err != nil {
			return nil, err
		}

		fmt.Fprintf(&buf, "\tcase %d:\n", n)
		for _, e := range net {
			fmt.Fprintf(&buf, "\t\tif less(data[%d], data[%d]) {\n", e.J, e.I)
			fmt.Fprintf(&buf, "\t\t\tdata[%d], data[%d] = data[%d], data[%d]\n", e.I, e.J, e.J, e.I)
			fmt.Fprintf(&buf, "\t\t}\n")
		}
	}

	fmt.Fprintf(&buf, "\tdefault:\n")
	fmt.Fprintf(&buf, "\t\tsortInsertion(data, less)\n")
	fmt.Fprintf(&buf, "\t}\n}\n")

	return format.Source(buf.Bytes())
}

func main() {
	flag.Parse()

	if *maxSize < 2 || *maxSize > 16 {
		fmt.Fprintf(os.Stderr, "Error: -max must be in [2, 16], got %d\n", *maxSize)
		os.Exit(1)
	}

	src, err := emit(*pkgName, *maxSize)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*outFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
