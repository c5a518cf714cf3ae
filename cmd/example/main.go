package main

import (
	"fmt"
	"log"
	"strings"

	"github.com/bartolsthoorn/transportlp/highs"
	"github.com/bartolsthoorn/transportlp/instance"
	"github.com/bartolsthoorn/transportlp/problem"
	"github.com/bartolsthoorn/transportlp/solver/highssolver"
)

const text = `instance_name = "example";
d = 2;
r = 3;
SCj = [20 30];
Dk = [10 25 15];
Cjk = [8 6 10
9 12 13];
`

func main() {
	inst, err := instance.Read(strings.NewReader(text))
	if err != nil {
		log.Fatal(err)
	}

	lp, err := problem.Build(inst)
	if err != nil {
		log.Fatal(err)
	}

	model, err := highssolver.Model(lp)
	if err != nil {
		log.Fatal(err)
	}

	solution, err := model.Solve(highs.WithOutput(false))
	if err != nil {
		log.Fatal(err)
	}

	if !solution.IsOptimal() {
		log.Fatalf("%s: %s", inst.Name, solution.Status)
	}
	for j := 0; j < inst.Depots; j++ {
		for k := 0; k < inst.Stores; k++ {
			if q := solution.Value(lp.Index(j, k)); q > 0 {
				fmt.Printf("depot %d -> store %d: %.0f\n", j, k, q)
			}
		}
	}
	fmt.Printf("Cost = %.2f after %d iterations\n", solution.Objective, solution.Iterations())
}
