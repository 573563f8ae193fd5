package gridworld_test

import (
	"fmt"
	"strings"

	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/gridworld"
	"github.com/danielakuinchtner/mdp-tensor-solver-multidimensional/valueiter"
)

// ExampleBuild builds a deterministic 1×4 corridor with an exit worth
// +1 on the right and reads the optimal walk off the solved policy.
func ExampleBuild() {
	world, err := gridworld.Build(1, 4,
		gridworld.WithNoise(0),
		gridworld.WithTerminal(3, 0, 1),
	)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	res, err := valueiter.Solve(world.Model(), world.Reward(), 0.9)
	if err != nil {
		fmt.Println("error:", err)

		return
	}

	names := make([]string, len(res.Policy))
	for s, a := range res.Policy {
		names[s] = gridworld.Action(a).String()
	}
	fmt.Println(strings.Join(names, " "))
	// Output:
	// right right right up
}
