package clique_test

import (
	"fmt"

	"github.com/matzehuels/cliquechain/pkg/clique"
)

func ExampleGenerate() {
	configs, _ := clique.Generate(3)
	for _, c := range configs {
		fmt.Println(c)
	}
	// Output:
	// {1 2 3}
	// {1 2}{2 3}
	// {1 2}{3}
	// {1}{2 3}
	// {1}{2}{3}
}

func ExampleConfiguration_WithoutSubsets() {
	// The range clique {2 3 4} absorbs the singleton {3}.
	c := clique.New(clique.NewClique(1, 2), clique.NewClique(3), clique.Range(2, 4))
	fmt.Println(c.WithoutSubsets())
	// Output:
	// {1 2}{2 3 4}
}

func ExampleEndingCliqueSize() {
	c := clique.New(clique.NewClique(1, 2), clique.NewClique(2, 3))
	fmt.Println(clique.EndingCliqueSize(c, 3))
	// Output:
	// 2
}
