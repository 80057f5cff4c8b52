// SPDX-License-Identifier: MIT

// Package hungarian_test provides runnable, deterministic examples of the
// assignment solver with stable // Output: blocks.
package hungarian_test

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/katalvlaran/hungarian/hungarian"
	"github.com/katalvlaran/hungarian/matrix"
)

// ExampleSolveRows assigns three workers to three jobs at minimum cost.
func ExampleSolveRows() {
	sol, err := hungarian.SolveRows([][]float64{
		{82, 83, 69},
		{77, 37, 49},
		{11, 69, 5},
	}, hungarian.Minimize)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	for _, r := range sol.Assignments {
		fmt.Printf("resource %d -> task %d (cost %g)\n", r.Resource+1, r.Task+1, r.Cost)
	}
	fmt.Println("total:", sol.TotalCost)
	// Output:
	// resource 1 -> task 3 (cost 69)
	// resource 2 -> task 2 (cost 37)
	// resource 3 -> task 1 (cost 11)
	// total: 117
}

// ExampleSolve_maximize works on benefits instead of costs.
func ExampleSolve_maximize() {
	m, _ := matrix.NewDenseFromRows([][]float64{
		{1, 2, 3, 4},
		{2, 4, 6, 8},
		{3, 6, 9, 12},
		{4, 8, 12, 16},
	})
	sol, err := hungarian.Solve(m, hungarian.Maximize)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(sol.Pairs())
	fmt.Println("total:", sol.TotalCost, "adjustments:", sol.Adjustments)
	// Output:
	// [{0 0} {1 1} {2 2} {3 3}]
	// total: 30 adjustments: 3
}

// ExampleSolveRows_steps prints the natural-language explanation in Spanish.
func ExampleSolveRows_steps() {
	sol, _ := hungarian.SolveRows([][]float64{
		{1, 5, 9},
		{7, 2, 8},
		{9, 9, 3},
	}, hungarian.Minimize, hungarian.WithLanguage(language.Spanish))
	for _, s := range sol.Steps {
		fmt.Println(s)
	}
	// Output:
	// Paso 1: Problema de minimización - usar matriz original
	// Paso 2: Restar el mínimo de cada fila. Mínimos: [1, 2, 3]
	// Paso 3: Restar el mínimo de cada columna. Mínimos: [0, 0, 0]
	// Paso 4.1: Asignación completa encontrada después de 1 iteración(es)
	// Paso final: Costo total calculado usando matriz original: 6
	// Verificación: Asignación válida - cada recurso asignado a exactamente una tarea
}

// ExampleVerify checks candidate assignments.
func ExampleVerify() {
	fmt.Println(hungarian.Verify(hungarian.Assignment{{0, 1}, {1, 0}}, 2))
	fmt.Println(hungarian.Check(hungarian.Assignment{{0, 1}, {1, 1}}, 2))
	// Output:
	// true
	// hungarian: column assigned more than once: column 1
}
