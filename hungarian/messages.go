// SPDX-License-Identifier: MIT

// Package hungarian: trace text catalog.
// Keys are the English format strings; Spanish translations are registered
// in the x/text default catalog. Only %s and small %d arguments are used so
// that number formatting stays under our control (see recorder.num).
package hungarian

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Natural-language steps.
const (
	msgStepMaximize     = "Step 1: convert the maximization problem to minimization by subtracting every element from the maximum value (%s)"
	msgStepMinimize     = "Step 1: minimization problem, the original matrix is used"
	msgStepRowMins      = "Step 2: subtract each row minimum. Minimums: %s"
	msgStepColMins      = "Step 3: subtract each column minimum. Minimums: %s"
	msgStepComplete     = "Step 4.%d: complete assignment found after %d iteration(s)"
	msgStepIncomplete   = "Step 4.%d: incomplete assignment (%d/%d), creating more zeros"
	msgStepCoverExtract = "Step 4.%d: optimal assignment extracted using %d covering lines"
	msgStepNoUncovered  = "Step 4.%d: no uncovered element is left, stopping the iterations"
	msgStepCapReached   = "Iteration limit (%d) reached without a complete assignment"
	msgStepInvalid      = "Invalid assignment (%s), completing with the greedy method"
	msgStepFallback     = "Greedy completion: %d pair(s) taken from zeros, %d pair(s) from the smallest remaining values"
	msgStepTotal        = "Final step: total cost computed on the original matrix: %s"
	msgStepVerified     = "Verification: valid assignment, every resource is assigned to exactly one task"
)

// Trace descriptions.
const (
	msgTraceOriginal     = "Original matrix"
	msgTraceConverted    = "Step 1: converted matrix (maximum %s minus each element)"
	msgTraceRows         = "Step 2: after subtracting row minimums"
	msgTraceCols         = "Step 3: after subtracting column minimums"
	msgTraceOptimal      = "Step 4.%d: optimal assignment found"
	msgTraceOptimalLines = "Step 4.%d: optimal assignment with %d covering lines"
	msgTraceBeforeAdjust = "Step 4.%d: before adjustment (minimum uncovered element: %s)"
	msgTraceAfterAdjust  = "Step 4.%d: after matrix adjustment"
	msgTraceFallback     = "Greedy completion of the assignment"
)

// Trace details.
const (
	msgDetailConvertRow   = "Row %d: %s → %s - each element = %s"
	msgDetailRow          = "Row %d: %s"
	msgDetailRowMin       = "Minimum of row %d: %s"
	msgDetailCol          = "Column %d: %s"
	msgDetailColMin       = "Minimum of column %d: %s"
	msgDetailOperation    = "Operation: %s - %s = %s"
	msgDetailNothing      = "Nothing to subtract (minimum is %s)"
	msgDetailLines        = "Covering lines: rows %s, columns %s"
	msgDetailMinUncovered = "Minimum uncovered element: %s"
	msgDetailOperations   = "Operations performed:"
	msgDetailSubtract     = "• Subtract %s from uncovered elements"
	msgDetailAdd          = "• Add %s to doubly covered elements"
	msgDetailKeep         = "• Keep elements covered by a single line"
)

// Verification failure reasons.
const (
	msgReasonIncomplete = "%d/%d pairs"
	msgReasonRange      = "index out of range at (%d, %d)"
	msgReasonRow        = "row %d used more than once"
	msgReasonCol        = "column %d used more than once"
)

// spanish holds the es catalog; registered once at init.
var spanish = map[string]string{
	msgStepMaximize:     "Paso 1: Convertir problema de maximización a minimización restando cada elemento del valor máximo (%s)",
	msgStepMinimize:     "Paso 1: Problema de minimización - usar matriz original",
	msgStepRowMins:      "Paso 2: Restar el mínimo de cada fila. Mínimos: %s",
	msgStepColMins:      "Paso 3: Restar el mínimo de cada columna. Mínimos: %s",
	msgStepComplete:     "Paso 4.%d: Asignación completa encontrada después de %d iteración(es)",
	msgStepIncomplete:   "Paso 4.%d: Asignación incompleta (%d/%d), creando más ceros",
	msgStepCoverExtract: "Paso 4.%d: Asignación óptima extraída usando %d líneas de cobertura",
	msgStepNoUncovered:  "Paso 4.%d: No hay elementos descubiertos, terminando las iteraciones",
	msgStepCapReached:   "Límite de iteraciones (%d) alcanzado sin una asignación completa",
	msgStepInvalid:      "Asignación inválida (%s), completando con el método voraz",
	msgStepFallback:     "Completado voraz: %d par(es) tomados de ceros, %d par(es) de los menores valores restantes",
	msgStepTotal:        "Paso final: Costo total calculado usando matriz original: %s",
	msgStepVerified:     "Verificación: Asignación válida - cada recurso asignado a exactamente una tarea",

	msgTraceOriginal:     "Matriz Original",
	msgTraceConverted:    "Paso 1: Matriz convertida (máximo %s - cada elemento)",
	msgTraceRows:         "Paso 2: Después de restar mínimos de filas",
	msgTraceCols:         "Paso 3: Después de restar mínimos de columnas",
	msgTraceOptimal:      "Paso 4.%d: Asignación óptima encontrada",
	msgTraceOptimalLines: "Paso 4.%d: Asignación óptima con %d líneas de cobertura",
	msgTraceBeforeAdjust: "Paso 4.%d: Antes del ajuste (elemento mínimo descubierto: %s)",
	msgTraceAfterAdjust:  "Paso 4.%d: Después del ajuste de matriz",
	msgTraceFallback:     "Completado voraz de la asignación",

	msgDetailConvertRow:   "Fila %d: %s → %s - cada elemento = %s",
	msgDetailRow:          "Fila %d: %s",
	msgDetailRowMin:       "Mínimo de la fila %d: %s",
	msgDetailCol:          "Columna %d: %s",
	msgDetailColMin:       "Mínimo de la columna %d: %s",
	msgDetailOperation:    "Operación: %s - %s = %s",
	msgDetailNothing:      "No se resta nada (mínimo es %s)",
	msgDetailLines:        "Líneas de cobertura: filas %s, columnas %s",
	msgDetailMinUncovered: "Elemento mínimo no cubierto: %s",
	msgDetailOperations:   "Operaciones realizadas:",
	msgDetailSubtract:     "• Restar %s de elementos no cubiertos",
	msgDetailAdd:          "• Sumar %s a elementos doblemente cubiertos",
	msgDetailKeep:         "• Mantener elementos cubiertos por una sola línea",

	msgReasonIncomplete: "%d/%d pares",
	msgReasonRange:      "índices fuera de rango en (%d, %d)",
	msgReasonRow:        "fila %d usada múltiples veces",
	msgReasonCol:        "columna %d usada múltiples veces",
}

func init() {
	for key, msg := range spanish {
		_ = message.SetString(language.Spanish, key, msg)
	}
}

// Languages lists the tags with a built-in catalog, default first.
func Languages() []language.Tag {
	return []language.Tag{language.English, language.Spanish}
}
