// SPDX-License-Identifier: MIT

package render

import (
	"encoding/json"
	"io"
)

// JSON writes r as indented JSON followed by a newline.
func JSON(w io.Writer, r Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}
