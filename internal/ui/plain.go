package ui

import (
	"bufio"
	"io"
)

// WritePlain prints a submit result as plain text for non-interactive use:
// the status line, the count, one previewed entry per line and the note.
func WritePlain(w io.Writer, instr RenderInstruction) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(instr.Status.Text)
	bw.WriteString("\n")
	if instr.Status.Variant == VariantError {
		return bw.Flush()
	}
	bw.WriteString("Hits: ")
	bw.WriteString(instr.Result.Count)
	bw.WriteString("\n")
	for _, item := range instr.Result.Items {
		bw.WriteString(item)
		bw.WriteString("\n")
	}
	bw.WriteString(instr.Result.Note)
	bw.WriteString("\n")
	return bw.Flush()
}
