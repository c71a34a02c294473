// Package ui presents the word search in the terminal.
//
// The package has two layers. Presenter is display-free: it owns the session
// state (through state.Store) and turns phase changes and submits into plain
// values (Output, RenderInstruction, ResultView) that tests can assert on.
// Model is the Bubble Tea program that draws those values.
//
// # Session Flow
//
//  1. Run starts the program; Init issues the single load command.
//  2. While loading, the pattern field is disabled and a spinner runs.
//  3. wordsLoadedMsg enables and focuses the field; loadFailedMsg shows the
//     error and leaves the field disabled for the rest of the session.
//  4. Each enter calls Presenter.OnSubmit and renders the instruction.
//
// # Layout
//
//   - Header: program name, word-list source, theme
//   - Pattern field (bordered, dimmed while disabled)
//   - Status line and the hit count with its note
//   - Result viewport, scrolled with up/down, pgup/pgdown, ctrl+u/ctrl+d
//   - Footer: short help
//
// WritePlain renders the same instruction as text for `kotoba search`.
package ui
