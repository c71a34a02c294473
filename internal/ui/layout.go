package ui

// Fixed rows around the result list.
const (
	// headerRows is the title bar.
	headerRows = 1

	// inputRows is the bordered pattern field.
	inputRows = 3

	// statusRows holds the status line and the count/note line.
	statusRows = 2

	// footerRows is the short help bar.
	footerRows = 1
)

// helpModalWidth is the width of the help overlay.
const helpModalWidth = 44

// minResultRows keeps the result list visible on very short terminals.
const minResultRows = 3

// resultRows returns the viewport height for a terminal of the given height.
func resultRows(height int) int {
	rows := height - headerRows - inputRows - statusRows - footerRows
	if rows < minResultRows {
		return minResultRows
	}
	return rows
}
