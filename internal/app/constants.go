package app

// Layout constants define the default dimensions and spacing for the UI
const (
	// FormMaxWidth caps the calculator pane on wide terminals.
	FormMaxWidth = 72

	// LabelWidth is the column reserved for field labels.
	LabelWidth = 20

	// MarkerWidth is the column reserved for the lock marker after a field.
	MarkerWidth = 10

	// FooterMinRows is the default number of rows reserved for the bottom
	// status/help area.
	FooterMinRows = 2
	// FooterMaxRows is used when the footer does not fit in FooterMinRows.
	FooterMaxRows = 3
)

// Input limits define maximum sizes for user input
const (
	// InputCharLimit is the maximum number of characters in a numeric field.
	InputCharLimit = 16
)

// File system permissions
const (
	// DirPermission is the permission mode for the state directory.
	DirPermission = 0o700

	// FilePermission is the permission mode for the state file.
	FilePermission = 0o600
)
