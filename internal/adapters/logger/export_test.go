package logger

// FormatError renders err the way the pretty handler receives it.
// This is exported for testing purposes only.
func FormatError(err error) string {
	return formatErrorEntries(collectErrorEntries(err))
}
