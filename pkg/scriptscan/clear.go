package scriptscan

// Clear discards all held state. The display filter survives; it is a
// presentation preference, not scan state.
func (s *realScriptScanner) Clear() {
	s.state.lastIndex = nil
	s.VerbosePrint("Cleared scan results")
}
