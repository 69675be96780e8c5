package style

// Stats is a cheap snapshot of engine size, for a host's diagnostics
// panel or test assertions - the SUPPLEMENTED FEATURE equivalent of
// print_all's counters but returned as data instead of formatted text.
type Stats struct {
	Keywords     int
	Properties   int
	Rules        int
	CachedStyles int
	LogEntries   int
}

// Stats returns a snapshot of the engine's current size.
func (e *Engine) Stats() Stats {
	return Stats{
		Keywords:     e.Keywords.Count(),
		Properties:   e.Properties.Count(),
		Rules:        e.ruleCount,
		CachedStyles: len(e.cache),
		LogEntries:   e.Log.Length(),
	}
}
