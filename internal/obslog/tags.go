package obslog

// Category tags for filtering log output via REACTIVE_LOG_CATEGORIES.
const (
	TagVar         = "VAR"
	TagComputed    = "COMPUTED"
	TagFlatten     = "FLATTEN"
	TagObserver    = "OBSERVER"
	TagTransaction = "TRANSACTION"
	TagGraph       = "GRAPH"
)
