package logkit

// Record is the flattened wire form of one log call. It is constructed,
// serialized, and discarded within a single log invocation; no state is
// retained across calls.
//
// Level holds the numeric severity code for recognized levels and the raw
// level string otherwise, matching the permissive mapper fallback.
type Record struct {
	Name     string         `json:"name"`
	Hostname string         `json:"hostname"`
	PID      int            `json:"pid"`
	Level    any            `json:"level"`
	Msg      string         `json:"msg"`
	Time     string         `json:"time"`
	MetaData map[string]any `json:"meta_data"`
}
