package logkit

// Level represents the symbolic severity of a log call.
type Level string

const (
	LevelError Level = "error"
	LevelWarn  Level = "warn"
	LevelInfo  Level = "info"
	LevelDebug Level = "debug"
)

// severityCodes holds the fixed numeric codes the aggregation backend keys
// on. Higher is more severe.
var severityCodes = map[Level]int{
	LevelError: 50,
	LevelWarn:  40,
	LevelInfo:  30,
	LevelDebug: 20,
}

// SeverityCode returns the numeric severity code for the four recognized
// levels. Any other level name is returned unchanged as a string, so
// forward-compatible level names pass through uninterpreted instead of
// failing the log call. Lookup is case-sensitive: only exact lowercase
// names hit the table.
func SeverityCode(level Level) any {
	if code, ok := severityCodes[level]; ok {
		return code
	}
	return string(level)
}

// String returns the level name as a string.
func (l Level) String() string {
	return string(l)
}

// Recognized reports whether the level is one of the four named levels.
func (l Level) Recognized() bool {
	_, ok := severityCodes[l]
	return ok
}

// enabled reports whether the level passes the configured minimum. An
// unrecognized minimum falls back to info. Unrecognized call levels cannot
// be ranked and always pass; the permissive passthrough extends to dispatch.
func (l Level) enabled(min Level) bool {
	code, ok := severityCodes[l]
	if !ok {
		return true
	}

	minCode, ok := severityCodes[min]
	if !ok {
		minCode = severityCodes[LevelInfo]
	}
	return code >= minCode
}
