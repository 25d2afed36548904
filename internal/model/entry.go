package model

// LogEntry is one structured record in the built-in sample log. The JSON
// field order matches the struct order, so serialized samples are stable.
type LogEntry struct {
	Timestamp string `json:"timestamp"`
	Level     string `json:"level"`
	Message   string `json:"message"`
	Service   string `json:"service"`
}
