package logging

// Common structured log field keys to keep logs searchable/consistent.
const (
	FieldService    = "service"
	FieldVersion    = "version"
	FieldRequestID  = "request_id"
	FieldPath       = "path"
	FieldMethod     = "method"
	FieldStatusCode = "status_code"
	FieldTeam       = "team"
	FieldPlayer     = "player"
	FieldPoints     = "points"
	FieldKind       = "kind"
	FieldPhase      = "phase"
	FieldCount      = "count"
	FieldClientID   = "client_id"
	FieldDurationMS = "duration_ms"
)
