package logging

const (
	// FieldComponent is the standardized structured logging key for component names.
	FieldComponent = "component"
	// FieldEventType labels the kind of event a record describes.
	FieldEventType = "event_type"
	// FieldErrorHint tells the operator what to check next.
	FieldErrorHint = "error_hint"
	// FieldImpact is the user-facing consequence of a warning.
	FieldImpact = "impact"
	// FieldDecisionType labels decision records.
	FieldDecisionType = "decision_type"
	// FieldContentType is the content collection (vesti, turniri).
	FieldContentType = "content_type"
	// FieldContentID is the content record identifier.
	FieldContentID = "content_id"
	// FieldEventID is the gallery event identifier.
	FieldEventID = "gallery_event_id"
	// FieldPath is a filesystem path involved in the operation.
	FieldPath = "path"
	// FieldSessionID tags every record of one CLI invocation.
	FieldSessionID = "session_id"
)
