package logtrace

// Fields is a type alias for structured log fields
type Fields map[string]interface{}

// WithFields returns a copy of base with extra fields merged in.
func WithFields(base Fields, extra Fields) Fields {
	fields := Fields{}
	for key, value := range base {
		fields[key] = value
	}
	for key, value := range extra {
		fields[key] = value
	}
	return fields
}

const (
	FieldCorrelationID = "correlation_id"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldPath          = "path"
	FieldOutput        = "output"
	FieldWidth         = "width"
	FieldHeight        = "height"
	FieldColorModel    = "color_model"
	FieldChannels      = "channels"
	FieldLimit         = "limit"
	FieldCapacity      = "capacity"
	FieldUsed          = "used"
	FieldPayloadBits   = "payload_bits"
)
