package constant

const (
	ServiceName    = "member-service"
	ServiceVersion = "1.0.0"
)
