package constants

const (
	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard clock time format used throughout the application (HH:MM)
	TimeFormat = "15:04"
)
