package version

// Version is the current version of the insights pipeline
const Version = "0.1.0"

// UserAgent returns the identifier used in logs and generated reports
func UserAgent() string {
	return "interview-insights/" + Version
}
