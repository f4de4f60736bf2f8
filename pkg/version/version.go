package version

var (
	Version   = "0.1.0"
	GitCommit = "dev"
	BuildDate = "20260831000000"
)

// String returns a human-readable version string.
func String() string {
	return "byteproc " + Version + " (" + GitCommit + ", " + BuildDate + ")"
}
