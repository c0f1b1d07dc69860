package envvar

const (
	// TTSDEnv is the environment variable used to determine the environment
	TTSDEnv = "TTSD_ENV"

	// TTSDConfig is the environment variable used to locate the config file
	TTSDConfig = "TTSD_CONFIG"
)
