package config

const (
	// CaseInsensitiveEnv disables case-sensitive matching when present, whatever its value.
	CaseInsensitiveEnv = "CASE_INSENSITIVE"

	minArgs = 3
)

// Config is the search request resolved from the command line and environment.
type Config struct {
	Query         string
	Filename      string
	CaseSensitive bool
}

// Resolve builds a Config from the argument list and an environment snapshot.
// args[0] is the program name; args[1] and args[2] are the query and filename.
// Additional arguments are ignored.
func Resolve(args []string, env Environment) (Config, error) {
	if len(args) < minArgs {
		return Config{}, ErrInsufficientArguments
	}

	_, insensitive := env.LookupEnv(CaseInsensitiveEnv)

	return Config{
		Query:         args[1],
		Filename:      args[2],
		CaseSensitive: !insensitive,
	}, nil
}
