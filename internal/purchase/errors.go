package purchase

import "fmt"

// ConfigurationError reports game data that cannot be valued
type ConfigurationError struct {
	Rule   string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("purchase option %q: %s", e.Rule, e.Reason)
}
