package settings

import "fmt"

// AdvisoryCode identifies a non-fatal notice raised during Declare
type AdvisoryCode string

const (
	// AdvisoryOverwrite means the key was already declared; the old Setting
	// and its hooks were discarded.
	AdvisoryOverwrite AdvisoryCode = "OVERWRITE"

	// AdvisoryShadow means the key matches one of the registry's operation
	// names. Go keeps methods and keys in separate namespaces so nothing is
	// actually shadowed, but such keys read confusingly and the notice
	// preserves the contract callers can lint against.
	AdvisoryShadow AdvisoryCode = "SHADOW"
)

// Advisory is a non-fatal notice returned by Declare. In strict mode
// advisories are elevated to errors and the declare does not take effect.
type Advisory struct {
	Code    AdvisoryCode
	Key     string
	Message string
}

func (a Advisory) String() string {
	return fmt.Sprintf("[%s] %s", a.Code, a.Message)
}

// reservedKeys are the registry's operation names. Declaring a setting with
// one of these keys raises AdvisoryShadow.
var reservedKeys = map[string]struct{}{
	"declare":   {},
	"read":      {},
	"write":     {},
	"get":       {},
	"set":       {},
	"value":     {},
	"set_value": {},
	"keys":      {},
}
