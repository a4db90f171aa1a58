package v5

import "fmt"

// ResultKind classifies a V5 roll
type ResultKind int

const (
	ResultBestialFailure ResultKind = iota
	ResultFailure
	ResultSuccess
	ResultCritical
	ResultMessyCritical
)

var resultKindNames = map[ResultKind]string{
	ResultBestialFailure: "bestial_failure",
	ResultFailure:        "failure",
	ResultSuccess:        "success",
	ResultCritical:       "critical",
	ResultMessyCritical:  "messy_critical",
}

func (k ResultKind) String() string {
	if name, ok := resultKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// IsSuccess reports whether the roll met its difficulty
func (k ResultKind) IsSuccess() bool {
	return k == ResultSuccess || k == ResultCritical || k == ResultMessyCritical
}

// MarshalText implements encoding.TextMarshaler
func (k ResultKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *ResultKind) UnmarshalText(text []byte) error {
	for kind, name := range resultKindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown v5 result kind %q", text)
}
