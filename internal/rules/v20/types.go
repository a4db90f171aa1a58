package v20

import "fmt"

// ResultKind classifies a V20 roll
type ResultKind int

const (
	ResultBotch ResultKind = iota
	ResultFailure
	ResultSuccess
	ResultExceptional
)

var resultKindNames = map[ResultKind]string{
	ResultBotch:       "botch",
	ResultFailure:     "failure",
	ResultSuccess:     "success",
	ResultExceptional: "exceptional",
}

func (k ResultKind) String() string {
	if name, ok := resultKindNames[k]; ok {
		return name
	}
	return "unknown"
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
	return fmt.Errorf("unknown v20 result kind %q", text)
}

// DamageType is the severity of a wound
type DamageType int

const (
	DamageBashing DamageType = iota
	DamageLethal
	DamageAggravated
)

var damageTypeNames = map[DamageType]string{
	DamageBashing:    "bashing",
	DamageLethal:     "lethal",
	DamageAggravated: "aggravated",
}

func (d DamageType) String() string {
	if name, ok := damageTypeNames[d]; ok {
		return name
	}
	return "unknown"
}

// MarshalText implements encoding.TextMarshaler
func (d DamageType) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *DamageType) UnmarshalText(text []byte) error {
	parsed, err := ParseDamageType(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDamageType reads "bashing", "lethal" or "aggravated"
func ParseDamageType(s string) (DamageType, error) {
	for kind, name := range damageTypeNames {
		if name == s {
			return kind, nil
		}
	}
	return DamageBashing, fmt.Errorf("unknown damage type %q", s)
}

// DamageTypeNames lists the accepted damage type names
func DamageTypeNames() []string {
	return []string{"bashing", "lethal", "aggravated"}
}

// Attribute is a Physical attribute that blood can boost
type Attribute string

const (
	AttributeStrength  Attribute = "strength"
	AttributeDexterity Attribute = "dexterity"
	AttributeStamina   Attribute = "stamina"
)

// Valid reports whether a is one of the Physical attributes
func (a Attribute) Valid() bool {
	switch a {
	case AttributeStrength, AttributeDexterity, AttributeStamina:
		return true
	}
	return false
}
