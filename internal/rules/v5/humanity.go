package v5

const (
	MinHumanity = 0
	MaxHumanity = 10
)

// DaytimePenalty is the dice penalty for acting during the day
func DaytimePenalty(humanity int) int {
	switch {
	case humanity >= 9:
		return -1
	case humanity >= 7:
		return -2
	case humanity >= 5:
		return -3
	case humanity >= 3:
		return -4
	default:
		return -5
	}
}
