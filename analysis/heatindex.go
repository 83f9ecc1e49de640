package analysis

// ComfortLevel classifies how much warmer a location feels than its
// measured temperature
type ComfortLevel int

const (
	Comfortable ComfortLevel = iota
	SlightlyUncomfortable
	Uncomfortable
	Dangerous
)

// String returns the fixed label for the comfort level
func (c ComfortLevel) String() string {
	switch c {
	case Comfortable:
		return "Comfortable"
	case SlightlyUncomfortable:
		return "Slightly Uncomfortable"
	case Uncomfortable:
		return "Uncomfortable"
	case Dangerous:
		return "Dangerous"
	}
	return "Unknown"
}

// Description returns a human-readable explanation of the comfort level
func (c ComfortLevel) Description() string {
	switch c {
	case Comfortable:
		return "Normal comfort feeling"
	case SlightlyUncomfortable:
		return "Feeling slightly warmer than actual temperature"
	case Uncomfortable:
		return "Significant heat load due to humidity"
	case Dangerous:
		return "Feeling of heavy heat - limit outdoor activity"
	}
	return ""
}

// HeatIndexResult holds the apparent temperature computed from a single
// temperature/humidity pair
type HeatIndexResult struct {
	HeatIndex    float64      `json:"heatIndex"`  // apparent temperature in Celsius
	ActualTemp   float64      `json:"actualTemp"` // input temperature, echoed back
	Difference   float64      `json:"difference"` // signed heatIndex - actualTemp
	ComfortLevel ComfortLevel `json:"comfortLevel"`
	Comfort      string       `json:"comfort"`     // label for ComfortLevel
	Description  string       `json:"description"` // human-readable explanation
}

// Coefficients of the NWS heat-index regression (Rothfusz), in Fahrenheit.
const (
	hiC1 = -42.379
	hiC2 = 2.04901523
	hiC3 = 10.14333127
	hiC4 = -0.22475541
	hiC5 = -0.00683783
	hiC6 = -0.05481717
	hiC7 = 0.00122874
	hiC8 = 0.00085282
	hiC9 = -0.00000199

	// The simplified approximation is replaced by the full regression
	// above this value, in Fahrenheit.
	regressionThresholdF = 80
)

// ComputeHeatIndex calculates the apparent ("feels like") temperature for a
// temperature in Celsius and a relative humidity percentage, using
// Steadman's formula: a simplified linear approximation below 80F, the full
// NWS regression above it.
//
// Inputs are not validated: humidity outside [0,100] or extreme
// temperatures produce a finite but physically meaningless result, matching
// the upstream data contract where the caller owns input hygiene. The
// function never fails for finite input.
func ComputeHeatIndex(tempC, humidityPercent float64) HeatIndexResult {
	tempF := tempC*9/5 + 32

	hiF := 0.5 * (tempF + 61 + (tempF-68)*1.2 + humidityPercent*0.094)

	if hiF >= regressionThresholdF {
		t, h := tempF, humidityPercent
		hiF = hiC1 + hiC2*t + hiC3*h +
			hiC4*t*h + hiC5*t*t + hiC6*h*h +
			hiC7*t*t*h + hiC8*t*h*h + hiC9*t*t*h*h
	}

	hiC := (hiF - 32) * 5 / 9
	diff := hiC - tempC

	level := classifyComfort(diff)

	return HeatIndexResult{
		HeatIndex:    hiC,
		ActualTemp:   tempC,
		Difference:   diff,
		ComfortLevel: level,
		Comfort:      level.String(),
		Description:  level.Description(),
	}
}

// classifyComfort buckets the absolute heat-index difference into a
// discrete comfort level
func classifyComfort(diff float64) ComfortLevel {
	if diff < 0 {
		diff = -diff
	}
	switch {
	case diff < 2:
		return Comfortable
	case diff < 4:
		return SlightlyUncomfortable
	case diff < 6:
		return Uncomfortable
	default:
		return Dangerous
	}
}
