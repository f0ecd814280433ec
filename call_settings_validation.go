package davinci

import "fmt"

// NewCallSettings constructs a CallSettings instance and performs
// basic validation on the provided parameters. It returns an
// InvalidArgumentError for values that are clearly out of range.
//
// This helper is optional: callers can still construct CallSettings
// directly when they prefer not to perform validation.
func NewCallSettings(temperature, topP, frequencyPenalty, presencePenalty *float64, stop []string) (*CallSettings, error) {
	if temperature != nil {
		if *temperature < 0 || *temperature > 2 {
			return nil, &InvalidArgumentError{
				Parameter: "temperature",
				Value:     *temperature,
				Message:   "must be between 0 and 2",
			}
		}
	}
	if topP != nil {
		if *topP <= 0 || *topP > 1 {
			return nil, &InvalidArgumentError{
				Parameter: "topP",
				Value:     *topP,
				Message:   "must be in the range (0, 1]",
			}
		}
	}
	if frequencyPenalty != nil {
		if *frequencyPenalty < -2 || *frequencyPenalty > 2 {
			return nil, &InvalidArgumentError{
				Parameter: "frequencyPenalty",
				Value:     *frequencyPenalty,
				Message:   "must be between -2 and 2",
			}
		}
	}
	if presencePenalty != nil {
		if *presencePenalty < -2 || *presencePenalty > 2 {
			return nil, &InvalidArgumentError{
				Parameter: "presencePenalty",
				Value:     *presencePenalty,
				Message:   "must be between -2 and 2",
			}
		}
	}

	// No validation for stop sequences; providers may impose limits.

	return &CallSettings{
		Temperature:      temperature,
		TopP:             topP,
		FrequencyPenalty: frequencyPenalty,
		PresencePenalty:  presencePenalty,
		Stop:             stop,
	}, nil
}

// MustNewCallSettings constructs CallSettings and panics if validation
// fails. It is intended for configuration that should be validated at
// startup, not for user input.
func MustNewCallSettings(temperature, topP, frequencyPenalty, presencePenalty *float64, stop []string) *CallSettings {
	cs, err := NewCallSettings(temperature, topP, frequencyPenalty, presencePenalty, stop)
	if err != nil {
		panic(fmt.Sprintf("davinci: invalid call settings: %v", err))
	}
	return cs
}
