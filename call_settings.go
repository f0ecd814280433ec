package davinci

// CallSettings groups common generation parameters such as temperature,
// top-p, penalties, and stop sequences. This is a convenience struct
// for sharing settings across multiple CompletionRequest values.
//
// CallSettings do not affect any requests automatically; callers are
// expected to apply them when constructing requests. MaxTokens is
// deliberately not part of CallSettings: the token budget is a
// per-call input that is forwarded verbatim.
type CallSettings struct {
	// Temperature controls randomness of the output.
	Temperature *float64
	// TopP controls nucleus sampling for the output.
	TopP *float64
	// FrequencyPenalty discourages verbatim repetition.
	FrequencyPenalty *float64
	// PresencePenalty discourages re-mentioning earlier topics.
	PresencePenalty *float64
	// Stop contains stop sequences that will truncate the output.
	Stop []string
}

// ApplyTo copies the non-nil/non-zero fields from the CallSettings
// into the given CompletionRequest.
func (s *CallSettings) ApplyTo(req *CompletionRequest) {
	if s == nil {
		return
	}
	if s.Temperature != nil {
		req.Temperature = s.Temperature
	}
	if s.TopP != nil {
		req.TopP = s.TopP
	}
	if s.FrequencyPenalty != nil {
		req.FrequencyPenalty = s.FrequencyPenalty
	}
	if s.PresencePenalty != nil {
		req.PresencePenalty = s.PresencePenalty
	}
	if len(s.Stop) > 0 {
		req.Stop = s.Stop
	}
}

// DavinciCallSettings returns the tuning parameters Complete uses for
// conversational question answering: temperature 0.9, top_p 1, no
// frequency penalty, presence penalty 0.6, and a newline stop sequence
// so the model answers a single turn.
func DavinciCallSettings() *CallSettings {
	temperature := 0.9
	topP := 1.0
	frequencyPenalty := 0.0
	presencePenalty := 0.6
	return &CallSettings{
		Temperature:      &temperature,
		TopP:             &topP,
		FrequencyPenalty: &frequencyPenalty,
		PresencePenalty:  &presencePenalty,
		Stop:             []string{"\n"},
	}
}
