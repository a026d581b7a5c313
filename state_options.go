package sign

import "go.uber.org/zap"

// StateOption represents a functional option that may be passed to NewState for
// instantiating a new sign state with configured values.
type StateOption func(s *State)

// WithStateLogger sets the logger implementation that the state shall use. By default,
// zap.NewNop() is assigned which disables any logs. Key material is never logged.
func WithStateLogger(logger *zap.Logger) StateOption {
	return func(s *State) {
		if logger == nil {
			logger = zap.NewNop()
		}

		s.logger = logger
	}
}
