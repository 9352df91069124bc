package catalog

// #region strategy-definitions

// Strategies returns the full set of built-in scan strategies.
var Strategies = map[StrategyID]StrategyConfig{
	StrategyStandard: {
		ID:             StrategyStandard,
		RatioTolerance: 0.10,
		FibTolerance:   0.15,
		RunSpectral:    true,
		Emphasis:       EmphasisBalanced,
	},
	StrategyWideNet: {
		ID:             StrategyWideNet,
		RatioTolerance: 0.18,
		FibTolerance:   0.25,
		RunSpectral:    true,
		Emphasis:       EmphasisBalanced,
	},
	StrategyStrict: {
		ID:             StrategyStrict,
		RatioTolerance: 0.05,
		FibTolerance:   0.08,
		RunSpectral:    true,
		Emphasis:       EmphasisBalanced,
	},
	StrategyFibonacciFirst: {
		ID:             StrategyFibonacciFirst,
		RatioTolerance: 0.12,
		FibTolerance:   0.20,
		RunSpectral:    false,
		Emphasis:       EmphasisFibonacci,
	},
	StrategySpectral: {
		ID:             StrategySpectral,
		RatioTolerance: 0.12,
		FibTolerance:   0.15,
		RunSpectral:    true,
		Emphasis:       EmphasisSpectral,
	},
}

// #endregion

// #region default-mapping

// defaultMapping maps (Domain, Scale) to the default StrategyID.
// Oscillatory domains lead with the FFT, growth-pattern domains with
// Fibonacci counting, lab-grade micro data with tight tolerances.
var defaultMapping = map[Domain]map[Scale]StrategyID{
	DomainNeural: {
		ScaleMicro: StrategyStrict,
		ScaleMeso:  StrategySpectral,
		ScaleMacro: StrategySpectral,
	},
	DomainBotanical: {
		ScaleMicro: StrategyStrict,
		ScaleMeso:  StrategyFibonacciFirst,
		ScaleMacro: StrategyFibonacciFirst,
	},
	DomainAtmospheric: {
		ScaleMicro: StrategyStandard,
		ScaleMeso:  StrategyStandard,
		ScaleMacro: StrategyWideNet,
	},
	DomainBioelectric: {
		ScaleMicro: StrategyStrict,
		ScaleMeso:  StrategyStandard,
		ScaleMacro: StrategyStandard,
	},
	DomainCosmic: {
		ScaleMicro: StrategySpectral,
		ScaleMeso:  StrategySpectral,
		ScaleMacro: StrategySpectral,
	},
	DomainGeneric: {
		ScaleMicro: StrategyStandard,
		ScaleMeso:  StrategyStandard,
		ScaleMacro: StrategyWideNet,
	},
}

// #endregion

// #region retry-escalation

// retryEscalation maps failure kind to the ordered strategy fallback chain.
// Nothing-significant widens the acceptance windows before switching
// emphasis; a flat distribution goes to the FFT in case the structure is
// periodic rather than proportional.
var retryEscalation = map[FailureKind][]StrategyID{
	FailureNothingSignificant: {StrategyWideNet, StrategyFibonacciFirst},
	FailureEntropyFlat:        {StrategySpectral, StrategyWideNet},
}

// #endregion

// #region selector

// StrategySelector picks strategies based on classification, memory, and failure.
type StrategySelector struct {
	memory *ScanMemory // nil = no learning
}

// NewStrategySelector creates a selector with optional memory backing.
func NewStrategySelector(memory *ScanMemory) *StrategySelector {
	return &StrategySelector{memory: memory}
}

// #endregion

// #region select-initial

// SelectInitial picks the first strategy for a hunt.
func (s *StrategySelector) SelectInitial(class ScanClass) StrategyConfig {
	// Learned data first (3+ recorded outcomes required)
	if s.memory != nil {
		learned, _, err := s.memory.BestStrategy(
			string(class.Domain), string(class.Scale), string(class.Stakes),
		)
		if err == nil && learned != "" {
			if cfg, ok := Strategies[learned]; ok {
				return cfg
			}
		}
	}

	// Hardcoded default
	sid := StrategyStandard
	if scaleMap, ok := defaultMapping[class.Domain]; ok {
		if mapped, ok := scaleMap[class.Scale]; ok {
			sid = mapped
		}
	}
	return Strategies[sid]
}

// #endregion

// #region select-retry

// SelectRetry picks the next strategy after a failure, avoiding already-tried strategies.
func (s *StrategySelector) SelectRetry(failure FailureKind, tried []StrategyID) *StrategyConfig {
	triedSet := make(map[StrategyID]bool)
	for _, t := range tried {
		triedSet[t] = true
	}

	chain, ok := retryEscalation[failure]
	if !ok {
		chain = retryEscalation[FailureNothingSignificant] // fallback chain
	}

	for _, sid := range chain {
		if !triedSet[sid] {
			cfg := Strategies[sid]
			return &cfg
		}
	}

	// All escalation strategies tried, pick any untried strategy
	allStrategies := []StrategyID{
		StrategyStandard, StrategyWideNet, StrategyStrict,
		StrategyFibonacciFirst, StrategySpectral,
	}
	for _, sid := range allStrategies {
		if !triedSet[sid] {
			cfg := Strategies[sid]
			return &cfg
		}
	}

	return nil // all strategies exhausted
}

// #endregion
