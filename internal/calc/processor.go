package calc

import "go.uber.org/zap"

// Processor composes Divide with a fixed post-transform.
type Processor struct {
	log *zap.Logger
}

// NewProcessor creates a Processor. A nil logger is replaced with zap.NewNop.
func NewProcessor(log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{log: log}
}

// ProcessDivision divides num by den and doubles the quotient.
//
// A failure from Divide is returned as-is: the error value is the identical
// ErrDivideByZero, not wrapped. On the success path a diagnostic notice is
// logged after the guard and before returning.
func (p *Processor) ProcessDivision(num, den float64) (float64, error) {
	quotient, err := Divide(num, den)
	if err != nil {
		return 0, err
	}
	p.log.Info("division successful, proceeding",
		zap.Float64("numerator", num),
		zap.Float64("denominator", den))
	return quotient * 2.0, nil
}
