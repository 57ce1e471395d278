package quad

// Plan is a static partition of a step range across workers, computed
// once up front. StepSize is derived from the requested step count and
// shared verbatim by every worker.
//
// Requested steps that do not divide evenly are dropped: each worker owns
// exactly Requested/Workers steps, so Total may fall short of Requested
// by up to Workers-1 steps. Callers that care can compare the two fields.
type Plan struct {
	Start          float64
	Workers        int
	StepsPerWorker int64
	StepSize       float64
	Requested      int64
	Total          int64
}

// Partition splits totalSteps over [start, end] across workers.
func Partition(start, end float64, totalSteps int64, workers int) (Plan, error) {
	if workers < 1 {
		return Plan{}, ErrBadWorkerCount
	}
	if totalSteps < int64(workers) {
		return Plan{}, ErrBadStepCount
	}

	per := totalSteps / int64(workers)
	return Plan{
		Start:          start,
		Workers:        workers,
		StepsPerWorker: per,
		StepSize:       (end - start) / float64(totalSteps),
		Requested:      totalSteps,
		Total:          per * int64(workers),
	}, nil
}

// Request returns worker k's contiguous sub-range.
func (p Plan) Request(worker int) Request {
	span := float64(p.StepsPerWorker) * p.StepSize
	start := p.Start + float64(worker)*span
	return Request{
		Start:    start,
		End:      start + span,
		Steps:    p.StepsPerWorker,
		StepSize: p.StepSize,
	}
}

// Dropped reports how many requested steps the truncating partition
// leaves un-integrated.
func (p Plan) Dropped() int64 {
	return p.Requested - p.Total
}
