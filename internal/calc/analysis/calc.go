package analysis

import (
	designcheck "Girder/internal/calc/designcheck"
	envelope "Girder/internal/calc/envelope"
	loadcases "Girder/internal/calc/loadcases"
	member "Girder/internal/calc/member"
)

// Input aggregates everything one analysis run needs. Section and steel
// properties are expected to be already resolved (from the catalog or
// user overrides) before the engine is invoked.
type Input struct {
	Member  member.Descriptor        `json:"member"`
	Section member.SectionProperties `json:"section"`
	Steel   member.SteelProperties   `json:"steel"`
	Live    loadcases.LiveLoads      `json:"live"`
	Dead    loadcases.DeadLoads      `json:"dead"`
}

// Result is the full analysis output: the echoed inputs plus the product
// of each pipeline stage. Plain data, safe to serialize as-is.
type Result struct {
	Inputs      Input                        `json:"inputs"`
	StoreyLoads []loadcases.StoreyLoadRecord `json:"storey_loads"`
	Envelopes   []envelope.StoreyEnvelope    `json:"envelopes"`
	Checks      designcheck.Result           `json:"design_checks"`
}

// Run executes the three-stage pipeline: storey load cases, force
// envelopes, capacity checks. Pure function of its input; a failed run
// returns no partial result.
func Run(in Input) (Result, error) {
	if err := in.Member.Validate(); err != nil {
		return Result{}, err
	}

	loads := loadcases.Generate(in.Member, in.Live, in.Dead)
	envelopes := envelope.Compute(loads, in.Member.LengthM)

	checks, err := designcheck.Evaluate(in.Member, in.Section, in.Steel, envelopes)
	if err != nil {
		return Result{}, err
	}

	return Result{
		Inputs:      in,
		StoreyLoads: loads,
		Envelopes:   envelopes,
		Checks:      checks,
	}, nil
}
