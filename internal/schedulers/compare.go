package schedulers

import (
	"sync"

	"github.com/Yhrjkcz1/COS/internal/core"
)

// Comparison is one policy's run over a private copy of the input.
type Comparison struct {
	Policy    Policy
	Processes []*core.Process
	Result    Result
	Metrics   Metrics
}

// ComparisonPolicies lists every algorithm once, with round robin repeated
// for each quantum. An empty timeQuanta still yields one round robin policy,
// with quantum 0, so Compare rejects it instead of skipping round robin.
func ComparisonPolicies(timeQuanta []int) []Policy {
	policies := make([]Policy, 0, len(Algorithms)+len(timeQuanta))
	for _, a := range Algorithms {
		if a == RoundRobin {
			if len(timeQuanta) == 0 {
				policies = append(policies, Policy{Algorithm: RoundRobin})
				continue
			}
			for _, q := range timeQuanta {
				policies = append(policies, Policy{Algorithm: RoundRobin, TimeQuantum: q})
			}
			continue
		}
		policies = append(policies, Policy{Algorithm: a})
	}
	return policies
}

// Compare runs every comparison policy concurrently, each over its own clone
// of processes. processes itself is never modified. Results keep the order
// of ComparisonPolicies.
func Compare(processes []*core.Process, timeQuanta []int) ([]Comparison, error) {
	policies := ComparisonPolicies(timeQuanta)
	for _, policy := range policies {
		if err := validate(processes, policy); err != nil {
			return nil, err
		}
	}

	comparisons := make([]Comparison, len(policies))
	var wg sync.WaitGroup
	wg.Add(len(policies))
	for i, policy := range policies {
		go func(i int, policy Policy) {
			defer wg.Done()
			clones := make([]*core.Process, len(processes))
			for j, p := range processes {
				clones[j] = p.Clone()
			}
			// already validated, so the run cannot fail
			result, _ := Schedule(clones, policy)
			comparisons[i] = Comparison{
				Policy:    result.Policy,
				Processes: clones,
				Result:    result,
				Metrics:   Analyze(clones, result),
			}
		}(i, policy)
	}
	wg.Wait()

	return comparisons, nil
}
