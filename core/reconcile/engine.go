package reconcile

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Plan performs the enrich and filter pass for every group of the spec.
// Records are resolved in group order; unresolved records and identifiers already kept in the
// same group are dropped. It does NOT write anything; use Apply for that.
func Plan(ctx context.Context, spec *Spec, tx *gorm.DB, scopeID string) (*ReconcilePlan, error) {
	plan := &ReconcilePlan{
		ScopeID: scopeID,
		Groups:  make([]PlannedGroup, 0, len(spec.Groups)),
	}

	for _, group := range spec.Groups {
		planned, err := planGroup(ctx, spec.Adapter, tx, group, scopeID)
		if err != nil {
			return nil, err
		}
		plan.Groups = append(plan.Groups, planned)
		addToSummary(&plan.Summary, planned)
	}
	plan.Summary.Groups = len(plan.Groups)

	return plan, nil
}

// planGroup resolves the records of a single group.
func planGroup(ctx context.Context, adapter Adapter, tx *gorm.DB, group Group, scopeID string) (PlannedGroup, error) {
	planned := PlannedGroup{
		Name:     group.Name,
		IDs:      []string{},
		Outcomes: make([]Outcome, 0, len(group.Records)),
	}
	seen := make(map[string]struct{}, len(group.Records))

	for _, record := range group.Records {
		identity := record.Identity()
		res, err := adapter.Resolve(ctx, tx, identity, scopeID)
		if err != nil {
			return PlannedGroup{}, fmt.Errorf("failed to resolve %q for collection %q: %w", identity.Title, group.Name, err)
		}

		outcome := Outcome{Identity: identity, Resolution: res}
		switch _, dup := seen[res.ID]; {
		case !res.Resolved():
			outcome.Type = OutcomeUnresolved
		case dup:
			outcome.Type = OutcomeDuplicate
		default:
			outcome.Type = OutcomeKept
			seen[res.ID] = struct{}{}
			planned.IDs = append(planned.IDs, res.ID)
		}
		planned.Outcomes = append(planned.Outcomes, outcome)
	}

	return planned, nil
}

func addToSummary(s *PlanSummary, g PlannedGroup) {
	for _, o := range g.Outcomes {
		s.Records++
		switch o.Type {
		case OutcomeKept:
			s.Resolved++
			switch o.Resolution.Strategy {
			case StrategyISBN:
				s.ByISBN++
			case StrategyTitleAuthor:
				s.ByTitleAuthor++
			}
		case OutcomeUnresolved:
			s.Unresolved++
		case OutcomeDuplicate:
			s.Duplicates++
		}
	}
}
