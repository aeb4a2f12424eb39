package mortgageschedule

import (
	"context"
	"fmt"

	"mortgageschedule/internal/pkg/consts"
	"mortgageschedule/internal/pkg/log_messages"
	"mortgageschedule/internal/pkg/models"
	"mortgageschedule/internal/service/interfaces"
)

type SkipReason string

const (
	SkipTargetMissing         SkipReason = "target missing"
	SkipWrongEntityType       SkipReason = "wrong entity type"
	SkipStatusMissing         SkipReason = "status missing"
	SkipNotApproved           SkipReason = "not approved"
	SkipRequiredFieldsMissing SkipReason = "required fields still missing"
)

// Decision is either Proceed with a fully populated application or a Skip with its reason.
type Decision struct {
	Application *models.MortgageApplication
	Reason      SkipReason
}

func (d Decision) Proceed() bool {
	return d.Application != nil
}

func proceed(app *models.MortgageApplication) Decision {
	return Decision{Application: app}
}

func skip(reason SkipReason) Decision {
	return Decision{Reason: reason}
}

type EligibilityGate struct {
	store interfaces.RecordStore
	sink  interfaces.TraceSink
}

func NewEligibilityGate(store interfaces.RecordStore, sink interfaces.TraceSink) *EligibilityGate {
	return &EligibilityGate{store: store, sink: sink}
}

// Evaluate runs the checks in order and stops at the first failing one. The only
// error it returns comes from re-reading the application.
func (g *EligibilityGate) Evaluate(ctx context.Context, target *models.TargetEntity) (Decision, error) {
	if target == nil {
		g.sink.Trace(ctx, log_messages.TraceTargetMissing)
		return skip(SkipTargetMissing), nil
	}

	if target.LogicalName != consts.MortgageApplicationEntity {
		g.sink.Trace(ctx, fmt.Sprintf(log_messages.TraceWrongEntityType, consts.MortgageApplicationEntity))
		return skip(SkipWrongEntityType), nil
	}

	app := target.Application()

	if !app.HasStatus() {
		g.sink.Trace(ctx, log_messages.TraceStatusMissing)
		return skip(SkipStatusMissing), nil
	}

	if *app.Status != consts.ApplicationStatusApproved {
		g.sink.Trace(ctx, log_messages.TraceNotApproved)
		return skip(SkipNotApproved), nil
	}

	if !app.HasScheduleInputs() {
		full, err := g.store.RetrieveApplication(ctx, app.ID, consts.RequiredApplicationColumns)
		if err != nil {
			return Decision{}, err
		}
		app.MergeScheduleInputs(full)
		g.sink.Trace(ctx, log_messages.TraceRetrievedFullRecord)
	}

	if !app.HasScheduleInputs() {
		g.sink.Trace(ctx, log_messages.TraceRequiredFieldsMissing)
		return skip(SkipRequiredFieldsMissing), nil
	}

	g.sink.Trace(ctx, log_messages.TraceEligible)
	return proceed(app), nil
}
