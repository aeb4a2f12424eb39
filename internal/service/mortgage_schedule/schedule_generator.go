package mortgageschedule

import (
	"context"
	"fmt"
	"time"

	"mortgageschedule/internal/pkg/consts"
	"mortgageschedule/internal/pkg/log_messages"
	"mortgageschedule/internal/pkg/models"
	"mortgageschedule/internal/service/interfaces"

	"github.com/shopspring/decimal"
)

const dueDateLayout = "2006-01-02"

// Schedule summarizes what a generator run wrote.
type Schedule struct {
	Start           time.Time
	MonthlyPayment  decimal.Decimal
	PaymentsCreated int
}

type ScheduleGenerator struct {
	store interfaces.RecordStore
	sink  interfaces.TraceSink
	now   func() time.Time
}

func NewScheduleGenerator(store interfaces.RecordStore, sink interfaces.TraceSink, now func() time.Time) *ScheduleGenerator {
	if now == nil {
		now = time.Now
	}
	return &ScheduleGenerator{store: store, sink: sink, now: now}
}

// Generate writes one payment per month of the term. It expects an application
// that passed the eligibility gate. Payments written before a failure stay written
// and are counted in the returned Schedule.
func (g *ScheduleGenerator) Generate(ctx context.Context, app *models.MortgageApplication) (Schedule, error) {
	term := *app.TermMonths
	g.sink.Trace(ctx, fmt.Sprintf(log_messages.TraceDurationInMonths, term))

	if term <= 0 {
		g.sink.Trace(ctx, fmt.Sprintf(log_messages.TraceNoPaymentsForTerm, term))
		return Schedule{}, nil
	}

	apr, err := BlendAPR(*app.RiskScore, *app.SalesTaxRate)
	if err != nil {
		return Schedule{}, err
	}
	rate := MonthlyRate(apr)
	payment, err := MonthlyPayment(*app.PrincipalAmount, rate, term)
	if err != nil {
		return Schedule{}, err
	}
	g.sink.Trace(ctx, fmt.Sprintf(log_messages.TraceRateBlended, apr.String(), rate.String(), payment.StringFixed(2)))

	schedule := Schedule{Start: g.now(), MonthlyPayment: payment}
	for i := 1; i <= term; i++ {
		label := fmt.Sprintf(consts.PaymentLabelFormat, i)
		dueDate := AddMonths(schedule.Start, i)

		record := models.MortgagePayment{
			ApplicationID:  app.ID,
			Name:           app.Name,
			SequenceNumber: i,
			Label:          label,
			DueDate:        dueDate,
			Amount:         payment,
		}
		if app.HasOwnerReference() {
			record.OwnerReference = app.OwnerReference
		}

		if _, err := g.store.CreatePayment(ctx, record); err != nil {
			return schedule, err
		}
		schedule.PaymentsCreated++
		g.sink.Trace(ctx, fmt.Sprintf(log_messages.TracePaymentCreated, dueDate.Format(dueDateLayout), payment.StringFixed(2)))
	}

	g.sink.Trace(ctx, log_messages.TraceScheduleCompleted)
	return schedule, nil
}
