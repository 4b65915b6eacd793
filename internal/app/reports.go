package app

import (
	"context"

	"github.com/hrutik5321/mechanicshop/internal/models"
	"github.com/hrutik5321/mechanicshop/internal/ui/table"
	"github.com/hrutik5321/mechanicshop/internal/validation"
)

// printReport runs a read-only query, printing its rows and the row count.
func (a *App) printReport(ctx context.Context, sql string, args ...any) error {
	count, err := a.db.ExecuteQueryAndPrintResult(ctx, sql, args...)
	if err != nil {
		return err
	}
	table.Count(a.out, count)
	return nil
}

func (a *App) ListCustomersWithBillLessThan100(ctx context.Context) error {
	return a.printReport(ctx, listCustomersWithBillLessThan100)
}

func (a *App) ListCustomersWithMoreThan20Cars(ctx context.Context) error {
	return a.printReport(ctx, listCustomersWithMoreThan20Cars)
}

func (a *App) ListCarsBefore1995With50000Milles(ctx context.Context) error {
	return a.printReport(ctx, listCarsBefore1995With50000Miles)
}

// ListKCarsWithTheMostServices asks for K and lists at most K cars, most
// serviced first.
func (a *App) ListKCarsWithTheMostServices(ctx context.Context) error {
	var lim models.ReportLimit
	k, err := a.prompt.AskInt("\tEnter a number to see which car(s) have the highest number of service orders: ", func(k int) error {
		lim.K = k
		return validation.Field(&lim, "K")
	})
	if err != nil {
		return err
	}
	return a.printReport(ctx, listKCarsWithTheMostServices, k)
}

func (a *App) ListCustomersInDescendingOrderOfTheirTotalBill(ctx context.Context) error {
	return a.printReport(ctx, listCustomersByTotalBill)
}
