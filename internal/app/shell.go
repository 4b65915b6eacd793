package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/hrutik5321/mechanicshop/internal/prompt"
	"github.com/hrutik5321/mechanicshop/internal/sqlerr"
)

// ----- States -----

type state int

const (
	stateRunning state = iota
	stateTerminated
)

// ----- Menu -----

type operation struct {
	name string
	run  func(*App, context.Context) error
}

// Menu entries are numbered from 1 in this order.
var operations = []operation{
	{"AddCustomer", (*App).AddCustomer},
	{"AddMechanic", (*App).AddMechanic},
	{"AddCar", (*App).AddCar},
	{"InsertServiceRequest", (*App).InsertServiceRequest},
	{"CloseServiceRequest", (*App).CloseServiceRequest},
	{"ListCustomersWithBillLessThan100", (*App).ListCustomersWithBillLessThan100},
	{"ListCustomersWithMoreThan20Cars", (*App).ListCustomersWithMoreThan20Cars},
	{"ListCarsBefore1995With50000Milles", (*App).ListCarsBefore1995With50000Milles},
	{"ListKCarsWithTheMostServices", (*App).ListKCarsWithTheMostServices},
	{"ListCustomersInDescendingOrderOfTheirTotalBill", (*App).ListCustomersInDescendingOrderOfTheirTotalBill},
}

const exitChoice = 11

// Run shows the menu and dispatches choices until the operator exits or the
// input is closed.
func (a *App) Run(ctx context.Context) error {
	for a.state == stateRunning {
		a.printMenu()

		choice, err := a.readChoice()
		if errors.Is(err, prompt.ErrClosed) {
			a.state = stateTerminated
			break
		}
		if err != nil {
			return err
		}

		a.dispatch(ctx, choice)
	}
	return nil
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out, "MAIN MENU")
	fmt.Fprintln(a.out, "---------")
	for i, op := range operations {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, op.name)
	}
	fmt.Fprintf(a.out, "%d. < EXIT\n", exitChoice)
}

// readChoice only returns once an integer has been entered.
func (a *App) readChoice() (int, error) {
	for {
		line, err := a.prompt.Line("Please make your choice: ")
		if err != nil {
			return 0, err
		}
		choice, err := prompt.ParseInt(line)
		if err != nil {
			fmt.Fprintln(a.out, "Your input is invalid!")
			continue
		}
		return choice, nil
	}
}

// dispatch runs the chosen operation. Unknown choices are ignored.
func (a *App) dispatch(ctx context.Context, choice int) {
	if choice == exitChoice {
		a.state = stateTerminated
		return
	}
	if choice < 1 || choice > len(operations) {
		return
	}

	op := operations[choice-1]
	a.log.Debug().Str("operation", op.name).Msg("running operation")

	err := op.run(a, ctx)
	switch {
	case err == nil:
	case errors.Is(err, prompt.ErrClosed):
		a.state = stateTerminated
	default:
		a.report(op.name, err)
	}
}

// report prints a failed operation's error and any advice for the operator.
func (a *App) report(name string, err error) {
	a.log.Debug().Err(err).Str("operation", name).Msg("operation failed")

	fmt.Fprintln(a.errOut, err.Error())
	if hint := sqlerr.Hint(err); hint != "" {
		fmt.Fprintln(a.errOut, hint)
	}

	var le *lookupError
	if errors.As(err, &le) && le.advice != "" {
		fmt.Fprintln(a.out, le.advice)
	}
}

// lookupError is a handler failure that isn't a database error, with advice
// on how to proceed.
type lookupError struct {
	msg    string
	advice string
}

func (e *lookupError) Error() string { return e.msg }
