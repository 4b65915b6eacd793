package app

import (
	"context"
	"fmt"
	"slices"
	"strconv"

	"github.com/hrutik5321/mechanicshop/internal/db"
	"github.com/hrutik5321/mechanicshop/internal/models"
	"github.com/hrutik5321/mechanicshop/internal/ui/table"
	"github.com/hrutik5321/mechanicshop/internal/validation"
)

// askText prompts until the answer stored in dst passes the rules of field
// on model.
func (a *App) askText(label string, model any, field string, dst *string) error {
	_, err := a.prompt.Ask(label, func(answer string) error {
		*dst = answer
		return validation.Field(model, field)
	})
	return err
}

// AddCustomer inserts a customer whose id is the current number of customers.
func (a *App) AddCustomer(ctx context.Context) error {
	var c models.Customer
	if err := a.askText("\tEnter customer's first name: ", &c, "FirstName", &c.FirstName); err != nil {
		return err
	}
	if err := a.askText("\tEnter customer's last name: ", &c, "LastName", &c.LastName); err != nil {
		return err
	}
	if err := a.askText("\tEnter customer's phone number: ", &c, "Phone", &c.Phone); err != nil {
		return err
	}
	if err := a.askText("\tEnter customer's address: ", &c, "Address", &c.Address); err != nil {
		return err
	}

	count, err := a.db.ExecuteQueryAndPrintResult(ctx, selectAllCustomers)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "total row(s): %d\n", count)

	c.ID = count
	if err := a.db.ExecuteUpdate(ctx, insertCustomer, c.ID, c.FirstName, c.LastName, c.Phone, c.Address); err != nil {
		return err
	}

	count, err = a.db.ExecuteQueryAndPrintResult(ctx, selectAllCustomers)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "total row(s): %d\n", count)
	fmt.Fprintln(a.out, "\tSuccess!")
	return nil
}

// AddMechanic inserts a mechanic whose id is the current number of mechanics.
func (a *App) AddMechanic(ctx context.Context) error {
	var m models.Mechanic
	if err := a.askText("\tEnter mechanic's first name: ", &m, "FirstName", &m.FirstName); err != nil {
		return err
	}
	if err := a.askText("\tEnter mechanic's last name: ", &m, "LastName", &m.LastName); err != nil {
		return err
	}
	years, err := a.prompt.AskInt("\tEnter mechanic's years of experience: ", nil)
	if err != nil {
		return err
	}
	m.YearsExperience = years

	count, err := a.db.ExecuteQueryAndPrintResult(ctx, selectAllMechanics)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "total row(s): %d\n", count)

	m.ID = count
	if err := a.db.ExecuteUpdate(ctx, insertMechanic, m.ID, m.FirstName, m.LastName, m.YearsExperience); err != nil {
		return err
	}

	count, err = a.db.ExecuteQueryAndPrintResult(ctx, selectAllMechanics)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "total row(s): %d\n", count)
	fmt.Fprintln(a.out, "\tSuccess!")
	return nil
}

// AddCar inserts a car keyed by its VIN.
func (a *App) AddCar(ctx context.Context) error {
	var car models.Car
	if err := a.askText("\tEnter car's vin: ", &car, "VIN", &car.VIN); err != nil {
		return err
	}
	if err := a.askText("\tEnter car's make: ", &car, "Make", &car.Make); err != nil {
		return err
	}
	if err := a.askText("\tEnter car's model: ", &car, "Model", &car.Model); err != nil {
		return err
	}
	year, err := a.prompt.AskInt("\tEnter car's year: ", nil)
	if err != nil {
		return err
	}
	car.Year = year

	if err := a.db.ExecuteUpdate(ctx, insertCar, car.VIN, car.Make, car.Model, car.Year); err != nil {
		return err
	}

	count, err := a.db.ExecuteQueryAndPrintResult(ctx, selectAllCars)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "total row(s): %d\n", count)
	fmt.Fprintln(a.out, "\tSuccess!")
	return nil
}

var (
	errNoCustomer = &lookupError{
		msg:    "Customer does not exist!",
		advice: `Before inserting a service request, please use the "AddCustomer" function. Otherwise, try a different last name.`,
	}
	errNoCar = &lookupError{
		msg:    "No car(s) found under this customer.",
		advice: `Before adding a service request for a customer, please use the "AddCar" function. Otherwise, try a different name.`,
	}
)

// InsertServiceRequest finds the customer by last name and the car they want
// serviced, asking the operator to choose when there is more than one match.
// It does not write a Service_Request row.
func (a *App) InsertServiceRequest(ctx context.Context) error {
	var req models.ServiceRequestLookup
	if err := a.askText("\tEnter customer's last name: ", &req, "LastName", &req.LastName); err != nil {
		return err
	}

	customers, err := a.showRows(ctx, selectCustomersByLastName, req.LastName)
	if err != nil {
		return err
	}

	switch len(customers.Rows) {
	case 0:
		return errNoCustomer
	case 1:
		raw := column(customers, "id")[0]
		id, err := strconv.Atoi(raw)
		if err != nil {
			return fmt.Errorf("unexpected customer id %q: %w", raw, err)
		}
		req.CustomerID = id
	default:
		ids := column(customers, "id")
		id, err := a.prompt.AskInt("\tWhich customer wants to insert a service request? Enter customer's id: ", func(id int) error {
			if !slices.Contains(ids, strconv.Itoa(id)) {
				return fmt.Errorf("Customer %d is not one of the customers listed above.", id)
			}
			return nil
		})
		if err != nil {
			return err
		}
		req.CustomerID = id

		if _, err := a.showRows(ctx, selectCustomerByID, req.CustomerID); err != nil {
			return err
		}
	}

	cars, err := a.showRows(ctx, selectCarsOwnedBy, req.CustomerID)
	if err != nil {
		return err
	}

	vins := column(cars, "vin")
	switch len(cars.Rows) {
	case 0:
		return errNoCar
	case 1:
		req.VIN = vins[0]
	default:
		_, err := a.prompt.Ask("Enter the vin for the car that needs service: ", func(answer string) error {
			req.VIN = answer
			if err := validation.Field(&req, "VIN"); err != nil {
				return err
			}
			if !slices.Contains(vins, answer) {
				return fmt.Errorf("Car %s is not one of the cars listed above.", answer)
			}
			return nil
		})
		if err != nil {
			return err
		}
	}

	a.log.Debug().Int("customer_id", req.CustomerID).Str("vin", req.VIN).Msg("service request target identified")
	fmt.Fprintf(a.out, "\tCustomer %d and car %s selected for the service request.\n", req.CustomerID, req.VIN)
	return nil
}

// CloseServiceRequest bills a service request. The closing record reuses the
// request number as its own id.
func (a *App) CloseServiceRequest(ctx context.Context) error {
	var cr models.ClosedRequest

	number, err := a.prompt.AskInt("\tEnter service request number: ", nil)
	if err != nil {
		return err
	}
	cr.ID, cr.RequestID = number, number

	if cr.EmployeeID, err = a.prompt.AskInt("\tEnter employee ID: ", nil); err != nil {
		return err
	}
	if cr.Comment, err = a.prompt.Line("\tEnter comment: "); err != nil {
		return err
	}
	if cr.Bill, err = a.prompt.AskInt("\tEnter bill: ", nil); err != nil {
		return err
	}

	count, err := a.db.ExecuteQueryAndPrintResult(ctx, insertClosedRequest, cr.ID, cr.RequestID, cr.EmployeeID, cr.Comment, cr.Bill)
	if err != nil {
		return err
	}
	table.Count(a.out, count)
	return nil
}

// showRows fetches and prints a result together with its row count.
func (a *App) showRows(ctx context.Context, sql string, args ...any) (db.RowSet, error) {
	rs, err := a.db.FetchRows(ctx, sql, args...)
	if err != nil {
		return db.RowSet{}, err
	}
	if err := table.Render(a.out, rs.Columns, rs.Rows); err != nil {
		return db.RowSet{}, err
	}
	table.Count(a.out, len(rs.Rows))
	return rs, nil
}

// column returns the values of the named column, falling back to the first
// column when no column has that name.
func column(rs db.RowSet, name string) []string {
	idx := slices.Index(rs.Columns, name)
	if idx < 0 {
		idx = 0
	}
	values := make([]string, 0, len(rs.Rows))
	for _, row := range rs.Rows {
		if idx < len(row) {
			values = append(values, row[idx])
		}
	}
	return values
}
