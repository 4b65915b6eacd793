package app

// Statement text follows the deployed schema; values are always bind parameters.
const (
	selectAllCustomers = `SELECT * FROM Customer`
	insertCustomer     = `INSERT INTO Customer VALUES ($1, $2, $3, $4, $5)`

	selectAllMechanics = `SELECT * FROM Mechanic`
	insertMechanic     = `INSERT INTO Mechanic VALUES ($1, $2, $3, $4)`

	selectAllCars = `SELECT * FROM Car`
	insertCar     = `INSERT INTO Car VALUES ($1, $2, $3, $4)`

	selectCustomersByLastName = `SELECT C.id, C.fname, C.lname FROM Customer C WHERE C.lname = $1`
	selectCustomerByID        = `SELECT C.id, C.fname, C.lname FROM Customer C WHERE C.id = $1`
	selectCarsOwnedBy         = `SELECT * FROM Car WHERE vin IN (SELECT car_vin FROM Owns WHERE customer_id = $1)`

	insertClosedRequest = `INSERT INTO Closed_Request VALUES ($1, $2, $3, CURRENT_DATE, $4, $5) RETURNING *`

	listCustomersWithBillLessThan100 = `SELECT C.fname, C.lname, CR.date, CR.comment, CR.bill FROM Customer C, Closed_Request CR WHERE C.id IN (SELECT SR.customer_ID FROM Service_Request SR WHERE CR.bill < 100 AND CR.wid = SR.rid)`

	listCustomersWithMoreThan20Cars = `SELECT C.fname, C.lname FROM Customer C WHERE C.id IN (SELECT O.customer_id FROM Owns O GROUP BY O.customer_id HAVING COUNT(O.car_vin) > 20)`

	listCarsBefore1995With50000Miles = `SELECT C.make, C.model, C.year FROM Car C WHERE C.vin IN (SELECT SR.car_vin FROM Service_Request SR WHERE SR.odometer < 50000) AND C.year < 1995`

	// Ties keep whatever order the grouping produces.
	listKCarsWithTheMostServices = `SELECT C.make, C.model, C.year, COUNT(C.vin) AS numServiceOrders FROM Car C, Service_Request SR WHERE C.vin = SR.car_vin GROUP BY C.vin ORDER BY numServiceOrders DESC LIMIT $1`

	listCustomersByTotalBill = `SELECT C.fname, C.lname, SUM(CR.bill) AS totalBill FROM Customer C, Closed_Request CR WHERE EXISTS (SELECT * FROM Service_Request SR WHERE SR.rid = CR.wid AND C.id = SR.customer_id) GROUP BY C.id ORDER BY TotalBill DESC`
)
