package domain

// DealerStats is the per-dealer rollup produced by the aggregation engine.
type DealerStats struct {
	DealerID        string         `json:"dealerId"`
	DealerName      string         `json:"dealerName"`
	TotalTickets    int            `json:"totalTickets"`
	TicketsByStatus map[string]int `json:"ticketsByStatus"`
	TicketsByType   map[string]int `json:"ticketsByType"`
	ChassisNumbers  []string       `json:"chassisNumbers"`
	AvgTimeConsumed TimeBreakdown  `json:"avgTimeConsumed"`
}

// EmployeeStats is the per-employee rollup.
type EmployeeStats struct {
	EmployeeID        string         `json:"employeeId"`
	EmployeeName      string         `json:"employeeName"`
	TotalTickets      int            `json:"totalTickets"`
	ActiveTickets     int            `json:"activeTickets"`
	ClosedTickets     int            `json:"closedTickets"`
	PendingApproval   int            `json:"pendingApproval"`
	AwaitingResponse  int            `json:"awaitingResponse"`
	TicketsByStatus   map[string]int `json:"ticketsByStatus"`
	TotalTimeConsumed TimeBreakdown  `json:"totalTimeConsumed"`
	AvgTimePerTicket  TimeBreakdown  `json:"avgTimePerTicket"`
}

// CostRanges buckets ticket costs; every ticket of a repair group lands in
// exactly one bucket, so Low+Medium+High equals the group's ticket count.
type CostRanges struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// RepairStats is the per-repair-shop rollup.
type RepairStats struct {
	RepairID           string             `json:"repairId"`
	RepairName         string             `json:"repairName"`
	TicketCount        int                `json:"ticketCount"`
	TotalCost          float64            `json:"totalCost"`
	AvgCost            float64            `json:"avgCost"`
	CostByType         map[string]float64 `json:"costByType"`
	CostRanges         CostRanges         `json:"costRanges"`
	ChassisTicketCount int                `json:"chassisTicketCount"`
	UniqueChassisCount int                `json:"uniqueChassisCount"`
	ChassisTicketRatio float64            `json:"chassisTicketRatio"`
	UniqueChassisRatio float64            `json:"uniqueChassisRatio"`
}

// MonthBucket is one month of the claim-vs-closed trend.
type MonthBucket struct {
	Month              string  `json:"month"` // "2006-01"
	Created            int     `json:"created"`
	Completed          int     `json:"completed"`
	AvgHoursToComplete float64 `json:"avgHoursToComplete"`
}

// MatrixRow is one age or calendar-year row of the status×age matrix.
type MatrixRow struct {
	Label             string            `json:"label"`
	Total             int               `json:"total"`
	StatusCounts      map[string]int    `json:"statusCounts"`
	StatusPercentages map[string]string `json:"statusPercentages"`
	OpenDistinct      int               `json:"openDistinct,omitempty"`
	AgeBucketed       bool              `json:"ageBucketed"`
}

// StatusMatrix is the full status×age matrix with its column ordering.
type StatusMatrix struct {
	Columns []string    `json:"columns"`
	Rows    []MatrixRow `json:"rows"`
}
