package repository

// DashboardCounts totales agregados para el tablero.
type DashboardCounts struct {
	Products      int
	Orders        int
	PendingOrders int
	Users         int
}

// DashboardRepository puerto de consultas agregadas del tablero.
type DashboardRepository interface {
	Counts() (*DashboardCounts, error)
}
