package dto

type DashboardStats struct {
	ServiceCount    int     `json:"serviceCount"`
	PendingBookings int     `json:"pendingBookings"`
	TotalEarnings   float64 `json:"totalEarnings"`
}

type DashboardResponse struct {
	Stats DashboardStats `json:"stats"`
}
