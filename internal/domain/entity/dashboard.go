package entity

// DashboardStats are the headline counters of the admin home screen.
type DashboardStats struct {
	TotalUsers          int64   `json:"total_users"`
	PendingListings     int64   `json:"pending_listings"`
	ActiveAuctions      int64   `json:"active_auctions"`
	TotalListings       int64   `json:"total_listings"`
	PendingKyc          int64   `json:"pending_kyc"`
	PendingTransactions int64   `json:"pending_transactions"`
	TodaySubmissions    int64   `json:"today_submissions"`
	TotalRevenue        float64 `json:"total_revenue"`
}
