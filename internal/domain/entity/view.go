package entity

// View names an admin screen whose cached data must be refreshed after a mutation.
type View string

const (
	ViewDashboard    View = "dashboard"
	ViewListings     View = "listings"
	ViewAuctions     View = "auctions"
	ViewUsers        View = "users"
	ViewKyc          View = "kyc"
	ViewTransactions View = "transactions"
	ViewVehicles     View = "vehicles"
	ViewLocations    View = "locations"
)
