package create_checkout_session

// Request - данные покупателя для создания checkout-сессии
type Request struct {
	VenueID       string
	CustomerName  string
	CustomerEmail string
	CustomerSex   string
	ReceivePromo  bool
}

// Response - созданная checkout-сессия
type Response struct {
	SessionID string
	URL       string
}
