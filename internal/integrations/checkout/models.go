package checkout

// SessionParams параметры создания hosted checkout сессии
type SessionParams struct {
	Description   string // описание платежа (payment intent)
	ProductName   string
	ProductDesc   string
	Currency      string
	UnitAmount    int64 // цена в минимальных единицах валюты (центах)
	Quantity      int64
	SuccessURL    string // содержит плейсхолдер {CHECKOUT_SESSION_ID}
	CancelURL     string
	CustomerEmail string
	Metadata      map[string]string
}

// Session созданная checkout-сессия
type Session struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// ErrorResponse модель ошибки провайдера
type ErrorResponse struct {
	Error struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}
