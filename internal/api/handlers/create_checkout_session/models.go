package create_checkout_session

import (
	createSession "github.com/m04kA/SMC-QueueSkipService/internal/usecase/create_checkout_session"
)

// CustomerPayload данные покупателя
type CustomerPayload struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Sex          string `json:"sex"`
	ReceivePromo bool   `json:"receivePromo"`
}

// CreateSessionRequest HTTP request model
type CreateSessionRequest struct {
	VenueID  string          `json:"venueId"`
	Customer CustomerPayload `json:"customer"`
}

// CreateSessionResponse HTTP response model
type CreateSessionResponse struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateSessionRequest) ToUseCaseRequest() *createSession.Request {
	return &createSession.Request{
		VenueID:       r.VenueID,
		CustomerName:  r.Customer.Name,
		CustomerEmail: r.Customer.Email,
		CustomerSex:   r.Customer.Sex,
		ReceivePromo:  r.Customer.ReceivePromo,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createSession.Response) *CreateSessionResponse {
	return &CreateSessionResponse{
		SessionID: resp.SessionID,
		URL:       resp.URL,
	}
}
