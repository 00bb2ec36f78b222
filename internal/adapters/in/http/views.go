package http

import (
	"time"

	"quickdrop/internal/core/application/usecases/queries"
	"quickdrop/internal/core/domain/model/rider"
	"quickdrop/internal/core/domain/model/user"
)

type ParcelResponse struct {
	ID              string     `json:"id"`
	TrackingID      string     `json:"trackingId"`
	Sender          string     `json:"sender"`
	Title           string     `json:"title"`
	Type            string     `json:"type"`
	Weight          float64    `json:"weight"`
	SenderName      string     `json:"senderName"`
	SenderRegion    string     `json:"senderRegion"`
	ReceiverName    string     `json:"receiverName"`
	ReceiverPhone   string     `json:"receiverPhone"`
	ReceiverAddress string     `json:"receiverAddress"`
	ReceiverRegion  string     `json:"receiverRegion"`
	Cost            float64    `json:"cost"`
	PaymentStatus   string     `json:"payment_status"`
	DeliveryStatus  string     `json:"delivery_status"`
	TransactionID   string     `json:"transactionId,omitempty"`
	RiderName       string     `json:"riderName,omitempty"`
	RiderEmail      string     `json:"riderEmail,omitempty"`
	CreatedAt       time.Time  `json:"creation_date"`
	TransitAt       *time.Time `json:"transit_at,omitempty"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
	CashOut         bool       `json:"cashOut"`
}

func toParcelResponse(v queries.ParcelView) ParcelResponse {
	return ParcelResponse{
		ID:              v.ID.String(),
		TrackingID:      v.TrackingID,
		Sender:          v.SenderEmail,
		Title:           v.Title,
		Type:            v.Type,
		Weight:          v.WeightKg,
		SenderName:      v.SenderName,
		SenderRegion:    v.SenderRegion,
		ReceiverName:    v.ReceiverName,
		ReceiverPhone:   v.ReceiverPhone,
		ReceiverAddress: v.ReceiverAddress,
		ReceiverRegion:  v.ReceiverRegion,
		Cost:            v.Cost,
		PaymentStatus:   v.PaymentStatus,
		DeliveryStatus:  v.DeliveryStatus,
		TransactionID:   v.TransactionID,
		RiderName:       v.RiderName,
		RiderEmail:      v.RiderEmail,
		CreatedAt:       v.CreatedAt,
		TransitAt:       v.TransitAt,
		DeliveredAt:     v.DeliveredAt,
		CashOut:         v.CashOut,
	}
}

func toParcelResponses(views []queries.ParcelView) []ParcelResponse {
	out := make([]ParcelResponse, len(views))
	for i, v := range views {
		out[i] = toParcelResponse(v)
	}
	return out
}

type PaymentResponse struct {
	ID            string    `json:"id"`
	ParcelID      string    `json:"parcelId"`
	Email         string    `json:"email"`
	Amount        float64   `json:"amount"`
	TransactionID string    `json:"transactionId"`
	PaymentMethod string    `json:"paymentMethod"`
	PaidAt        time.Time `json:"paid_date"`
}

func toPaymentResponses(views []queries.PaymentView) []PaymentResponse {
	out := make([]PaymentResponse, len(views))
	for i, v := range views {
		out[i] = PaymentResponse{
			ID:            v.ID.String(),
			ParcelID:      v.ParcelID.String(),
			Email:         v.PayerEmail,
			Amount:        v.Amount,
			TransactionID: v.TransactionID,
			PaymentMethod: v.Method,
			PaidAt:        v.PaidAt,
		}
	}
	return out
}

type UserResponse struct {
	ID          string    `json:"id"`
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	PhotoURL    string    `json:"photoURL"`
	Role        string    `json:"role"`
	CreatedAt   time.Time `json:"created_at"`
	LastLoginAt time.Time `json:"last_log_in"`
}

func toUserResponses(views []queries.UserView) []UserResponse {
	out := make([]UserResponse, len(views))
	for i, v := range views {
		out[i] = UserResponse{
			ID:          v.ID.String(),
			Email:       v.Email,
			Name:        v.Name,
			PhotoURL:    v.PhotoURL,
			Role:        v.Role,
			CreatedAt:   v.CreatedAt,
			LastLoginAt: v.LastLoginAt,
		}
	}
	return out
}

func userFromSnapshot(s user.Snapshot) UserResponse {
	return UserResponse{
		ID:          s.ID.String(),
		Email:       s.Email.String(),
		Name:        s.Name,
		PhotoURL:    s.PhotoURL,
		Role:        s.Role.String(),
		CreatedAt:   s.CreatedAt,
		LastLoginAt: s.LastLoginAt,
	}
}

type RiderResponse struct {
	ID            string    `json:"id"`
	Email         string    `json:"email"`
	Name          string    `json:"name"`
	Phone         string    `json:"phone"`
	Age           int       `json:"age"`
	Region        string    `json:"region"`
	District      string    `json:"district"`
	NID           string    `json:"nid"`
	BikeBrand     string    `json:"bikeBrand"`
	BikeRegNumber string    `json:"bikeRegNumber"`
	Status        string    `json:"status"`
	WorkStatus    string    `json:"work_status,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

func toRiderResponses(views []queries.RiderView) []RiderResponse {
	out := make([]RiderResponse, len(views))
	for i, v := range views {
		out[i] = RiderResponse{
			ID:            v.ID.String(),
			Email:         v.Email,
			Name:          v.Name,
			Phone:         v.Phone,
			Age:           v.Age,
			Region:        v.Region,
			District:      v.District,
			NID:           v.NationalID,
			BikeBrand:     v.BikeBrand,
			BikeRegNumber: v.BikeRegistration,
			Status:        v.Status,
			WorkStatus:    v.WorkStatus,
			CreatedAt:     v.CreatedAt,
		}
	}
	return out
}

func riderFromSnapshot(s rider.Snapshot) RiderResponse {
	return RiderResponse{
		ID:            s.ID.String(),
		Email:         s.Email.String(),
		Name:          s.Profile.Name,
		Phone:         s.Profile.Phone,
		Age:           s.Profile.Age,
		Region:        s.Profile.Region,
		District:      s.Profile.District,
		NID:           s.Profile.NationalID,
		BikeBrand:     s.Profile.BikeBrand,
		BikeRegNumber: s.Profile.BikeRegistration,
		Status:        s.Status.String(),
		WorkStatus:    s.WorkStatus,
		CreatedAt:     s.CreatedAt,
	}
}

type EarningResponse struct {
	ID          string    `json:"id"`
	ParcelID    string    `json:"parcelId"`
	TrackingID  string    `json:"trackingId"`
	Amount      float64   `json:"amount"`
	RiderEmail  string    `json:"riderEmail"`
	RiderName   string    `json:"riderName"`
	CashOutDate time.Time `json:"cashOutDate"`
}

func toEarningResponses(views []queries.EarningView) []EarningResponse {
	out := make([]EarningResponse, len(views))
	for i, v := range views {
		out[i] = EarningResponse{
			ID:          v.ID.String(),
			ParcelID:    v.ParcelID.String(),
			TrackingID:  v.TrackingID,
			Amount:      v.Amount,
			RiderEmail:  v.RiderEmail,
			RiderName:   v.RiderName,
			CashOutDate: v.CashOutAt,
		}
	}
	return out
}
