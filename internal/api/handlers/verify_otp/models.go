package verify_otp

import (
	"github.com/KrishRally/Sportitup/internal/service/users/models"
	verifyOTP "github.com/KrishRally/Sportitup/internal/usecase/verify_otp"
)

// VerifyOTPRequest HTTP request model. firebaseUid - прежнее имя поля uid.
type VerifyOTPRequest struct {
	UID         string `json:"uid"`
	FirebaseUID string `json:"firebaseUid"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
}

// VerifyOTPResponse HTTP response model
type VerifyOTPResponse struct {
	OK   bool                 `json:"ok"`
	User *models.UserResponse `json:"user"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *VerifyOTPRequest) ToUseCaseRequest() *verifyOTP.Request {
	uid := r.UID
	if uid == "" {
		uid = r.FirebaseUID
	}
	return &verifyOTP.Request{UID: uid, Name: r.Name, Phone: r.Phone}
}
