package dto

import "time"

type CreateOtpRequestDTO struct {
	AppName string `json:"appName" example:"bank-app"`
}

type FulfillOtpRequestDTO struct {
	Code string `json:"code" example:"445566"`
}

type OtpRequestResponseDTO struct {
	ID           int       `json:"id" example:"1"`
	UserID       int       `json:"userId" example:"2"`
	AppName      string    `json:"appName" example:"bank-app"`
	Code         string    `json:"otp" example:"042166"`
	Status       string    `json:"status" example:"pending"`
	MobileNumber string    `json:"mobileNumber" example:"+916392621695"`
	AdminCode    string    `json:"adminOtp" example:""`
	CreatedAt    time.Time `json:"createdAt" example:"2020-12-09T16:09:57+03:00"`
}
