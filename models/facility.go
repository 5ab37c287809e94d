package models

import "time"

// FacilitySecurity holds credential material. Plaintext fields never reach
// storage; hashes never reach the wire.
type FacilitySecurity struct {
	Password     string `bson:"-" json:"password,omitempty"`
	PasswordHash string `bson:"passwordHash" json:"-"`
	Token        string `bson:"-" json:"token,omitempty"`
	TokenHash    string `bson:"tokenHash" json:"-"`
	FCMToken     string `bson:"fcmToken,omitempty" json:"fcmToken,omitempty"`
}

// FacilityProfile is the public face of a facility account.
type FacilityProfile struct {
	FacilityName  string       `bson:"facilityName" json:"facilityName,omitempty"`
	FacilityType  FacilityType `bson:"facilityType" json:"facilityType,omitempty"`
	Email         string       `bson:"email" json:"email,omitempty"`
	PhoneNumber   string       `bson:"phoneNumber" json:"phoneNumber,omitempty"`
	Address       string       `bson:"address" json:"address,omitempty"`
	State         string       `bson:"state" json:"state,omitempty"`
	ContactPerson string       `bson:"contactPerson" json:"contactPerson,omitempty"`
	LogoImage     string       `bson:"logoImage" json:"logoImage,omitempty"`
}

// FacilityVerification tracks channel confirmation and the admin review
// outcome for an onboarding facility.
type FacilityVerification struct {
	EmailVerified      bool   `bson:"emailVerified" json:"emailVerified"`
	PhoneVerified      bool   `bson:"phoneVerified" json:"phoneVerified"`
	VerificationStatus string `bson:"verificationStatus" json:"verificationStatus,omitempty"` // pending | verified | rejected
	ReviewNotes        string `bson:"reviewNotes,omitempty" json:"reviewNotes,omitempty"`
}

// Facility is a registered healthcare facility account.
type Facility struct {
	ID           string               `bson:"id" json:"id,omitempty"`
	Profile      FacilityProfile      `bson:"profile" json:"profile"`
	Security     FacilitySecurity     `bson:"security" json:"security,omitzero"`
	Verification FacilityVerification `bson:"verification" json:"verification,omitzero"`
	CreatedAt    time.Time            `bson:"createdAt" json:"createdAt,omitzero"`
	UpdatedAt    time.Time            `bson:"updatedAt" json:"updatedAt,omitzero"`
}

// FacilityRegistrationData is the body of POST /api/auth/register.
type FacilityRegistrationData struct {
	FacilityName  string       `json:"facilityName" binding:"required"`
	FacilityType  FacilityType `json:"facilityType" binding:"required"`
	Email         string       `json:"email" binding:"required"`
	PhoneNumber   string       `json:"phoneNumber" binding:"required"`
	Password      string       `json:"password" binding:"required"`
	Address       string       `json:"address"`
	State         string       `json:"state"`
	ContactPerson string       `json:"contactPerson"`
}

// FacilityAuthResponse is returned after registration or sign-in.
type FacilityAuthResponse struct {
	ID        string          `json:"id"`
	Token     string          `json:"token"`
	Profile   FacilityProfile `json:"profile"`
	Verified  bool            `json:"verified"`
	CreatedAt time.Time       `json:"created_at"`
}

// OTPDeliveryPayload is the task payload queued for out-of-band OTP delivery.
type OTPDeliveryPayload struct {
	FacilityID  string `json:"facilityId"`
	Channel     string `json:"channel"` // email | sms | whatsapp
	Destination string `json:"destination"`
	Code        string `json:"code"`
}
