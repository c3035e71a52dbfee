package model

import "time"

// Address is the postal address of a store
type Address struct {
	Street       string `json:"street"`
	Number       string `json:"number"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	State        string `json:"state"`
	ZipCode      string `json:"zipCode"`
}

// User represents a registered store owner held by a session
type User struct {
	ID        string    `json:"id"`
	FullName  string    `json:"fullName"`
	StoreName string    `json:"storeName"`
	Document  string    `json:"document"` // CPF/CNPJ, never validated
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	WhatsApp  string    `json:"whatsapp,omitempty"`
	Address   Address   `json:"address"`
	CreatedAt time.Time `json:"createdAt"`
}

// Credentials are submitted on login
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate requires both fields to be non-blank.
func (c Credentials) Validate() error {
	if isBlank(c.Email) {
		return NewValidationError("email", "email é obrigatório")
	}
	if isBlank(c.Password) {
		return NewValidationError("password", "senha é obrigatória")
	}
	return nil
}

// Registration is the draft submitted to create a store owner account
type Registration struct {
	FullName        string  `json:"fullName"`
	StoreName       string  `json:"storeName"`
	Document        string  `json:"document"`
	Email           string  `json:"email"`
	Phone           string  `json:"phone"`
	WhatsApp        string  `json:"whatsapp"`
	Address         Address `json:"address"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirmPassword"`
}

// Validate checks the password confirmation first, then every mandatory field.
// Complement and WhatsApp are optional; formats are never checked.
func (r Registration) Validate() error {
	if r.Password != r.ConfirmPassword {
		return NewValidationError("confirmPassword", "As senhas não coincidem")
	}

	required := []struct {
		field, value string
	}{
		{"fullName", r.FullName},
		{"storeName", r.StoreName},
		{"document", r.Document},
		{"email", r.Email},
		{"phone", r.Phone},
		{"address.street", r.Address.Street},
		{"address.number", r.Address.Number},
		{"address.neighborhood", r.Address.Neighborhood},
		{"address.city", r.Address.City},
		{"address.state", r.Address.State},
		{"address.zipCode", r.Address.ZipCode},
		{"password", r.Password},
	}
	for _, f := range required {
		if isBlank(f.value) {
			return NewValidationError(f.field, "campo obrigatório")
		}
	}
	return nil
}

// User builds the profile described by the registration.
func (r Registration) User(id string, createdAt time.Time) User {
	return User{
		ID:        id,
		FullName:  r.FullName,
		StoreName: r.StoreName,
		Document:  r.Document,
		Email:     r.Email,
		Phone:     r.Phone,
		WhatsApp:  r.WhatsApp,
		Address:   r.Address,
		CreatedAt: createdAt,
	}
}
