package device

// ========================================
// DEVICE DTOs
// ========================================

type DeviceResponse struct {
	SN                string `json:"sn"`
	LastCommunication string `json:"last_communication"`
	Online            bool   `json:"online"`
}

type StatusResponse struct {
	LastCommunication *string          `json:"last_communication,omitempty"`
	Devices           []DeviceResponse `json:"devices"`
}
