package api

import "encoding/json"

// CertificateStatusResponse is the answer to GET /certificate-status: the
// state of the hardware token used for signing.
type CertificateStatusResponse struct {
	Success          bool   `json:"success"`
	Available        bool   `json:"available"`
	TokenPresent     bool   `json:"token_present"`
	CertificateFound bool   `json:"certificate_found"`
	TokenLabel       string `json:"token_label,omitempty"`
	SlotID           int    `json:"slot_id,omitempty"`
	Message          string `json:"message,omitempty"`
}

// Certificate is one entry of the certificate inventory. Thumbprint is
// the unique lookup key.
type Certificate struct {
	Thumbprint    string `json:"thumbprint"`
	Subject       string `json:"subject"`
	Issuer        string `json:"issuer,omitempty"`
	SerialNumber  string `json:"serial_number,omitempty"`
	ValidFrom     string `json:"valid_from,omitempty"`
	ValidTo       string `json:"valid_to,omitempty"`
	TokenLabel    string `json:"token_label,omitempty"`
	SlotID        int    `json:"slot_id,omitempty"`
	HasPrivateKey bool   `json:"has_private_key,omitempty"`
}

// CertificatesResponse is the answer to GET /certificates.
type CertificatesResponse struct {
	Success              bool          `json:"success"`
	TotalCertificates    int           `json:"total_certificates"`
	SystemCertificates   []Certificate `json:"system_certificates"`
	HardwareCertificates []Certificate `json:"hardware_certificates"`
	Error                string        `json:"error,omitempty"`
}

// PinStatusEntry is the PIN state of one certificate. CertificateID
// matches the inventory thumbprint; an inventory entry without a matching
// PinStatusEntry simply has no PIN status known yet.
type PinStatusEntry struct {
	CertificateID string `json:"certificate_id"`
	TokenLabel    string `json:"token_label,omitempty"`
	SlotID        int    `json:"slot_id,omitempty"`
	HasPin        bool   `json:"has_pin"`
	Verified      bool   `json:"verified"`
	Message       string `json:"message,omitempty"`
}

// PinStatusResponse is the answer to GET /certificate-pin-status.
type PinStatusResponse struct {
	Success           bool             `json:"success"`
	TotalCertificates int              `json:"total_certificates"`
	Certificates      []PinStatusEntry `json:"certificates"`
	Error             string           `json:"error,omitempty"`
}

// PinEntry is one element of the POST /certificate-pin request batch.
type PinEntry struct {
	TokenLabel         string `json:"token_label"`
	CertificateID      string `json:"certificate_id"`
	SlotID             int    `json:"slot_id"`
	Pin                string `json:"pin"`
	CertificateSubject string `json:"certificate_subject"`
	CertificateSerial  string `json:"certificate_serial"`
}

// PinResult is the normalized per-entry outcome of a PIN store call.
type PinResult struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Text returns the per-entry message, preferring Error on failure shapes
// that populate it and Message otherwise.
func (r PinResult) Text() string {
	if r.Error != "" {
		return r.Error
	}
	return r.Message
}

// NormalizePinResults decodes the POST /certificate-pin response body,
// which the backend returns either as a bare result object or as an
// array of per-entry results. Both shapes normalize to a non-empty
// slice, so callers never re-inspect the wire shape.
func NormalizePinResults(raw json.RawMessage) ([]PinResult, error) {
	var results []PinResult
	if err := json.Unmarshal(raw, &results); err == nil {
		return results, nil
	}
	var single PinResult
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return []PinResult{single}, nil
}
