// Package dashboard implements the steady-state monitoring view: the
// four-way read batch, the polling loop bound to the view's lifetime,
// and the mutating actions reachable from it (service control, PIN
// storage, configuration display).
package dashboard

import (
	"time"

	pkgapi "github.com/iudanet/mailerctl/pkg/api"
)

// Snapshot is one point-in-time aggregate of the four dashboard reads.
// It is immutable once built and replaced wholesale on every successful
// cycle; partial results from a failed cycle never end up here.
type Snapshot struct {
	FetchedAt    time.Time                          `json:"fetched_at"`
	Dashboard    pkgapi.DashboardResponse           `json:"dashboard"`
	CertStatus   pkgapi.CertificateStatusResponse   `json:"cert_status"`
	Certificates pkgapi.CertificatesResponse        `json:"certificates"`
	PinStatus    pkgapi.PinStatusResponse           `json:"pin_status"`
}

// HardwareCertificate looks up an inventory entry by thumbprint.
func (s *Snapshot) HardwareCertificate(thumbprint string) (pkgapi.Certificate, bool) {
	for _, cert := range s.Certificates.HardwareCertificates {
		if cert.Thumbprint == thumbprint {
			return cert, true
		}
	}
	return pkgapi.Certificate{}, false
}

// PinFor joins a PIN status entry to an inventory entry: certificate_id
// matches the thumbprint. A missing entry means no PIN status is known
// yet, which is not an error.
func (s *Snapshot) PinFor(thumbprint string) (pkgapi.PinStatusEntry, bool) {
	for _, entry := range s.PinStatus.Certificates {
		if entry.CertificateID == thumbprint {
			return entry, true
		}
	}
	return pkgapi.PinStatusEntry{}, false
}
