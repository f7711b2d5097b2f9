package console

import "context"

func (c *Cli) runCerts(ctx context.Context) error {
	snap, err := c.view.FetchBatch(ctx)
	if err != nil {
		return err
	}

	var data struct {
		Rows []certRow
	}
	for _, cert := range snap.Certificates.SystemCertificates {
		entry, ok := snap.PinFor(cert.Thumbprint)
		data.Rows = append(data.Rows, certRow{
			Cert:     cert,
			Source:   "system",
			PinState: pinStateText(entry, ok),
		})
	}
	for _, cert := range snap.Certificates.HardwareCertificates {
		entry, ok := snap.PinFor(cert.Thumbprint)
		data.Rows = append(data.Rows, certRow{
			Cert:     cert,
			Source:   "hardware",
			PinState: pinStateText(entry, ok),
		})
	}

	return certsTemplate.Execute(c.io, data)
}
