package console

import (
	"context"
	"fmt"

	pkgapi "github.com/iudanet/mailerctl/pkg/api"
)

// runPin sets the PIN for one hardware certificate, identified by its
// thumbprint as shown in 'mailerctl certs'.
func (c *Cli) runPin(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: mailerctl pin <thumbprint>")
	}
	thumbprint := args[0]

	snap, err := c.view.FetchBatch(ctx)
	if err != nil {
		return err
	}

	cert, ok := snap.HardwareCertificate(thumbprint)
	if !ok {
		return fmt.Errorf("no hardware certificate with thumbprint %s; run 'mailerctl certs' to list them", thumbprint)
	}

	c.io.Printf("Certificate: %s\n", cert.Subject)
	if cert.TokenLabel != "" {
		c.io.Printf("Token:       %s (slot %d)\n", cert.TokenLabel, cert.SlotID)
	}

	pin, err := c.io.ReadPassword("PIN: ")
	if err != nil {
		return fmt.Errorf("failed to read PIN: %w", err)
	}
	confirm, err := c.io.ReadPassword("Confirm PIN: ")
	if err != nil {
		return fmt.Errorf("failed to read PIN confirmation: %w", err)
	}
	if pin != confirm {
		return fmt.Errorf("PINs do not match")
	}

	err = c.view.StorePin(ctx, pkgapi.PinEntry{
		TokenLabel:         cert.TokenLabel,
		CertificateID:      cert.Thumbprint,
		SlotID:             cert.SlotID,
		Pin:                pin,
		CertificateSubject: cert.Subject,
		CertificateSerial:  cert.SerialNumber,
	})
	if err != nil {
		return err
	}

	c.io.Println("PIN stored and verified.")
	return nil
}
