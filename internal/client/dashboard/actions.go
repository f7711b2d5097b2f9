package dashboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/mailerctl/internal/validation"
	pkgapi "github.com/iudanet/mailerctl/pkg/api"
)

// ErrControlInFlight rejects a service control action while a previous
// one is still outstanding.
var ErrControlInFlight = errors.New("service control action already in progress")

// ServiceControl starts or stops the dispatch service. Only one control
// action may be outstanding at a time; callers are expected to refetch
// the batch when this returns, success or not, so the view reflects the
// new state without waiting for the next tick.
func (v *View) ServiceControl(ctx context.Context, action, user string) (string, error) {
	if action != pkgapi.ServiceActionStart && action != pkgapi.ServiceActionStop {
		return "", fmt.Errorf("unknown service action %q", action)
	}

	v.mu.Lock()
	if v.ctlBusy {
		v.mu.Unlock()
		return "", ErrControlInFlight
	}
	v.ctlBusy = true
	v.mu.Unlock()

	defer func() {
		v.mu.Lock()
		v.ctlBusy = false
		v.mu.Unlock()
	}()

	resp, err := v.apiClient.ServiceControl(ctx, pkgapi.ServiceControlRequest{
		Action: action,
		User:   user,
	})
	if err != nil {
		return "", err
	}
	if !resp.Success {
		if msg := resp.Text(); msg != "" {
			return "", fmt.Errorf("service %s failed: %s", action, msg)
		}
		return "", fmt.Errorf("service %s failed", action)
	}

	return resp.Text(), nil
}

// StorePin submits one PIN entry for the certificate it names. Per-entry
// failure surfaces the entry's own message. On success the PIN status is
// re-read immediately with the force-refresh flag and folded into the
// current snapshot, bypassing the polling timer.
func (v *View) StorePin(ctx context.Context, entry pkgapi.PinEntry) error {
	if err := validation.ValidatePin(entry.Pin); err != nil {
		return err
	}

	results, err := v.apiClient.StorePins(ctx, []pkgapi.PinEntry{entry})
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return fmt.Errorf("backend returned no pin result")
	}

	if first := results[0]; !first.Success {
		if msg := first.Text(); msg != "" {
			return fmt.Errorf("pin store failed: %s", msg)
		}
		return fmt.Errorf("pin store failed")
	}

	return v.RefreshPinStatus(ctx)
}

// RefreshPinStatus force-reads the PIN status (refresh=true, distinct
// from the cached read the poll batch uses) and replaces it in the
// current snapshot.
func (v *View) RefreshPinStatus(ctx context.Context) error {
	resp, err := v.apiClient.PinStatus(ctx, true)
	if err != nil {
		return fmt.Errorf("failed to refresh pin status: %w", err)
	}

	v.mu.Lock()
	if v.last != nil {
		updated := *v.last
		updated.PinStatus = *resp
		v.last = &updated
	}
	v.mu.Unlock()

	v.persistPinStatus(ctx, resp)

	return nil
}

// CurrentConfig fetches the persisted configuration on demand; it is
// never part of the poll batch.
func (v *View) CurrentConfig(ctx context.Context) (*pkgapi.CurrentConfig, error) {
	resp, err := v.apiClient.GetCurrentConfig(ctx)
	if err != nil {
		return nil, err
	}
	if !resp.Success {
		if resp.Message != "" {
			return nil, fmt.Errorf("failed to load configuration: %s", resp.Message)
		}
		return nil, fmt.Errorf("failed to load configuration")
	}
	return &resp.Config, nil
}
