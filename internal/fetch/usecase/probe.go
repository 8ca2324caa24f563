package usecase

import (
	"context"
	"fmt"

	"pronote-gateway/internal/fetch"
	"pronote-gateway/pkg/pronote"
	"pronote-gateway/pkg/timebox"
)

// ProbeLogin checks the portal handshake under the login budget without
// fetching any data. Diagnostic endpoint support.
func (uc *implUseCase) ProbeLogin(ctx context.Context, username, password string) (fetch.ProbeOutput, error) {
	if uc.mock {
		return fetch.ProbeOutput{OK: true, Mock: true}, nil
	}

	out := uc.runner.Run(ctx, uc.budgets.Login, func(ctx context.Context) (any, error) {
		return uc.portal.Login(ctx, username, password)
	})

	switch out.Status {
	case timebox.StatusTimeout:
		return fetch.ProbeOutput{}, fmt.Errorf("%w: %s", fetch.ErrLoginTimeout, timeoutText(uc.budgets.Login))
	case timebox.StatusError:
		return fetch.ProbeOutput{}, mapLoginErr(out.Err)
	}

	session := out.Value.(pronote.Session)
	session.Close()

	return fetch.ProbeOutput{OK: true, LoggedIn: true}, nil
}
