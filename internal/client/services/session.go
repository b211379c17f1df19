package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/recruitkeeper/internal/client/models"
)

// SignIn makes id the current identity and records it as the last-known one.
func (d *Dispatcher) SignIn(ctx context.Context, id models.Identity) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if id.ID == "" {
		return errors.New("sign in: identity has no id")
	}
	if err := d.store.SetIdentity(ctx, &id); err != nil {
		return err
	}
	d.session.SignIn(id)
	d.log.Info(ctx, "signed in", "user", id.ID)
	return nil
}

func (d *Dispatcher) SignOut(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.session.SignOut()
	if err := d.store.SetIdentity(ctx, nil); err != nil {
		return err
	}
	d.log.Info(ctx, "signed out")
	return nil
}
