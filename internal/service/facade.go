package service

import "log"

// Services bundles one backend's full service set. The server bundle
// runs on Postgres repositories, the guest bundle on the local store
// adapters; both are built from the same constructors.
type Services struct {
	Categories CategoriesServiceI
	Cards      CardsServiceI
	Requests   RequestsServiceI
	Tracking   TrackingServiceI
	Reminders  RemindersServiceI
}

// Deck routes every operation to the backend matching the caller's
// auth state. Handlers never know which storage they hit.
type Deck struct {
	server   *Services
	guest    *Services
	transfer TransferServiceI
}

func NewDeck(server, guest *Services, transfer TransferServiceI) *Deck {
	if server == nil || guest == nil || transfer == nil {
		log.Fatal("on deck provided nil service bundles")
	}
	return &Deck{
		server:   server,
		guest:    guest,
		transfer: transfer,
	}
}

// For picks the backend: authenticated sessions get the database
// bundle, everyone else shares the anonymous local bundle.
func (d *Deck) For(authenticated bool) *Services {
	if authenticated {
		return d.server
	}
	return d.guest
}

func (d *Deck) Transfer() TransferServiceI {
	return d.transfer
}
