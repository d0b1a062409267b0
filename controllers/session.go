package controllers

import "hotel-frontdesk/services"

// FrontDeskSession is the state one front desk keeps between requests.
// Only the itemized invoice lives here; everything else is in the stores.
type FrontDeskSession struct {
	Invoice *services.ItemizedInvoice
}

func NewFrontDeskSession() *FrontDeskSession {
	return &FrontDeskSession{Invoice: services.NewItemizedInvoice()}
}
