package tui

import "github.com/MKhiriev/go-playbook/models"

// stateMsg carries a configuration state published by the source.
type stateMsg models.ConfigState

// sourceClosedMsg signals that the source will publish nothing more.
type sourceClosedMsg struct{}

type copiedMsg struct {
	err error
}
