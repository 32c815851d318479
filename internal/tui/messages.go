package tui

import "qrkeep/internal/client"

type userResolvedMsg struct {
	userID string
	err    error
}

type listLoadedMsg struct {
	codes []client.QRCode
	err   error
}

type codeCreatedMsg struct {
	code *client.QRCode
	err  error
}

type codeUpdatedMsg struct {
	code *client.QRCode
	err  error
}

type codeDeletedMsg struct {
	codeID string
	err    error
}

type loggedOutMsg struct {
	err error
}
