package client

// ViewState is the client-side mirror of a user's record list. Mutations are
// optimistic relative to the server: a successful create appends, a
// successful delete filters, a successful update replaces in place. A failed
// request leaves the prior state intact.
//
// Not safe for concurrent use; the TUI drives it from its single event loop.
type ViewState struct {
	userID  string
	codes   []QRCode
	loading bool
	lastErr string
}

func NewViewState(userID string) *ViewState {
	return &ViewState{userID: userID, codes: []QRCode{}}
}

func (s *ViewState) UserID() string { return s.userID }

// BeginLoading marks the initial list fetch as outstanding.
func (s *ViewState) BeginLoading() {
	s.loading = true
}

// ApplyList ends the initial fetch, replacing the local list on success or
// recording a non-fatal error on failure. Either way the state stays usable
// for subsequent create/update/delete actions.
func (s *ViewState) ApplyList(codes []QRCode, err error) {
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		return
	}
	if codes == nil {
		codes = []QRCode{}
	}
	s.codes = codes
}

func (s *ViewState) Append(code QRCode) {
	s.codes = append(s.codes, code)
}

func (s *ViewState) Replace(code QRCode) {
	for i := range s.codes {
		if s.codes[i].CodeID == code.CodeID {
			s.codes[i] = code
			return
		}
	}
}

func (s *ViewState) Remove(codeID string) {
	filtered := s.codes[:0]
	for _, c := range s.codes {
		if c.CodeID != codeID {
			filtered = append(filtered, c)
		}
	}
	s.codes = filtered
}

func (s *ViewState) Codes() []QRCode {
	out := make([]QRCode, len(s.codes))
	copy(out, s.codes)
	return out
}

func (s *ViewState) Loading() bool { return s.loading }

func (s *ViewState) Fail(err error) {
	if err != nil {
		s.lastErr = err.Error()
	}
}

func (s *ViewState) Error() string { return s.lastErr }

func (s *ViewState) DismissError() { s.lastErr = "" }
