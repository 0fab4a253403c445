package testutils

import "sync"

// SentMail records one delivered message.
type SentMail struct {
	To      string
	Subject string
	Body    string
}

// MockMailer captures outgoing mail for assertions.
type MockMailer struct {
	mu   sync.Mutex
	Sent []SentMail
	Err  error
}

func (m *MockMailer) Send(to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	m.Sent = append(m.Sent, SentMail{To: to, Subject: subject, Body: body})
	return nil
}
