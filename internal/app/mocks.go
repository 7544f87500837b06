package app

import "jobboard_backend/internal/logger"

// MockEmailProvider пишет письма в лог вместо отправки.
// Используется, когда SMTP не сконфигурирован.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(to, subject, body string) error {
	logger.Info("[MOCK EMAIL] send", "to", to, "subject", subject)
	return nil
}

func (m *MockEmailProvider) SendWelcome(to, fullname string) error {
	logger.Info("[MOCK EMAIL] welcome", "to", to, "fullname", fullname)
	return nil
}

func (m *MockEmailProvider) SendApplicationStatus(to, fullname, jobTitle, status string) error {
	logger.Info("[MOCK EMAIL] application status", "to", to, "job", jobTitle, "status", status)
	return nil
}
