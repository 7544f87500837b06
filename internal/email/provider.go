package email

// Provider определяет интерфейс для отправки email
type Provider interface {
	// Send отправляет простое email сообщение
	Send(to, subject, body string) error

	// SendWelcome отправляет приветственное письмо после регистрации
	SendWelcome(to, fullname string) error

	// SendApplicationStatus уведомляет соискателя о смене статуса отклика
	SendApplicationStatus(to, fullname, jobTitle, status string) error
}
